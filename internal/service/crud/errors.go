package crud

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("resource already exists")
	ErrValidation = errors.New("validation failed")
)

// NotFoundError промах поиска по идентификатору. Сообщение форматируется сущностью.
type NotFoundError struct {
	Entity  string
	ID      any
	message string
}

func NewNotFoundError(entity string, id any, message string) *NotFoundError {
	return &NotFoundError{
		Entity:  entity,
		ID:      id,
		message: message,
	}
}

func (e *NotFoundError) Error() string {
	return e.message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
