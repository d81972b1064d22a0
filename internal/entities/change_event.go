package entities

import "time"

type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

func (a ChangeAction) String() string {
	return string(a)
}

// ChangeEvent факт успешной записи в хранилище. Payload пустой для удаления.
type ChangeEvent struct {
	Entity     string
	ID         string
	Action     ChangeAction
	Payload    any
	OccurredAt time.Time
}
