package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/pkg/envelope"
	"service/internal/pkg/validation"
	"service/internal/service/crud"
	"service/pkg/logger"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrMissingID  = fmt.Errorf("%w: missing id", ErrBadRequest)
	ErrInvalidID  = fmt.Errorf("%w: invalid id", ErrBadRequest)
	ErrBadBody    = fmt.Errorf("%w: invalid request body", ErrBadRequest)
)

const internalErrorMessage = "internal server error"

type NotFoundBody int

const (
	// NotFoundPlainText тело 404 это текст сообщения.
	NotFoundPlainText NotFoundBody = iota
	// NotFoundEnvelope тело 404 это конверт со статусом error.
	NotFoundEnvelope
)

type Messages[E any, ID comparable] struct {
	Empty   string
	Listed  string
	Found   string
	Created func(created E) string
	Updated func(id ID) string
	Deleted func(id ID) string
}

// Resource описание REST ресурса: путь к id, перевод в DTO, тексты ответов, форма 404.
// EchoCreated/EchoUpdated кладут строковое представление сущности в data.
type Resource[E any, ID comparable] struct {
	Name      string
	PathParam string
	ParseID   func(raw string) (ID, error)
	// Decode читает тело запроса как DTO и переводит его в сущность.
	Decode func(body io.Reader) (E, error)
	// Encode переводит сущность в DTO для поля data.
	Encode       func(entity E) any
	Messages     Messages[E, ID]
	NotFoundBody NotFoundBody
	EchoCreated  bool
	EchoUpdated  bool
}

func (r Resource[E, ID]) IDFromRequest(req *http.Request) (ID, error) {
	var zero ID

	raw, ok := mux.Vars(req)[r.PathParam]
	if !ok || raw == "" {
		return zero, ErrMissingID
	}

	id, err := r.ParseID(raw)
	if err != nil {
		return zero, fmt.Errorf("%w %q: %w", ErrInvalidID, raw, err)
	}
	return id, nil
}

func (r Resource[E, ID]) DecodeBody(req *http.Request) (E, error) {
	entity, err := r.Decode(req.Body)
	if err != nil {
		return entity, fmt.Errorf("%w: %w", ErrBadBody, err)
	}
	return entity, nil
}

func (r Resource[E, ID]) EncodeList(list []E) []any {
	result := make([]any, 0, len(list))
	for _, entity := range list {
		result = append(result, r.Encode(entity))
	}
	return result
}

func (r Resource[E, ID]) Echo(entity E, enabled bool) *string {
	if !enabled {
		return nil
	}
	text := fmt.Sprint(entity)
	return &text
}

// WriteError пишет ответ для ошибки и возвращает выставленный код.
// Ошибка записи тела возвращается вторым значением.
func (r Resource[E, ID]) WriteError(w http.ResponseWriter, err error) (int, error) {
	var (
		notFound      *crud.NotFoundError
		validationErr *validation.Error
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, r.writeNotFound(w, notFound.Error())
	case errors.Is(err, crud.ErrNotFound):
		return http.StatusNotFound, r.writeNotFound(w, err.Error())
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, envelope.Write(w, http.StatusBadRequest, envelope.Error(validationErr.Error()))
	case errors.Is(err, crud.ErrValidation), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, envelope.Write(w, http.StatusBadRequest, envelope.Error(err.Error()))
	case errors.Is(err, crud.ErrConflict):
		return http.StatusConflict, envelope.Write(w, http.StatusConflict, envelope.Error(crud.ErrConflict.Error()))
	default:
		return http.StatusInternalServerError,
			envelope.Write(w, http.StatusInternalServerError, envelope.Error(internalErrorMessage))
	}
}

type failLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Fail пишет ответ для ошибки операции op: 5xx логируется как error, остальное как warn.
func (r Resource[E, ID]) Fail(w http.ResponseWriter, log failLogger, op string, err error) {
	status, writeErr := r.WriteError(w, err)

	errLog := log.With(
		logger.NewField("error", err),
		logger.NewField("status", status),
	)
	if status >= http.StatusInternalServerError {
		errLog.Error(op + " failed")
	} else {
		errLog.Warn(op + " rejected")
	}

	if writeErr != nil {
		log.With(
			logger.NewField("error", writeErr),
		).Error("encode JSON response")
	}
}

func (r Resource[E, ID]) writeNotFound(w http.ResponseWriter, message string) error {
	if r.NotFoundBody == NotFoundEnvelope {
		return envelope.Write(w, http.StatusNotFound, envelope.Error(message))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte(message))
	return err
}

// DecodeDTO собирает Decode из конвертера сгенерированного DTO в сущность.
func DecodeDTO[D, E any](toEntity func(D) E) func(io.Reader) (E, error) {
	return func(body io.Reader) (E, error) {
		var in D
		err := json.NewDecoder(body).Decode(&in)
		if err != nil {
			var zero E
			return zero, err
		}
		return toEntity(in), nil
	}
}

func EncodeDTO[E, D any](toDTO func(E) D) func(E) any {
	return func(entity E) any {
		return toDTO(entity)
	}
}

func StringID(raw string) (string, error) {
	return raw, nil
}

func Int64ID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
