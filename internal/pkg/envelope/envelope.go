package envelope

import (
	"encoding/json"
	"net/http"

	"service/internal/generated/dto"
)

type Status = dto.EnvelopeStatus

const (
	StatusSuccess = dto.EnvelopeStatusSuccess
	StatusWarn    = dto.EnvelopeStatusWarn
	StatusError   = dto.EnvelopeStatusError
)

// Envelope единый формат ответа API. Data сериализуется в null, если полезной нагрузки нет.
type Envelope[T any] struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

func Success[T any](message string, data T) Envelope[T] {
	return Envelope[T]{
		Status:  StatusSuccess,
		Message: message,
		Data:    &data,
	}
}

func SuccessEmpty(message string) Envelope[string] {
	return Envelope[string]{
		Status:  StatusSuccess,
		Message: message,
	}
}

func Warn[T any](message string) Envelope[T] {
	return Envelope[T]{
		Status:  StatusWarn,
		Message: message,
	}
}

func Error(message string) Envelope[string] {
	return Envelope[string]{
		Status:  StatusError,
		Message: message,
	}
}

func Write[T any](w http.ResponseWriter, statusCode int, body Envelope[T]) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}
