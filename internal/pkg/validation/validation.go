package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"service/internal/entities"
)

const phoneDigits = 10

type messageProvider interface {
	ValidationMessages() entities.FieldMessages
}

// Error все нарушения ограничений полей, в порядке объявления полей.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, ", ")
}

type Validator struct {
	validate *validator.Validate
}

func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.RegisterValidation("phone10", isPhone10)
	if err != nil {
		return nil, fmt.Errorf("register phone10 validation: %w", err)
	}

	return &Validator{validate: validate}, nil
}

func (v *Validator) Struct(value any) error {
	err := v.validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("validate struct: %w", err)
	}

	var messages entities.FieldMessages
	if provider, ok := value.(messageProvider); ok {
		messages = provider.ValidationMessages()
	}

	result := &Error{Messages: make([]string, 0, len(fieldErrors))}
	for _, fieldErr := range fieldErrors {
		msg, ok := messages[fieldErr.StructField()+"."+fieldErr.Tag()]
		if !ok {
			msg = fieldErr.Error()
		}
		result.Messages = append(result.Messages, msg)
	}
	return result
}

func isPhone10(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if len(phone) != phoneDigits {
		return false
	}

	for _, char := range phone {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
