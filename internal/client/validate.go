package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/parkmate/parkmate-client/internal/core/domain"
)

// payloadValidator checks request payloads before they ever reach the wire,
// so obviously-broken input fails fast with a readable message instead of a
// round trip.
type payloadValidator struct {
	v *validator.Validate
}

func newPayloadValidator() *payloadValidator {
	return &payloadValidator{v: validator.New()}
}

// Validate returns an error wrapping domain.ErrInvalidPayload listing every
// failed field.
func (pv *payloadValidator) Validate(i any) error {
	err := pv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidPayload, strings.Join(msgs, "; "))
	}
	return err
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
