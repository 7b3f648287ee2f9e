package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hugmob/hugger-backend/internal/errs"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation and maps failures into the local
// taxonomy so handlers can hand them straight to the response layer.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewValidationError(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errs.NewValidationError(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
