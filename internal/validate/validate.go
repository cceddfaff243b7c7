package validate

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// rejects strings made up of one repeated character, e.g. "aaaaaaaaaa",
	// which slip past min length checks on names and descriptions.
	err := v.RegisterValidation(
		"noAllRepeatingChars",
		func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if len(s) < 2 {
				return true
			}

			return strings.Count(s, string(s[0])) != len(s)
		},
	)
	if err != nil {
		log.Fatalf("failed to register 'noAllRepeatingChars' validation: %v", err)
	}

	return v
}

// FieldErrors is the list of human readable field validation failures, carried
// on a ServerError's Errors field for the client.
type FieldErrors []string

func (fe FieldErrors) Error() string {
	return strings.Join(fe, "; ")
}

// StructFields validates v against its struct tags and returns a
// [FieldErrors] describing every failing field, or nil.
func StructFields(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fieldErrs := make(FieldErrors, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs = append(
			fieldErrs,
			fmt.Sprintf(
				"field '%s' failed on the '%s' rule",
				fieldErr.Field(),
				fieldErr.Tag(),
			),
		)
	}

	return fieldErrs
}
