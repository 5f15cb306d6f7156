package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// nameChars restricts customer names to letters and spaces.
var nameChars = regexp.MustCompile(`^[a-zA-Z\s]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "namechars" backs the letters-and-spaces rule on customer names.
	_ = v.RegisterValidation("namechars", func(fl validator.FieldLevel) bool {
		return nameChars.MatchString(fl.Field().String())
	})
	return v
}

// validationMessage flattens validator errors into one readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
