package memstore

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

type todoInput struct {
	Title       string `validate:"notblank"`
	Description string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "required" accepts whitespace-only strings.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// ValidateTitle returns a *ValidationError when title is empty or blank.
func ValidateTitle(title string) error {
	err := validate.Struct(todoInput{Title: title})
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Title" {
				return &ValidationError{Field: "title", Err: ErrEmptyTitle}
			}
		}
	}
	return err
}
