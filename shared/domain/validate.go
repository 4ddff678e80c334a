package domain

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	internal_errors "github.com/FerdyAtmaja/forum-api-V2/shared/errors"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f.Tag.Get("json"), f.Name)
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	return v
}

func jsonName(tag, fallback string) string {
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return fallback
	}
	return name
}

// ValidateStored checks an entity built from what the store handed back. A
// failure means the store is broken, the error carries no client status and
// is reported as internal.
func ValidateStored(entity interface{ Validate() error }) error {
	if err := entity.Validate(); err != nil {
		return fmt.Errorf("stored entity is invalid: %v", err)
	}
	return nil
}

// validateEntity turns the first failed rule into a ValidationError naming the entity and field.
func validateEntity(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return internal_errors.Validation(fmt.Sprintf("%s: invalid payload", entity))
	}
	fe := verrs[0]
	return internal_errors.Validation(fmt.Sprintf("%s: %s %s", entity, fe.Field(), describe(fe)))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "username":
		return "contains restricted characters"
	default:
		return "is invalid"
	}
}
