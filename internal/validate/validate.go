package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"portfolio-web/pkg/upstream"
)

// New builds a validator that reports fields by their json names, matching
// the field names the upstream API and the forms use.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// First converts a validator error into an InvalidRequestError for the
// first violation found. Validation stops the action before any network
// call is made.
func First(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &upstream.InvalidRequestError{Field: fe.Field(), Reason: reasonFor(fe)}
	}
	return &upstream.InvalidRequestError{Field: "data", Reason: err.Error()}
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must be a non-empty array"
		}
		return "is too short"
	default:
		return "is invalid"
	}
}
