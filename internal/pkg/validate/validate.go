package validate

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailRegex matches a standard local@domain.tld address.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Report field names as they appear on the wire.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return val
}

// Email reports whether s is a well-formed email address.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// Struct validates a struct against its `validate` tags.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// MissingField returns the wire name of the first field that failed
// validation, or an empty string.
func MissingField(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0].Field()
	}
	return ""
}
