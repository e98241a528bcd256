// Package record holds the exercise records: small value types whose
// constructors validate every invariant-bearing field and whose methods only
// change state after re-checking the precondition for that change.
//
// Fields are unexported. Outside this package a record can only be read
// through its accessors and changed through its guarded methods.
//
// Constructors describe their input as a tagged struct and hand it to the
// shared go-playground/validator instance below, the same way the HTTP layer
// of a typical API validates a decoded request body:
//
//	type accountFields struct {
//	    Holder  string `json:"holder"`
//	    Balance int64  `json:"balance" validate:"gte=0"`
//	}
package record

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// now is swapped in tests that need a fixed calendar year.
var now = time.Now

// CurrentYear is the calendar year records validate against.
func CurrentYear() int {
	return now().Year()
}

// validate is shared: validator caches struct metadata, so one instance per
// process is the intended usage.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name ("balance") rather than the Go name
	// ("Balance") so reasons read like the invariants they describe.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notfuture: an integer year that is not after the current calendar year.
	if err := v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(CurrentYear())
	}); err != nil {
		panic(fmt.Sprintf("record: register notfuture: %v", err))
	}

	// bcryptmax: a string of at most 72 bytes, bcrypt's input limit.
	if err := v.RegisterValidation("bcryptmax", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= maxPasswordBytes
	}); err != nil {
		panic(fmt.Sprintf("record: register bcryptmax: %v", err))
	}

	v.RegisterAlias("percent", "gte=0,lte=100")

	return v
}

// construct is the one place every record is born. It validates fields and
// only calls build when all invariants hold, so a failed construction never
// yields a partially initialised record (build's zero value, nil for pointer
// records, is returned instead).
func construct[F, R any](name string, fields F, build func(F) R) (R, error) {
	if err := check(name, fields); err != nil {
		var zero R
		return zero, err
	}
	return build(fields), nil
}

// check runs the validator over fields and converts any failures into a
// single *ValidationError for the named record.
func check(name string, fields any) error {
	err := validate.Struct(fields)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: fields was not a struct. Programmer error.
		return fmt.Errorf("record.check: %s: %w", name, err)
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		reasons = append(reasons, reason(fe))
	}
	return &ValidationError{Record: name, Reasons: reasons}
}

// reason turns one failed struct tag into a plain English sentence.
func reason(fe validator.FieldError) string {
	// Aliases and custom tags first: Tag() keeps the alias name even though
	// ActualTag() reports the underlying rule that failed.
	switch fe.Tag() {
	case "percent":
		return fmt.Sprintf("%s must be within [0,100]", fe.Field())
	case "notfuture":
		return fmt.Sprintf("%s must not exceed current year", fe.Field())
	case "bcryptmax":
		return fmt.Sprintf("%s must be at most %d bytes", fe.Field(), maxPasswordBytes)
	}

	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "gte":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be non-negative", fe.Field())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%s must be positive", fe.Field())
		}
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
