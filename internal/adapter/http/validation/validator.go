package validation

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of deal due dates.
const DateLayout = "2006-01-02"

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse(DateLayout, value)
		return err == nil
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.v.Struct(s)
}

// Details maps each failing field to the tag it failed on.
func Details(err error) map[string]string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	details := make(map[string]string, len(errs))
	for _, e := range errs {
		details[e.Namespace()] = e.Tag()
	}
	return details
}
