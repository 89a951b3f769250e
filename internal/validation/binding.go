package validation

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindings installs the fpemail, fppassword, department and jobrole
// tags on gin's validator.
func RegisterBindings(departments, roles []string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return Register(v, departments, roles)
}

func Register(v *validator.Validate, departments, roles []string) error {
	rules := map[string]validator.Func{
		"fpemail": func(fl validator.FieldLevel) bool {
			return ValidateEmail(fl.Field().String())
		},
		"fppassword": func(fl validator.FieldLevel) bool {
			return ValidatePassword(fl.Field().String())
		},
		"department": func(fl validator.FieldLevel) bool {
			return Contains(departments, fl.Field().String())
		},
		"jobrole": func(fl validator.FieldLevel) bool {
			return Contains(roles, fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}
