package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/terrafusion/internal/logger"
	"github.com/alexisbeaulieu97/terrafusion/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("theme_variant", func(fl validator.FieldLevel) bool {
			_, err := components.ParseThemeVariant(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, err := components.ParseThemeMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := logger.ParseLevel(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
