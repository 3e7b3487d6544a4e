package config

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ironbus-io/ironbus-core/pkg/fspath"
)

// RegisterConfigValidators registers the custom validation tags used by the
// Config struct. The tags delegate to the fspath factories so struct
// validation and value construction can never disagree.
func RegisterConfigValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("file_name", validateFileName); err != nil {
		return err
	}
	if err := v.RegisterValidation("fs_path", validatePath); err != nil {
		return err
	}
	return v.RegisterValidation("deliver_strategy", validateDeliverStrategy)
}

func validateFileName(fl validator.FieldLevel) bool {
	_, err := fspath.NewFileName(fl.Field().String())
	return err == nil
}

func validatePath(fl validator.FieldLevel) bool {
	_, err := fspath.NewPath(fl.Field().String())
	return err == nil
}

func validateDeliverStrategy(fl validator.FieldLevel) bool {
	return UnableToDeliverStrategy(fl.Field().Int()).IsValid()
}

var newValidator = sync.OnceValues(func() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterConfigValidators(v); err != nil {
		return nil, fmt.Errorf("failed to register config validators: %w", err)
	}
	return v, nil
})

// Validate checks that every field of cfg satisfies its declared rules.
// A Config built from Default and mutated only through fspath factories and
// the strategy constants always passes; Validate exists for values that
// crossed a population boundary. Capacity fields carry no floor, zero
// included; the consuming subsystem owns any such policy.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	v, err := newValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
