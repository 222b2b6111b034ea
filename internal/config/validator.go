package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
	suierrors "github.com/alexisbeaulieu97/suikit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			return name
		})

		_ = v.RegisterValidation("identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		// Option values must be plain YAML scalars.
		_ = v.RegisterValidation("scalar", func(fl validator.FieldLevel) bool {
			switch fl.Field().Kind() {
			case reflect.String, reflect.Bool,
				reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
				reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
				reflect.Float32, reflect.Float64:
				return true
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the definition.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return suierrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	identities := make(map[string]int, len(cfg.Options))
	for i, opt := range cfg.Options {
		id := opt.toDropdown().Identity()
		if first, exists := identities[id]; exists {
			return suierrors.NewValidationError(fieldForOption(i, "value"), fmt.Sprintf("duplicate option %q, first defined at options[%d]", id, first), nil)
		}
		identities[id] = i
	}

	if cfg.Multiple && cfg.Value != nil {
		return suierrors.NewValidationError("value", "multiple dropdowns take values, not value", nil)
	}
	if !cfg.Multiple && len(cfg.Values) > 0 {
		return suierrors.NewValidationError("values", "single dropdowns take value, not values", nil)
	}

	if cfg.AllowAdditions {
		if !cfg.Search {
			return suierrors.NewValidationError("allow_additions", "additions require search", nil)
		}
		return nil
	}

	options := cfg.DropdownOptions()
	if cfg.Value != nil && dropdown.IndexOfValue(options, cfg.Value) < 0 {
		return suierrors.NewValidationError("value", fmt.Sprintf("references unknown option %q", dropdown.ValueString(cfg.Value)), nil)
	}
	for i, value := range cfg.Values {
		if dropdown.IndexOfValue(options, value) < 0 {
			return suierrors.NewValidationError(fmt.Sprintf("values[%d]", i), fmt.Sprintf("references unknown option %q", dropdown.ValueString(value)), nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into suikit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return suierrors.NewValidationError(field, msg, err)
	}

	return suierrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root struct from the namespace, leaving the YAML
// path of the field, e.g. "options[2].text".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	return ns
}

func fieldForOption(index int, field string) string {
	return fmt.Sprintf("options[%d].%s", index, field)
}
