package validation

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"ledger-agent/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the ledger rules
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// Struct validates s against its `validate` tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("range_token", validateRangeToken)
	_ = v.RegisterValidation("type_label", validateTypeLabel)
	_ = v.RegisterValidation("notblank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateRangeToken accepts only the four supported window selectors
func validateRangeToken(fl validator.FieldLevel) bool {
	return models.RangeToken(fl.Field().String()).IsValid()
}

// validateTypeLabel accepts a single word-like label such as "expense" or "支出".
// Whether the label is a known synonym is decided by the type normalizer.
func validateTypeLabel(fl validator.FieldLevel) bool {
	label := strings.TrimSpace(fl.Field().String())
	if label == "" {
		return false
	}
	for _, r := range label {
		if !unicode.IsLetter(r) && !unicode.IsMark(r) && !unicode.IsDigit(r) && r != ' ' && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

func validateNotBlank(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(fl.Field().String()) != ""
}
