package validation

import (
	"reflect"
	"strings"
	"sync"

	"walletlink/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
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

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("tx_type", validateTransactionType)
	_ = v.RegisterValidation("icon_type", validateIconType)
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)

	// Money fields are compared numerically.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct against its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() > 0
	case reflect.Struct:
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.IsPositive()
		}
	}
	return false
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.IsValidTransactionType(fl.Field().String())
}

func validateIconType(fl validator.FieldLevel) bool {
	return models.IsValidIconType(fl.Field().String())
}

func validateRole(fl validator.FieldLevel) bool {
	return models.IsValidRole(fl.Field().String())
}
