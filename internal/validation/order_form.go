// Package validation checks the checkout form before it is sent to the
// commerce API.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field identifiers reported in FieldError.Field.
const (
	FieldName    = "customerName"
	FieldPhone   = "customerPhone"
	FieldEmail   = "customerEmail"
	FieldAddress = "customerAddress"
)

// DefaultPayment is used when the form does not carry a known payment method.
const DefaultPayment = "ATM"

// PaymentMethods accepted by the commerce API.
var PaymentMethods = []string{"ATM", "信用卡", "超商付款", "Apple Pay"}

var (
	phonePattern = regexp.MustCompile(`^09\d{8}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// OrderForm is the checkout form as posted by the storefront.
type OrderForm struct {
	Name    string `form:"name" json:"name" field:"customerName" validate:"notblank"`
	Tel     string `form:"tel" json:"tel" field:"customerPhone" validate:"notblank,twmobile"`
	Email   string `form:"email" json:"email" field:"customerEmail" validate:"notblank,looseemail"`
	Address string `form:"address" json:"address" field:"customerAddress" validate:"notblank"`
	Payment string `form:"payment" json:"payment" field:"-"`
}

// FieldError is a single field-scoped validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of ValidateOrderForm.
type Result struct {
	IsValid bool         `json:"isValid"`
	Errors  []FieldError `json:"errors"`
}

// ErrorFor returns the message recorded for field, if any.
func (r Result) ErrorFor(field string) string {
	for _, fe := range r.Errors {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

var messages = map[string]map[string]string{
	FieldName: {
		"notblank": "Name is required",
	},
	FieldPhone: {
		"notblank": "Phone is required",
		"twmobile": "Phone format is invalid, use a mobile number like 09xxxxxxxx",
	},
	FieldEmail: {
		"notblank":   "Email is required",
		"looseemail": "Email format is invalid",
	},
	FieldAddress: {
		"notblank": "Address is required",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("field")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return ValidateRequired(fl.Field().String())
	})
	mustRegister(v, "twmobile", func(fl validator.FieldLevel) bool {
		return ValidatePhone(fl.Field().String())
	})
	mustRegister(v, "looseemail", func(fl validator.FieldLevel) bool {
		return ValidateEmail(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateRequired reports whether value has any non-whitespace content.
func ValidateRequired(value string) bool {
	return strings.TrimSpace(value) != ""
}

// ValidatePhone reports whether phone is a Taiwanese mobile number (09 + 8 digits).
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateEmail performs a loose local@domain.tld shape check.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateOrderForm checks name, phone, email and address, in that order.
// Each field contributes at most one error.
func ValidateOrderForm(form OrderForm) Result {
	errs := make([]FieldError, 0)

	err := validate.Struct(form)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, fieldError := range validationErrors {
			errs = append(errs, FieldError{
				Field:   fieldError.Field(),
				Message: messageFor(fieldError.Field(), fieldError.Tag()),
			})
		}
	}

	return Result{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func messageFor(field, tag string) string {
	if msg, ok := messages[field][tag]; ok {
		return msg
	}
	return field + " is invalid"
}

// NormalizePayment maps unknown or empty payment methods to DefaultPayment.
func NormalizePayment(payment string) string {
	trimmed := strings.TrimSpace(payment)
	for _, method := range PaymentMethods {
		if trimmed == method {
			return method
		}
	}
	return DefaultPayment
}
