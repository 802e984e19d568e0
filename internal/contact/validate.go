// Package contact implements the contact form: field validation and the
// simulated submission that ends in a one-shot confirmation notice.
package contact

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// Form field names as they appear in the posted form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// Values are the visitor's inputs. Phone is optional.
type Values struct {
	Name    string `form:"name" validate:"min=2"`
	Email   string `form:"email" validate:"email"`
	Phone   string `form:"phone"`
	Message string `form:"message" validate:"min=10"`
}

// Violation is a single field validation failure.
type Violation int

const (
	NameTooShort Violation = iota + 1
	InvalidEmail
	MessageTooShort
)

// String is the inline message shown next to the field.
func (v Violation) String() string {
	switch v {
	case NameTooShort:
		return "Name must be at least 2 characters."
	case InvalidEmail:
		return "Please enter a valid email address."
	case MessageTooShort:
		return "Message must be at least 10 characters."
	default:
		return "Invalid value."
	}
}

// FieldErrors maps a form field name to its violation.
type FieldErrors map[string]Violation

// Fields returns the failing field names in sorted order.
func (e FieldErrors) Fields() []string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("form")
	})
	return v
}

// Normalize puts every field in NFC form and trims surrounding whitespace.
func (v Values) Normalize() Values {
	clean := func(s string) string {
		return strings.TrimSpace(norm.NFC.String(s))
	}
	return Values{
		Name:    clean(v.Name),
		Email:   clean(v.Email),
		Phone:   clean(v.Phone),
		Message: clean(v.Message),
	}
}

// Validate checks every field and returns all failures, or nil when the
// values may be submitted.
func (v Values) Validate() FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	errors.As(err, &verrs)

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		switch fe.Field() {
		case FieldName:
			fields[FieldName] = NameTooShort
		case FieldEmail:
			fields[FieldEmail] = InvalidEmail
		case FieldMessage:
			fields[FieldMessage] = MessageTooShort
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Set assigns a single field by its form name.
func (v *Values) Set(field, value string) error {
	switch field {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldMessage:
		v.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}
