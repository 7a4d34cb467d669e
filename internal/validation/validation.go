// Package validation wraps go-playground/validator with the shop's custom
// tags and turns its errors into apperrors.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	"shop/internal/apperrors"
	"shop/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	imageURLPattern    = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|gif|webp)$`)
	phonePattern       = regexp.MustCompile(`^[0-9]{10,11}$`)
	personNamePattern  = regexp.MustCompile(`^[\p{L}\p{M}\s]+$`)
	productNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)
)

var enumTags = map[string][]string{
	"orderstatus":   models.OrderStatusNames(),
	"paymentmethod": models.PaymentMethodNames(),
	"gender":        models.GenderNames(),
	"role":          models.RoleNames(),
}

// Validator validates request DTOs.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	v.RegisterCustomTypeFunc(dateValue, models.Date{})

	mustRegister(v, "imageurl", matches(imageURLPattern))
	mustRegister(v, "phone", matches(phonePattern))
	mustRegister(v, "personname", matches(personNamePattern))
	mustRegister(v, "productname", matches(productNamePattern))
	mustRegister(v, "past", inPast)
	for tag, names := range enumTags {
		mustRegister(v, tag, oneOfNames(names))
	}

	return &Validator{validate: v}
}

// Struct validates s and reports every violated field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fieldKey(fe)
		if _, seen := fields[key]; !seen {
			fields[key] = Message(fe)
		}
	}
	return apperrors.Validation(fields)
}

// Message renders a human readable message for a single field failure.
func Message(fe validator.FieldError) string {
	label := Humanize(fe.Field())
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "max":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must not exceed %s characters", label, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at most %s items", label, param)
		}
		return fmt.Sprintf("%s must not exceed %s", label, param)
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		case reflect.Slice, reflect.Array, reflect.Map:
			if param == "1" {
				return label + " must contain at least 1 item"
			}
			return fmt.Sprintf("%s must contain at least %s items", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "gt":
		if param == "0" {
			return label + " must be a positive number"
		}
		return fmt.Sprintf("%s must be greater than %s", label, param)
	case "gte":
		if param == "0" {
			return label + " cannot be negative"
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "imageurl":
		return label + " must be a valid HTTP/HTTPS URL ending with jpg, jpeg, png, gif, or webp"
	case "phone":
		return label + " must be 10 or 11 digits"
	case "personname":
		return label + " must contain only letters and spaces"
	case "productname":
		return label + " can only contain letters, numbers, spaces, hyphens and underscores"
	case "past":
		return label + " must be a date in the past"
	}
	if names, ok := enumTags[fe.Tag()]; ok {
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(names, ", "))
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
}

// Humanize turns a JSON field name such as "imageURL" into "Image URL".
func Humanize(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	words = append(words, string(runes[start:]))

	for i, w := range words {
		switch {
		case strings.EqualFold(w, "id"):
			words[i] = "ID"
		case isAcronym(w):
		default:
			words[i] = strings.ToLower(w)
		}
	}
	first := []rune(words[0])
	first[0] = unicode.ToUpper(first[0])
	words[0] = string(first)
	return strings.Join(words, " ")
}

func isAcronym(w string) bool {
	if len(w) < 2 {
		return false
	}
	for _, r := range w {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// fieldKey drops the root struct name from the namespace, keeping nested
// paths like orderItems[0].itemQuantity.
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(models.Date); ok {
		if d.IsZero() {
			return nil
		}
		return d.Time
	}
	return nil
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func inPast(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	return ok && t.Before(time.Now())
}

func oneOfNames(names []string) validator.Func {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	return func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}
