package form

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/Sibghat34/shippo-api/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// numericPrefix matches the leading decimal literal of a string, the part a
// browser's parseFloat would consume.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("positive_number", func(fl validator.FieldLevel) bool {
		return IsPositiveNumber(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("utf16_min", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return UTF16Len(fl.Field().String()) >= limit
	}); err != nil {
		panic(err)
	}
	return v
}

// UTF16Len counts UTF-16 code units, the length a browser reports for s. A
// character outside the BMP counts as two.
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// FieldErrors maps each failing field to its first message.
type FieldErrors map[Field]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for f := range fe {
		keys = append(keys, string(f))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[Field(k)])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

func (fe FieldErrors) Is(target error) bool {
	return target == entity.ErrInvalidData
}

// Validate checks every field and returns nil when all rules hold.
func Validate(v Values) error {
	errs := FieldErrors{}
	for _, f := range Fields {
		if msg := ValidateField(f, Value(v, f)); msg != "" {
			errs[f] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateField returns the message of the first rule value breaks, or an
// empty string.
func ValidateField(f Field, value string) string {
	spec, ok := specs[f]
	if !ok {
		return ""
	}

	err := validate.Var(value, spec.rules)
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		if msg, ok := spec.messages[validationErrs[0].Tag()]; ok {
			return msg
		}
	}
	return spec.label + " is invalid."
}

// IsPositiveNumber reports whether the numeric prefix of s is greater than zero.
func IsPositiveNumber(s string) bool {
	prefix := numericPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return false
	}
	d, err := decimal.NewFromString(normalizeNumber(prefix))
	if err != nil {
		return false
	}
	return d.IsPositive()
}

func normalizeNumber(s string) string {
	s = strings.TrimPrefix(s, "+")

	mantissa, exponent := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, exponent = s[:i], s[i:]
	}

	neg := strings.HasPrefix(mantissa, "-")
	mantissa = strings.TrimPrefix(mantissa, "-")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	mantissa = strings.TrimSuffix(mantissa, ".")
	if neg {
		mantissa = "-" + mantissa
	}
	return mantissa + exponent
}
