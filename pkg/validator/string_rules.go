package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Translation keys reported by the string rules.
const (
	KeyRequired  = "validation.required"
	KeyMaxLength = "validation.max_length"
	KeyPattern   = "validation.pattern"
)

// RequiredString fails when value is empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: KeyRequired,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLenString fails when value has more than max characters.
// Length is counted in runes so multi-byte input is not penalised.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: KeyMaxLength,
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
