package validator

import (
	"fmt"
	"regexp"
)

// Matches fails when value does not match re. Empty values fail too; pair it
// with RequiredString when both messages are wanted.
//
// key overrides the translation key; pass "" to use KeyPattern.
func Matches(field, value string, re *regexp.Regexp, description, key string) Rule {
	if key == "" {
		key = KeyPattern
	}
	return Rule{
		Check: func() bool {
			return value != "" && re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid %s", description),
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}
