package utils

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotBlank rejects whitespace-only strings; empty strings are left to validation.Required
func NotBlank(field string) validation.RuleFunc {
	return func(value any) error {
		if s, ok := value.(string); ok && s != "" && IsBlank(s) {
			return errors.New(field + " must not be blank")
		}
		return nil
	}
}

// MaxRunes limits a string to n characters
func MaxRunes(n int) validation.RuleFunc {
	return func(value any) error {
		if s, ok := value.(string); ok && RuneLen(s) > n {
			return validation.NewError("validation_length_too_long", "must be no more than {{.max}} characters").
				SetParams(map[string]any{"max": n})
		}
		return nil
	}
}
