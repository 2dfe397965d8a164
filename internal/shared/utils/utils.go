package utils

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseID parses a positive integer identifier from a path parameter
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", s)
	}
	return id, nil
}

// IsBlank reports whether s is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RuneLen counts characters rather than bytes, matching VARCHAR(n) semantics
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
