package registry

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// namePlaceholder is replaced with the zero-based index in mass-set
	// name patterns.
	namePlaceholder = "{n}"

	// repeatMarker on the final value token makes the value list cycle.
	repeatMarker = "{r}"
)

func validateNamePattern(pattern string) error {
	if !strings.Contains(pattern, namePlaceholder) {
		return fmt.Errorf("%w: name pattern %q lacks %s", ErrInvalidPattern, pattern, namePlaceholder)
	}
	return nil
}

func expandName(pattern string, i int) string {
	return strings.ReplaceAll(pattern, namePlaceholder, strconv.Itoa(i))
}

// valuePattern is a parsed mass-set value list.
type valuePattern struct {
	values []bool
	repeat bool
}

// parseValuePattern splits, validates and parses a comma-separated
// true/false list. The length check happens before token parsing, so a
// too-short list without a repeat marker fails as ErrInvalidPattern even
// when it also contains garbage tokens.
func parseValuePattern(pattern string, count int) (valuePattern, error) {
	trimmed := strings.TrimSpace(pattern)
	if trimmed == "" {
		return valuePattern{}, fmt.Errorf("%w: value pattern is empty", ErrInvalidPattern)
	}

	parts := strings.Split(trimmed, ",")
	if !strings.Contains(pattern, repeatMarker) && len(parts) < count {
		return valuePattern{}, fmt.Errorf("%w: value pattern has %d entries for %d names and no repeat marker",
			ErrInvalidPattern, len(parts), count)
	}

	vp := valuePattern{
		values: make([]bool, 0, len(parts)),
		repeat: strings.HasSuffix(trimmed, repeatMarker),
	}
	for _, part := range parts {
		tok := strings.TrimSuffix(strings.TrimSpace(part), repeatMarker)
		switch strings.ToLower(tok) {
		case "true":
			vp.values = append(vp.values, true)
		case "false":
			vp.values = append(vp.values, false)
		default:
			return valuePattern{}, fmt.Errorf("%w: %q", ErrInvalidBooleanToken, part)
		}
	}
	return vp, nil
}

// at returns the value for index i. A repeating list cycles modulo its
// length. A non-repeating list that is still shorter than the requested
// count (possible when the repeat marker sits on a non-final token, so the
// length check passed) reuses its last value for the overhang.
func (p valuePattern) at(i int) bool {
	if p.repeat {
		return p.values[i%len(p.values)]
	}
	if i >= len(p.values) {
		return p.values[len(p.values)-1]
	}
	return p.values[i]
}
