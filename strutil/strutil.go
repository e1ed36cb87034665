// Package strutil provides an enriched string type with pattern matching,
// encoding and validation helpers.
//
// Str is a thin convenience layer over the standard regexp, base64, URL
// and net facilities; it adds no novel algorithms, only a uniform method
// surface and the error taxonomy shared with the rest of the module.
package strutil

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/hupe1980/boolgo/codec"
)

var (
	// ErrInvalidOperation is returned when an operation cannot complete
	// with the given parameters, e.g. a bad regular expression or
	// out-of-range substring bounds.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidEncoding is returned when decoding base64, URL or codec
	// input fails.
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Str is a string with extra behavior. Being a defined string type, it
// converts freely to and from string and keeps its immutability.
type Str string

// New creates a Str from any stringer-compatible value.
func New(v any) Str {
	return Str(fmt.Sprint(v))
}

// String implements fmt.Stringer.
func (s Str) String() string { return string(s) }

// Len returns the length in bytes.
func (s Str) Len() int { return len(s) }

// IsEmpty reports whether the string has no bytes.
func (s Str) IsEmpty() bool { return len(s) == 0 }

// Match is one regexp hit: its byte index and matched text.
type Match struct {
	Index int
	Text  string
}

// MatchesPattern reports whether the string matches the regular
// expression. An invalid pattern reports false.
func (s Str) MatchesPattern(pattern string) bool {
	ok, err := regexp.MatchString(pattern, string(s))
	return err == nil && ok
}

// FindAll returns every match of the regular expression in order.
func (s Str) FindAll(pattern string) ([]Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	locs := re.FindAllStringIndex(string(s), -1)
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Match{Index: loc[0], Text: string(s[loc[0]:loc[1]])})
	}
	return out, nil
}

// ReplaceAllPattern replaces every match of the regular expression with
// the replacement text.
func (s Str) ReplaceAllPattern(pattern, replacement string) (Str, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	return Str(re.ReplaceAllString(string(s), replacement)), nil
}

// CountPattern counts the matches of the regular expression.
func (s Str) CountPattern(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	return len(re.FindAllStringIndex(string(s), -1)), nil
}

// ToBase64 encodes the string with standard base64.
func (s Str) ToBase64() string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// FromBase64 decodes standard base64 input.
func FromBase64(encoded string) (Str, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return Str(b), nil
}

// URLEncode percent-encodes the string for use in a query component.
func (s Str) URLEncode() string {
	return url.QueryEscape(string(s))
}

// URLDecode reverses percent-encoding.
func URLDecode(encoded string) (Str, error) {
	v, err := url.QueryUnescape(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return Str(v), nil
}

// IsValidURL reports whether the string parses as an absolute URL.
func (s Str) IsValidURL() bool {
	u, err := url.Parse(string(s))
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsValidEmail reports whether the string parses as a single RFC 5322
// address.
func (s Str) IsValidEmail() bool {
	addr, err := mail.ParseAddress(string(s))
	return err == nil && addr.Address == string(s)
}

// IsValidIPv4 reports whether the string is a literal IPv4 address.
func (s Str) IsValidIPv4() bool {
	ip := net.ParseIP(string(s))
	return ip != nil && ip.To4() != nil && strings.Contains(string(s), ".")
}

// IsNumeric reports whether the string is non-empty and all digits.
func (s Str) IsNumeric() bool {
	return s.all(unicode.IsDigit)
}

// IsAlphabetic reports whether the string is non-empty and all letters.
func (s Str) IsAlphabetic() bool {
	return s.all(unicode.IsLetter)
}

// IsAlphanumeric reports whether the string is non-empty and all letters
// or digits.
func (s Str) IsAlphanumeric() bool {
	return s.all(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) })
}

// IsBlank reports whether the string is empty or all whitespace.
func (s Str) IsBlank() bool {
	return strings.TrimSpace(string(s)) == ""
}

func (s Str) all(pred func(rune) bool) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

// Reverse returns the string with its runes in reverse order.
func (s Str) Reverse() Str {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return Str(runes)
}

// IsPalindrome reports whether the letters and digits of the string read
// the same in both directions, ignoring case.
func (s Str) IsPalindrome() bool {
	var runes []rune
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			runes = append(runes, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// WordCount returns the number of whitespace-separated fields.
func (s Str) WordCount() int {
	return len(strings.Fields(string(s)))
}

// Substring returns the byte range [start, end).
func (s Str) Substring(start, end int) (Str, error) {
	if start < 0 || end > len(s) || end < start {
		return "", fmt.Errorf("%w: substring [%d, %d) of %d bytes", ErrInvalidOperation, start, end, len(s))
	}
	return s[start:end], nil
}

// Bytes returns a copy of the string's bytes.
func (s Str) Bytes() []byte {
	return []byte(s)
}

// Encode serializes the string with the given codec. A nil codec uses
// codec.Default.
func (s Str) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(string(s))
}

// Decode deserializes codec output produced by Encode. A nil codec uses
// codec.Default.
func Decode(c codec.Codec, data []byte) (Str, error) {
	if c == nil {
		c = codec.Default
	}
	var v string
	if err := c.Unmarshal(data, &v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return Str(v), nil
}
