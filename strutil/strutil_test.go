package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boolgo/codec"
)

func TestStr_Basics(t *testing.T) {
	s := New("Hello, World!")
	assert.Equal(t, "Hello, World!", s.String())
	assert.Equal(t, 13, s.Len())
	assert.False(t, s.IsEmpty())

	assert.True(t, Str("").IsEmpty())
	assert.True(t, Str("  \t").IsBlank())
	assert.False(t, s.IsBlank())

	assert.Equal(t, "42", New(42).String())
}

func TestStr_Patterns(t *testing.T) {
	s := Str("Hello, World!")

	assert.True(t, s.MatchesPattern(`^Hello`))
	assert.False(t, s.MatchesPattern(`^World`))
	assert.False(t, s.MatchesPattern(`[invalid`))

	matches, err := Str("one two one").FindAll(`one`)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Index: 0, Text: "one"}, matches[0])
	assert.Equal(t, Match{Index: 8, Text: "one"}, matches[1])

	_, err = s.FindAll(`[invalid`)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	replaced, err := s.ReplaceAllPattern(`o`, "0")
	require.NoError(t, err)
	assert.Equal(t, Str("Hell0, W0rld!"), replaced)

	n, err := s.CountPattern(`l`)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestStr_Base64(t *testing.T) {
	s := Str("hello")
	encoded := s.ToBase64()
	assert.Equal(t, "aGVsbG8=", encoded)

	decoded, err := FromBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)

	_, err = FromBase64("!!! not base64 !!!")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestStr_URLEncoding(t *testing.T) {
	s := Str("a b&c")
	encoded := s.URLEncode()
	assert.Equal(t, "a+b%26c", encoded)

	decoded, err := URLDecode(encoded)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)

	_, err = URLDecode("%zz")
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestStr_Validation(t *testing.T) {
	assert.True(t, Str("https://example.com/x").IsValidURL())
	assert.False(t, Str("not a url").IsValidURL())
	assert.False(t, Str("/relative/path").IsValidURL())

	assert.True(t, Str("user@example.com").IsValidEmail())
	assert.False(t, Str("user@").IsValidEmail())
	assert.False(t, Str("User <user@example.com>").IsValidEmail())

	assert.True(t, Str("192.168.0.1").IsValidIPv4())
	assert.False(t, Str("256.1.1.1").IsValidIPv4())
	assert.False(t, Str("::1").IsValidIPv4())
}

func TestStr_Classes(t *testing.T) {
	assert.True(t, Str("12345").IsNumeric())
	assert.False(t, Str("12a45").IsNumeric())
	assert.False(t, Str("").IsNumeric())

	assert.True(t, Str("abcXYZ").IsAlphabetic())
	assert.False(t, Str("abc1").IsAlphabetic())

	assert.True(t, Str("abc123").IsAlphanumeric())
	assert.False(t, Str("abc 123").IsAlphanumeric())
}

func TestStr_Reverse(t *testing.T) {
	assert.Equal(t, Str("olleh"), Str("hello").Reverse())
	assert.Equal(t, Str("!dlroW ,olleH"), Str("Hello, World!").Reverse())
	assert.Equal(t, Str("übü"), Str("übü").Reverse())
}

func TestStr_Palindrome(t *testing.T) {
	assert.True(t, Str("A man, a plan, a canal: Panama").IsPalindrome())
	assert.True(t, Str("").IsPalindrome())
	assert.False(t, Str("hello").IsPalindrome())
}

func TestStr_WordCountSubstring(t *testing.T) {
	assert.Equal(t, 3, Str("one  two\tthree").WordCount())
	assert.Equal(t, 0, Str("   ").WordCount())

	sub, err := Str("hello").Substring(1, 4)
	require.NoError(t, err)
	assert.Equal(t, Str("ell"), sub)

	_, err = Str("hello").Substring(4, 2)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = Str("hello").Substring(0, 6)
	assert.ErrorIs(t, err, ErrInvalidOperation)
	_, err = Str("hello").Substring(-1, 2)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestStr_CodecRoundTrip(t *testing.T) {
	s := Str(`quotes " and unicode ü`)

	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}, nil} {
		data, err := s.Encode(c)
		require.NoError(t, err)

		decoded, err := Decode(c, data)
		require.NoError(t, err)
		assert.Equal(t, s, decoded)
	}

	_, err := Decode(codec.JSON{}, []byte("not json"))
	assert.ErrorIs(t, err, ErrInvalidEncoding)
}
