//go:build unit

package appointment_test

import (
	"strings"
	"testing"

	"bookline/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessCode(t *testing.T) {
	const charset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

	seen := make(map[rune]int, len(charset))
	for i := 0; i < 500; i++ {
		code, err := appointment.GenerateAccessCode()
		require.NoError(t, err)
		require.Len(t, code.String(), appointment.AccessCodeLength)
		for _, r := range code.String() {
			assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q in %s", r, code)
			seen[r]++
		}
	}

	// 3000 uniform draws over 31 symbols reach every symbol; a draw that
	// cannot is biased.
	for _, r := range charset {
		assert.Positive(t, seen[r], "character %q never drawn", r)
	}
}

func TestParseAccessCode(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		code, err := appointment.ParseAccessCode("  abc234 ")
		require.NoError(t, err)
		assert.Equal(t, "ABC234", code.String())
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
		}{
			{name: "too short", input: "ABC23"},
			{name: "too long", input: "ABC2345"},
			{name: "empty", input: ""},
			{name: "lookalike zero", input: "ABC230"},
			{name: "lookalike letter O", input: "ABCO34"},
			{name: "lookalike one", input: "ABC231"},
			{name: "lookalike letter I", input: "ABCI34"},
			{name: "lookalike letter L", input: "ABCL34"},
			{name: "punctuation", input: "AB-C34"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := appointment.ParseAccessCode(tc.input)
				assert.ErrorIs(t, err, appointment.ErrInvalidAccessCode)
			})
		}
	})
}
