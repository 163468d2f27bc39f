package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc   string
		number string
		valid  bool
	}{
		{desc: "distinct digits", number: "1234", valid: true},
		{desc: "leading zero", number: "0123", valid: true},
		{desc: "descending", number: "9876", valid: true},
		{desc: "empty", number: "", valid: false},
		{desc: "too short", number: "123", valid: false},
		{desc: "too long", number: "12345", valid: false},
		{desc: "repeated digit", number: "1123", valid: false},
		{desc: "all same", number: "7777", valid: false},
		{desc: "repeat at the ends", number: "1231", valid: false},
		{desc: "letters", number: "12ab", valid: false},
		{desc: "mixed with symbol", number: "12-4", valid: false},
		{desc: "whitespace", number: "12 4", valid: false},
		{desc: "multibyte runes", number: "１２３４", valid: false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tC.valid, ValidNumber(tC.number))
		})
	}
}
