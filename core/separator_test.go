package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohorko/zeeklog/core"
)

func TestParseSeparator(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "hex tab", input: `\x09`, expected: "\t"},
		{name: "hex comma", input: `\x2c`, expected: ","},
		{name: "tab escape", input: `\t`, expected: "\t"},
		{name: "newline escape", input: `\n`, expected: "\n"},
		{name: "plain character", input: ",", expected: ","},
		{name: "unrecognized escape stays literal", input: `\q`, expected: `\q`},
		{name: "truncated hex stays literal", input: `\x9`, expected: `\x9`},
		{name: "invalid hex digits stay literal", input: `\xzz`, expected: `\xzz`},
		{name: "trailing backslash stays literal", input: `\`, expected: `\`},
		{name: "mixed", input: `a\x09b`, expected: "a\tb"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, core.ParseSeparator(tc.input))
		})
	}
}
