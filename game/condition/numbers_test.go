package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCountToken(t *testing.T) {
	cases := []struct {
		token string
		want  int
		ok    bool
	}{
		{"7", 7, true},
		{"0", 0, true},
		{"a", 1, true},
		{"an", 1, true},
		{"one", 1, true},
		{"seven", 7, true},
		{"twenty", 20, true},
		{"twenty-two", 22, true},
		{"forty five", 45, true},
		{"hundred", 100, true},
		{"Ten", 10, true},
		{" three ", 3, true},
		{"", 0, false},
		{"-1", 0, false},
		{"lots", 0, false},
		{"twenty-lots", 0, false},
		{"seven-three", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseCountToken(tc.token)
		assert.Equal(t, tc.ok, ok, "token %q", tc.token)
		if tc.ok {
			assert.Equal(t, tc.want, got, "token %q", tc.token)
		}
	}
}
