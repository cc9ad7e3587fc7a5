package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarvcafe/cafepos-api/pkg/phone"
)

func TestNormalize_AcceptedForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09123456789", "09123456789"},
		{"9123456789", "09123456789"},
		{"+989123456789", "09123456789"},
		{" 0912 345 6789 ", "09123456789"},
		{"+98 912 345 6789", "09123456789"},
	}
	for _, tc := range cases {
		got, ok := phone.Normalize(tc.in)
		assert.True(t, ok, "input %q should be accepted", tc.in)
		assert.Equal(t, tc.want, got, "input %q should normalize to the 0-prefixed form", tc.in)
	}
}

func TestNormalize_RejectedForms(t *testing.T) {
	cases := []string{
		"",
		"08123456789",   // not a 9-prefixed mobile
		"0912345678",    // too short
		"091234567890",  // too long
		"+979123456789", // wrong country code
		"telephone",
		"0912345678a",
	}
	for _, in := range cases {
		got, ok := phone.Normalize(in)
		assert.False(t, ok, "input %q should be rejected", in)
		assert.Empty(t, got)
	}
}
