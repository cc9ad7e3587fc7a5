package menushare_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarvcafe/cafepos-api/pkg/menushare"
)

func TestSlugifyCafeName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Cafe Sarv", "cafe-sarv"},
		{"کافه سرو", "کافه-سرو"},
		{"  Cafe   Roma  ", "cafe-roma"},
		{"Cafe & Bar!!", "cafe-bar"},
		{"under_score name", "under-score-name"},
		{"---", "cafe"},
		{"", "cafe"},
		{"!!!", "cafe"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, menushare.SlugifyCafeName(tc.name), "name %q", tc.name)
	}
}

func TestBuildSlug(t *testing.T) {
	slug := menushare.BuildSlug("کافه سرو", "abc-123")
	assert.Equal(t, "کافه-سرو--abc-123", slug)
}

func TestParseSlug(t *testing.T) {
	cafeSlug, userID, ok := menushare.ParseSlug("کافه-سرو--abc-123")
	assert.True(t, ok)
	assert.Equal(t, "کافه-سرو", cafeSlug)
	assert.Equal(t, "abc-123", userID)
}

func TestParseSlug_SplitsAtLastSeparator(t *testing.T) {
	// A cafe slug may itself contain "--"; the id always follows the last one.
	cafeSlug, userID, ok := menushare.ParseSlug("a--b--user-9")
	assert.True(t, ok)
	assert.Equal(t, "a--b", cafeSlug)
	assert.Equal(t, "user-9", userID)
}

func TestParseSlug_Invalid(t *testing.T) {
	_, _, ok := menushare.ParseSlug("no-separator-here")
	assert.False(t, ok, "slug without separator must not parse")

	_, _, ok = menushare.ParseSlug("cafe--")
	assert.False(t, ok, "empty id must not parse")
}

func TestParseSlug_EmptyCafeName(t *testing.T) {
	cafeSlug, userID, ok := menushare.ParseSlug("--abc")
	assert.True(t, ok)
	assert.Equal(t, "cafe", cafeSlug)
	assert.Equal(t, "abc", userID)
}

func TestBuildParse_Roundtrip(t *testing.T) {
	slug := menushare.BuildSlug("Cafe Sarv", "11111111-2222-3333-4444-555555555555")
	_, userID, ok := menushare.ParseSlug(slug)
	assert.True(t, ok)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", userID)
}
