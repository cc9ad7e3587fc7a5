// Package menushare builds and parses the public menu share slug:
// {sluggified-cafe-name}--{userId}.
package menushare

import (
	"regexp"
	"strings"
)

// Persian letters are kept so the link still carries the readable cafe name.
var (
	disallowed     = regexp.MustCompile("[^0-9A-Za-z؀-ۿ-]+")
	spaces         = regexp.MustCompile(`[\s_]+`)
	repeatedDashes = regexp.MustCompile(`-+`)
)

const separator = "--"

// SlugifyCafeName converts a cafe name into a URL-safe slug. Falls back to
// "cafe" when nothing usable remains.
func SlugifyCafeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = spaces.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	s = repeatedDashes.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "cafe"
	}
	return s
}

// BuildSlug returns the slug used in the public /menu/{slug} route.
func BuildSlug(cafeName, userID string) string {
	return SlugifyCafeName(cafeName) + separator + userID
}

// ParseSlug extracts the userID after the last "--" separator.
// ok is false when the slug has no separator or an empty id.
func ParseSlug(slug string) (cafeSlug, userID string, ok bool) {
	idx := strings.LastIndex(slug, separator)
	if idx == -1 {
		return "", "", false
	}
	cafeSlug = slug[:idx]
	userID = slug[idx+len(separator):]
	if userID == "" {
		return "", "", false
	}
	if cafeSlug == "" {
		cafeSlug = "cafe"
	}
	return cafeSlug, userID, true
}
