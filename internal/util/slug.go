package util

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonWordRe    = regexp.MustCompile(`[^\w-]+`)
)

// Slugify derives a URL slug from a display name: lowercased, runs of
// whitespace replaced with a single hyphen, everything outside [A-Za-z0-9_-]
// stripped. Leading or trailing whitespace becomes a hyphen; stored slugs
// rely on this shape staying stable, so it is not cleaned up. Products,
// categories and attributes all share this rule.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonWordRe.ReplaceAllString(s, "")
}

// DataItem derives the category data_item value: lowercased with whitespace
// removed outright, no hyphens. Distinct from Slugify on purpose; the
// storefront filters categories by this compact form.
func DataItem(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRe.ReplaceAllString(s, "")
}
