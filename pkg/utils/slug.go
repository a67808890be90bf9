package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]`)
var whitespace = regexp.MustCompile(`\s+`)

// MakeProjectID turns a title into a URL slug: non-alphanumerics become
// spaces, runs of whitespace collapse to single hyphens, and a random
// suffix guarantees uniqueness across identical titles.
func MakeProjectID(title string) string {
	slug := nonAlnum.ReplaceAllString(title, " ")
	slug = strings.TrimSpace(slug)
	slug = whitespace.ReplaceAllString(slug, "-")
	return slug + "-" + randomSuffix()
}

func randomSuffix() string {
	id := uuid.New().String()
	return strings.ReplaceAll(id, "-", "")[:12]
}
