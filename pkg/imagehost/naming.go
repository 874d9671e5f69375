package imagehost

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PublicID derives a unique public id for an upload from its form field name.
func PublicID(field string) string {
	return fmt.Sprintf("%s-%d", field, time.Now().UnixMilli())
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// SanitizeFilename normalizes a client-supplied filename: accents stripped,
// lowercased, anything outside [a-z0-9._-] collapsed to a single dash.
func SanitizeFilename(name string) string {
	s := removeAccents(strings.ToLower(name))
	s = unsafeFilenameChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "upload"
	}
	return s
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
