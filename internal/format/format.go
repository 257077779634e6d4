package format

import (
	"strings"
	"time"
)

// Date formats t as a short, human friendly date, e.g. "Nov 15, 2024".
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// ISODate formats t as YYYY-MM-DD for machine readable attributes.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Year returns the four digit year of t.
func Year(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006")
}

// ReleaseLabel describes a release date relative to now:
// "Released Nov 15, 2024" or "Coming Jan 30, 2025".
func ReleaseLabel(release, now time.Time) string {
	if release.IsZero() {
		return "Coming soon"
	}
	if release.After(now) {
		return "Coming " + Date(release)
	}
	return "Released " + Date(release)
}

// List joins items with commas and a final "and" ("PC, Mobile and Switch").
func List(items []string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		if s := strings.TrimSpace(it); s != "" {
			clean = append(clean, s)
		}
	}
	switch len(clean) {
	case 0:
		return ""
	case 1:
		return clean[0]
	}
	return strings.Join(clean[:len(clean)-1], ", ") + " and " + clean[len(clean)-1]
}

// Truncate shortens s to at most n runes, cutting at a word boundary when possible.
func Truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	cut := string(r[:n])
	if i := strings.LastIndexByte(cut, ' '); i > n/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
