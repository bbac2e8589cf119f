package utils

import (
	"strconv"
	"strings"
)

// Slugify lowercases the name and collapses every run of
// non-alphanumeric characters into a single hyphen.
// "Hotel Taj, Agra!" -> "hotel-taj-agra".
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// NextSlug returns the probe candidate for the given attempt:
// base, base-1, base-2, ...
func NextSlug(base string, attempt int) string {
	if attempt <= 0 {
		return base
	}
	return base + "-" + strconv.Itoa(attempt)
}
