// Package validate holds the pure input predicates shared by the admin write
// paths. The admin page mirrors some of these client-side for latency; the
// checks here are the authoritative ones.
package validate

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/ashleyjkell/craftidad-landing/internal/models"
)

// MaxBioLength is the longest profile bio accepted, measured after trimming.
const MaxBioLength = 500

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidURL reports whether raw parses as an absolute http or https URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsValidHexColor reports whether s is "#" followed by exactly six hex digits.
func IsValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// IsValidBio reports whether bio fits the profile limit once trimmed.
func IsValidBio(bio string) bool {
	return len(strings.TrimSpace(bio)) <= MaxBioLength
}

// IsValidVisualType reports whether v names one of the link visual modes.
func IsValidVisualType(v string) bool {
	switch v {
	case models.VisualNone, models.VisualImage, models.VisualIcon:
		return true
	}
	return false
}
