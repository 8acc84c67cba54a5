// Package locale converts between the locale names used by translation
// resources (Qt style, "nl_NL") and BCP 47 language tags.
package locale

import (
	"fmt"
	"strings"

	"github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Fallback is used when the system locale cannot be detected.
const Fallback = "en"

// Parse accepts "nl_NL", "eo_001", "de-AT" and POSIX names such as
// "de_DE.UTF-8" or "sr_RS@latin".
func Parse(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, fmt.Errorf("locale: %q is not a language", s)
	}
	tag, err := language.Parse(strings.ReplaceAll(s, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("locale: parse %q: %w", s, err)
	}
	return tag, nil
}

// Qt renders tag the way Qt names translation files ("nl_NL").
func Qt(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", "_")
}

// Detect returns the user's locale from the environment, or Fallback.
func Detect() string {
	s, err := jibber_jabber.DetectIETF()
	if err != nil {
		return Fallback
	}
	if _, err := Parse(s); err != nil {
		return Fallback
	}
	return s
}
