// Package locale renders dates using per-language short-date conventions.
package locale

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Default is used when no tag is configured or a tag has no close match.
var Default = language.AmericanEnglish

// supported and layouts are index aligned. The first entry is the
// matcher fallback.
var (
	supported = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Italian,
		language.Spanish,
		language.Japanese,
		language.Chinese,
		language.BrazilianPortuguese,
	}
	layouts = []string{
		"1/2/2006",
		"02/01/2006",
		"2.1.2006",
		"02/01/2006",
		"2/1/2006",
		"2/1/2006",
		"2006/1/2",
		"2006/1/2",
		"02/01/2006",
	}
	matcher = language.NewMatcher(supported)
)

// Parse validates a BCP 47 tag such as "en-US" or "de".
func Parse(tag string) (language.Tag, error) {
	if tag == "" {
		return Default, nil
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	return t, nil
}

// ShortDate formats d using the short-date convention of the locale that
// best matches tag.
func ShortDate(tag language.Tag, d time.Time) string {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return d.Format(layouts[idx])
}
