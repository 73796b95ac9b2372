package promo

import (
	"strings"

	"golang.org/x/text/language"
)

const fallbackLanguage = "en"

var (
	supportedTags  = []language.Tag{language.English, language.Arabic}
	supportedCodes = []string{"en", "ar"}
	matcher        = language.NewMatcher(supportedTags)
)

// ResolveLanguage picks "en" or "ar" from preferences in priority order. Each
// preference may be a BCP 47 tag, an Accept-Language list or a POSIX locale
// such as "ar_KW.UTF-8". Unknown or empty input resolves to English.
func ResolveLanguage(prefs ...string) string {
	cleaned := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = normalizeLocale(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return fallbackLanguage
	}
	_, idx := language.MatchStrings(matcher, cleaned...)
	if idx < 0 || idx >= len(supportedCodes) {
		return fallbackLanguage
	}
	return supportedCodes[idx]
}

func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, ",;") {
		return s
	}
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
