package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage parses the Accept-Language header and returns the most
// applicable language from the available languages list, using the CLDR
// matcher from golang.org/x/text/language. Regional variants match their base
// language ("en-US" matches "en"). If nothing matches, or the header is empty
// or malformed, the first available language is returned.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	idx, ok := MatchLanguage(available, desired...)
	if !ok {
		return available[0]
	}
	return available[idx]
}

// MatchLanguage returns the index of the available language that best serves
// the desired tags, in preference order. ok is false when no language is a
// reasonable match.
func MatchLanguage(available []string, desired ...language.Tag) (idx int, ok bool) {
	if len(available) == 0 || len(desired) == 0 {
		return 0, false
	}

	supported := make([]language.Tag, len(available))
	for n, lang := range available {
		supported[n] = language.Make(lang)
	}

	_, idx, confidence := language.NewMatcher(supported).Match(desired...)
	return idx, confidence != language.No
}
