// Package i18n resolves the request language and prints localized web copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the viewer's language preference.
	LangCookieName = "staffbook_lang"
)

var (
	supported = []language.Tag{language.AmericanEnglish, language.BrazilianPortuguese}
	matcher   = language.NewMatcher(supported)
)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ParseTag matches raw against the supported languages.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Default(), false
	}
	parsed, err := language.Parse(raw)
	if err != nil {
		return Default(), false
	}
	return match(parsed)
}

// ResolveTag picks the language for r: the lang query parameter, then the
// language cookie, then Accept-Language. The bool reports whether the query
// parameter selected it and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			tag, _, _ := matcher.Match(tags...)
			return base(tag), false
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolvePrinter resolves the request language, persists an explicit choice,
// and returns a printer with the tag it was built for.
func ResolvePrinter(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag
}

func match(tag language.Tag) (language.Tag, bool) {
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return Default(), false
	}
	return base(matched), true
}

// base strips the -u-rg extension the matcher appends so tags compare equal
// to the supported list.
func base(tag language.Tag) language.Tag {
	for _, candidate := range supported {
		b1, _ := candidate.Base()
		r1, _ := candidate.Region()
		b2, _ := tag.Base()
		r2, _ := tag.Region()
		if b1 == b2 && r1 == r2 {
			return candidate
		}
	}
	for _, candidate := range supported {
		b1, _ := candidate.Base()
		b2, _ := tag.Base()
		if b1 == b2 {
			return candidate
		}
	}
	return Default()
}
