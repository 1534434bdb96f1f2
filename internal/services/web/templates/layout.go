package templates

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Toast is a one-time notice rendered above the page content.
type Toast struct {
	Kind    string
	Message string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
	Languages    []LanguageOption
	Toast        *Toast
}

// LanguageOptions builds switcher entries for the supported tags.
func LanguageOptions(supported []language.Tag, active language.Tag, loc Localizer) []LanguageOption {
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  T(loc, languageKey(tag)),
			Active: tag == active,
		})
	}
	return options
}

func languageKey(tag language.Tag) string {
	if tag == language.BrazilianPortuguese {
		return "nav.lang_pt_br"
	}
	return "nav.lang_en"
}

// LanguageURL returns the current URL with the lang parameter replaced.
func LanguageURL(path, rawQuery, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set("lang", tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// documentTitle suffixes the page title with the app name.
func documentTitle(page PageContext) string {
	appTitle := T(page.Loc, "app.title")
	if page.Title == "" || page.Title == appTitle {
		return appTitle
	}
	return page.Title + " | " + appTitle
}

const layoutCSS = `body{font-family:system-ui,sans-serif;margin:0;background:#f5f5f5;color:#222}` +
	`.app-header{display:flex;justify-content:space-between;align-items:center;padding:12px 24px;background:#1976d2}` +
	`.app-header a,.app-header span{color:#fff;text-decoration:none;margin-left:12px}.app-title{font-weight:600;margin-left:0!important}` +
	`main{max-width:1100px;margin:24px auto;background:#fff;padding:16px 24px;border-radius:4px;box-shadow:0 1px 3px rgba(0,0,0,.2)}` +
	`.toolbar{display:flex;justify-content:space-between;gap:12px;flex-wrap:wrap}` +
	`table{width:100%;border-collapse:collapse;margin-top:24px}th{background:#faebd7;text-align:left}th,td{padding:8px;border-bottom:1px solid #ddd}` +
	`.toast{max-width:1100px;margin:16px auto 0;padding:8px 16px;border-radius:4px}.toast[data-kind=success]{background:#e8f5e9}.toast[data-kind=error],.error{background:#fdecea;padding:8px 16px}` +
	`dialog{border:none;border-radius:4px;box-shadow:0 4px 16px rgba(0,0,0,.3);padding:16px 24px}dialog label{display:block;margin:8px 0}` +
	`.pagination{display:flex;justify-content:flex-end;gap:12px;align-items:center;margin-top:8px}`
