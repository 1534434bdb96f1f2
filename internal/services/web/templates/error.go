package templates

import "net/http"

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.page.not_found")
	}
	return T(loc, "error.page.title")
}
