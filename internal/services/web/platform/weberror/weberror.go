// Package weberror renders shared error responses for web modules.
package weberror

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/staffbook/internal/services/web/i18n"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
	"github.com/louisbranch/staffbook/internal/services/web/platform/httpx"
	"github.com/louisbranch/staffbook/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/staffbook/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message. Untyped errors
// never leak their text.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, tag := webi18n.ResolvePrinter(w, r)
	fragment := webtemplates.ErrorState(statusCode, message, routepath.Employees, loc)

	var buf bytes.Buffer
	var err error
	if httpx.IsHTMXRequest(r) {
		err = fragment.Render(httpx.RequestContext(r), &buf)
	} else {
		layout := webtemplates.Layout(webtemplates.PageContext{
			Title:     webtemplates.ErrorPageTitle(statusCode, loc),
			Lang:      tag.String(),
			Loc:       loc,
			Languages: webtemplates.LanguageOptions(webi18n.Supported(), tag, loc),
		})
		err = layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf)
	}
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
}

// WriteModuleError writes a module-safe localized error response.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	loc, _ := webi18n.ResolvePrinter(w, r)
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, PublicMessage(loc, err))
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
