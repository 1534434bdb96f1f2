// Package modulehandler provides a composable base for web module handlers.
//
// Modules share localization, page rendering, cookie policy, and error
// writing. Embed Base in a module's handler struct instead of repeating that
// scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/staffbook/internal/services/web/i18n"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
	"github.com/louisbranch/staffbook/internal/services/web/platform/httpx"
	"github.com/louisbranch/staffbook/internal/services/web/platform/pagerender"
	"github.com/louisbranch/staffbook/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/staffbook/internal/services/web/platform/weberror"
	webtemplates "github.com/louisbranch/staffbook/internal/services/web/templates"
	"go.uber.org/zap"
)

// Base carries the request-independent collaborators shared by handlers.
type Base struct {
	policy requestmeta.SchemePolicy
	logger *zap.Logger
}

// NewBase builds a handler base.
func NewBase(policy requestmeta.SchemePolicy, logger *zap.Logger) Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Base{policy: policy, logger: logger}
}

// NewTestBase builds a handler base with a no-op logger.
func NewTestBase() Base {
	return NewBase(requestmeta.SchemePolicy{}, nil)
}

// SchemePolicy returns the cookie scheme policy.
func (b Base) SchemePolicy() requestmeta.SchemePolicy {
	return b.policy
}

// Logger returns the handler logger.
func (b Base) Logger() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

// PageLocalizer resolves a localizer from the request.
func (b Base) PageLocalizer(w http.ResponseWriter, r *http.Request) webtemplates.Localizer {
	loc, _ := webi18n.ResolvePrinter(w, r)
	return loc
}

// WriteError renders a localized module error response. Server-side
// failures are logged with the request id.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	b.LogError(r, err)
	weberror.WriteModuleError(w, r, err)
}

// LogError records err when it maps to a 5xx status.
func (b Base) LogError(r *http.Request, err error) {
	if err == nil || apperrors.HTTPStatus(err) < http.StatusInternalServerError {
		return
	}
	fields := []zap.Field{zap.Error(err)}
	if r != nil {
		fields = append(fields,
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
		)
	}
	b.Logger().Error("request failed", fields...)
}

// WriteNotFound renders a 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, "")
}

// WritePage renders a module page (HTMX-aware) with title, status, and fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WriteModulePage(w, r, b.policy, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.WriteError(w, r, err)
	}
}
