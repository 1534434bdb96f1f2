// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	webi18n "github.com/louisbranch/staffbook/internal/services/web/i18n"
	"github.com/louisbranch/staffbook/internal/services/web/platform/flash"
	"github.com/louisbranch/staffbook/internal/services/web/platform/httpx"
	"github.com/louisbranch/staffbook/internal/services/web/platform/requestmeta"
	webtemplates "github.com/louisbranch/staffbook/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage renders page into a buffer and writes it with its status.
// HTMX requests get the fragment alone; full loads get the layout and any
// pending flash notice.
func WriteModulePage(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := httpx.RequestContext(r)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := fragment.Render(ctx, &buf); err != nil {
			return err
		}
	} else {
		loc, tag := webi18n.ResolvePrinter(w, r)
		layout := webtemplates.Layout(webtemplates.PageContext{
			Title:        page.Title,
			Lang:         tag.String(),
			Loc:          loc,
			CurrentPath:  r.URL.Path,
			CurrentQuery: r.URL.RawQuery,
			Languages:    webtemplates.LanguageOptions(webi18n.Supported(), tag, loc),
			Toast:        flashToast(w, r, policy, loc),
		})
		if err := layout.Render(templ.WithChildren(ctx, fragment), &buf); err != nil {
			return err
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func flashToast(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, loc webtemplates.Localizer) *webtemplates.Toast {
	notice, ok := flash.ReadAndClear(w, r, policy)
	if !ok {
		return nil
	}
	var message string
	if notice.Arg != "" {
		message = webtemplates.T(loc, notice.Key, notice.Arg)
	} else {
		message = webtemplates.T(loc, notice.Key)
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{Kind: string(notice.Kind), Message: message}
}
