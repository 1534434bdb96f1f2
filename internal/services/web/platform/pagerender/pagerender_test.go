package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/staffbook/internal/services/web/platform/flash"
	"github.com/louisbranch/staffbook/internal/services/web/platform/requestmeta"
)

func textComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/employees/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, requestmeta.SchemePolicy{}, ModulePage{
		Title:      "Employees",
		StatusCode: http.StatusConflict,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusConflict)
	}
	body := rr.Body.String()
	if body != `<section id="fragment-root">ok</section>` {
		t.Fatalf("body = %q, want bare fragment", body)
	}
}

func TestWriteModulePageRendersLayoutWithFlash(t *testing.T) {
	t.Parallel()

	seed := httptest.NewRecorder()
	flash.Write(seed, httptest.NewRequest(http.MethodPost, "/employees/", nil), flash.Success("employees.notice.created", "Ann Lee"), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(seed.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/employees/", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, req, requestmeta.SchemePolicy{}, ModulePage{Title: "Employees", Fragment: textComponent(`<p id="frag">x</p>`)}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.HasPrefix(strings.ToLower(body), "<!doctype html>") {
		t.Fatalf("body missing doctype: %s", body)
	}
	for _, want := range []string{`id="frag"`, "Ann Lee was added.", `lang="en-US"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q: %s", want, body)
		}
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestWriteModulePageReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/employees/", nil), requestmeta.SchemePolicy{}, ModulePage{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteModulePage() error = %v, want boom", err)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body written on error: %q", rr.Body.String())
	}
}
