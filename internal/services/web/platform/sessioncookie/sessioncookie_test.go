package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/staffbook/internal/services/web/platform/requestmeta"
)

func TestWriteThenRead(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/employees/", nil), " ws-1 ", 30*time.Minute, requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge != 1800 {
		t.Fatalf("MaxAge = %d, want 1800", cookie.MaxAge)
	}
	if cookie.SameSite != http.SameSiteLaxMode || !cookie.HttpOnly {
		t.Fatalf("cookie attributes = %+v", cookie)
	}

	req := httptest.NewRequest(http.MethodGet, "/employees/", nil)
	req.AddCookie(cookie)
	got, ok := Read(req)
	if !ok || got != "ws-1" {
		t.Fatalf("Read() = %q, %v", got, ok)
	}
}

func TestReadMissingOrBlank(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatal("Read(nil) ok = true")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("Read(no cookie) ok = true")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: "  "})
	if _, ok := Read(req); ok {
		t.Fatal("Read(blank) ok = true")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "/", nil), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Fatalf("cookie = %+v, want expired", cookie)
	}
}
