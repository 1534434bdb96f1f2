package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "query param", target: "/?lang=pt-BR", want: language.BrazilianPortuguese, wantPersist: true},
		{name: "cookie", target: "/", cookie: "pt-BR", want: language.BrazilianPortuguese},
		{name: "query beats cookie", target: "/?lang=en-US", cookie: "pt-BR", want: language.AmericanEnglish, wantPersist: true},
		{name: "accept language", target: "/", accept: "pt-BR,pt;q=0.9", want: language.BrazilianPortuguese},
		{name: "unsupported query falls through", target: "/?lang=xx-invalid!", cookie: "pt-BR", want: language.BrazilianPortuguese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			tag, persist := ResolveTag(req)
			if tag != tc.want || persist != tc.wantPersist {
				t.Fatalf("ResolveTag() = %v, %v; want %v, %v", tag, persist, tc.want, tc.wantPersist)
			}
		})
	}
}

func TestResolvePrinterPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	p, tag := ResolvePrinter(rr, httptest.NewRequest(http.MethodGet, "/?lang=pt-BR", nil))
	if tag != language.BrazilianPortuguese {
		t.Fatalf("tag = %v", tag)
	}
	if got := p.Sprintf("employees.confirm.title"); got != "Tem certeza?" {
		t.Fatalf("confirm title = %q", got)
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected language cookie")
	}
}

func TestEnglishCopy(t *testing.T) {
	t.Parallel()

	p := Printer(language.AmericanEnglish)
	if got := p.Sprintf("employees.confirm.subtitle"); got != "You cant undo this!" {
		t.Fatalf("subtitle = %q", got)
	}
	if got := p.Sprintf("employees.pagination.range", 1, 5, 12); got != "1-5 of 12" {
		t.Fatalf("range = %q", got)
	}
}
