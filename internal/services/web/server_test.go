package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newUsersStub(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/users" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":"1","fullName":"Ann Lee","email":"ann@example.com"}]`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func serve(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewHandlerRoutes(t *testing.T) {
	t.Parallel()

	users := newUsersStub(t)
	h, err := NewHandler(Config{UsersBaseURL: users.URL}, nil)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	root := serve(t, h, http.MethodGet, "/")
	if root.Code != http.StatusFound || root.Header().Get("Location") != "/employees/" {
		t.Fatalf("GET / = %d %q, want 302 /employees/", root.Code, root.Header().Get("Location"))
	}

	page := serve(t, h, http.MethodGet, "/employees/")
	if page.Code != http.StatusOK {
		t.Fatalf("GET /employees/ status = %d, want %d", page.Code, http.StatusOK)
	}
	if !strings.Contains(page.Body.String(), "Ann Lee") {
		t.Fatal("expected directory rows from the users service")
	}
	if page.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}

	missing := serve(t, h, http.MethodGet, "/nowhere")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("GET /nowhere status = %d, want %d", missing.Code, http.StatusNotFound)
	}

	metricsBody := serve(t, h, http.MethodGet, "/metrics").Body.String()
	for _, want := range []string{"staffbook_http_requests_total", "staffbook_users_client_requests_total"} {
		if !strings.Contains(metricsBody, want) {
			t.Fatalf("metrics missing %s", want)
		}
	}
}

func TestHealthReportsModuleState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usersURL   string
		wantStatus int
		want       healthResponse
	}{
		{
			name:       "configured",
			usersURL:   "http://localhost:3004",
			wantStatus: http.StatusOK,
			want:       healthResponse{Status: "ok", Modules: map[string]bool{"employees": true}},
		},
		{
			name:       "degraded",
			wantStatus: http.StatusServiceUnavailable,
			want:       healthResponse{Status: "degraded", Modules: map[string]bool{"employees": false}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h, err := NewHandler(Config{UsersBaseURL: tc.usersURL}, nil)
			if err != nil {
				t.Fatalf("NewHandler() error = %v", err)
			}
			rec := serve(t, h, http.MethodGet, "/up")
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var got healthResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
				t.Fatalf("decode health: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("health mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewHandlerRejectsBadUsersURL(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{UsersBaseURL: "ftp://users"}, nil); err == nil {
		t.Fatal("expected users url error")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}, nil); err == nil {
		t.Fatal("expected error for empty address")
	}
}

func TestServerStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"}, nil)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNilServer(t *testing.T) {
	t.Parallel()

	var srv *Server
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
	srv.Close()
}
