package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/users/storage"
	"github.com/louisbranch/staffbook/internal/services/users/storage/sqlite"
)

func newTestHandler(t *testing.T, mode directory.CreateResponseMode) (http.Handler, storage.UserStore) {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	for _, record := range []directory.Record{
		{ID: "1", FullName: "Ann Lee"},
		{ID: "2", FullName: "Ann Kim"},
	} {
		if err := store.CreateUser(context.Background(), record); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	h := NewHandler(store, Options{
		CreateResponse: mode,
		NewID:          func() (string, error) { return "gen", nil },
	})
	return h, store
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, directory.CreateResponseRecord)
	rr := serve(h, http.MethodGet, "/users", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got []directory.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []directory.Record{{ID: "1", FullName: "Ann Lee"}, {ID: "2", FullName: "Ann Kim"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("users mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(rr.Body.String(), `"fullName":"Ann Lee"`) {
		t.Fatalf("expected camelCase json fields, got %s", rr.Body.String())
	}
}

func TestCreateUserEchoesRecord(t *testing.T) {
	t.Parallel()

	h, store := newTestHandler(t, directory.CreateResponseRecord)
	rr := serve(h, http.MethodPost, "/users", `{"id":"3","fullName":"Bob Lee","email":"bob@example.com"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}
	var got directory.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != "3" || got.Email != "bob@example.com" {
		t.Fatalf("created = %+v", got)
	}
	if n, _ := store.CountUsers(context.Background()); n != 3 {
		t.Fatalf("count = %d, want 3", n)
	}
}

func TestCreateUserListModeReturnsCollection(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, directory.CreateResponseList)
	rr := serve(h, http.MethodPost, "/users", `{"fullName":"Bob Lee"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rr.Code)
	}
	result, err := directory.DecodeCreateResult(rr.Body.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.IsList() || len(result.List) != 3 || result.List[2].ID != "gen" {
		t.Fatalf("result = %+v", result)
	}
}

func TestCreateUserErrors(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, directory.CreateResponseRecord)
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{"id":`, want: http.StatusBadRequest},
		{name: "duplicate id", body: `{"id":"1"}`, want: http.StatusConflict},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(h, http.MethodPost, "/users", tc.body)
			if rr.Code != tc.want {
				t.Fatalf("status = %d, want %d", rr.Code, tc.want)
			}
			if !strings.Contains(rr.Body.String(), `"error"`) {
				t.Fatalf("expected json error body, got %s", rr.Body.String())
			}
		})
	}
}

func TestGetAndDeleteUser(t *testing.T) {
	t.Parallel()

	h, _ := newTestHandler(t, directory.CreateResponseRecord)
	if rr := serve(h, http.MethodGet, "/users/2", ""); rr.Code != http.StatusOK {
		t.Fatalf("get status = %d", rr.Code)
	}
	rr := serve(h, http.MethodDelete, "/users/2", "")
	if rr.Code != http.StatusOK || strings.TrimSpace(rr.Body.String()) != "{}" {
		t.Fatalf("delete = %d %q", rr.Code, rr.Body.String())
	}
	if rr := serve(h, http.MethodDelete, "/users/2", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", rr.Code)
	}
	if rr := serve(h, http.MethodGet, "/users/2", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("get deleted status = %d, want 404", rr.Code)
	}
}

func TestStoreFailureHidesInternalError(t *testing.T) {
	t.Parallel()

	h := NewHandler(failingStore{}, Options{})
	rr := serve(h, http.MethodGet, "/users", "")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "disk on fire") {
		t.Fatalf("internal error leaked: %s", rr.Body.String())
	}
}

type failingStore struct{}

func (failingStore) ListUsers(context.Context) ([]directory.Record, error) {
	return nil, errors.New("disk on fire")
}
func (failingStore) GetUser(context.Context, string) (directory.Record, error) {
	return directory.Record{}, errors.New("disk on fire")
}
func (failingStore) CreateUser(context.Context, directory.Record) error {
	return errors.New("disk on fire")
}
func (failingStore) SeedUsers(context.Context, []directory.Record) error {
	return errors.New("disk on fire")
}
func (failingStore) DeleteUser(context.Context, string) error { return errors.New("disk on fire") }
func (failingStore) CountUsers(context.Context) (int, error)  { return 0, errors.New("disk on fire") }
func (failingStore) Close() error                             { return nil }
