package employees

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/staffbook/internal/directory"
	"github.com/louisbranch/staffbook/internal/services/users/client"
	apperrors "github.com/louisbranch/staffbook/internal/services/web/platform/errors"
	"github.com/louisbranch/staffbook/internal/services/web/platform/modulehandler"
)

func TestMapGatewayError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind apperrors.Kind
		wantKey  string
	}{
		{name: "transport", err: errors.New("dial tcp: refused"), wantKind: apperrors.KindUnavailable, wantKey: "error.users_unavailable"},
		{name: "shape", err: fmt.Errorf("decode: %w", directory.ErrUnexpectedResponseShape), wantKind: apperrors.KindBadGateway, wantKey: "error.unexpected_response"},
		{name: "not found", err: &client.StatusError{StatusCode: http.StatusNotFound}, wantKind: apperrors.KindNotFound, wantKey: "error.employee_not_found"},
		{name: "conflict", err: &client.StatusError{StatusCode: http.StatusConflict}, wantKind: apperrors.KindConflict, wantKey: "error.duplicate_id"},
		{name: "bad request", err: &client.StatusError{StatusCode: http.StatusBadRequest}, wantKind: apperrors.KindInvalidInput, wantKey: "error.users_rejected"},
		{name: "unprocessable", err: &client.StatusError{StatusCode: http.StatusUnprocessableEntity}, wantKind: apperrors.KindInvalidInput, wantKey: "error.users_rejected"},
		{name: "unavailable", err: &client.StatusError{StatusCode: http.StatusServiceUnavailable}, wantKind: apperrors.KindUnavailable, wantKey: "error.users_unavailable"},
		{name: "server error", err: &client.StatusError{StatusCode: http.StatusInternalServerError}, wantKind: apperrors.KindBadGateway, wantKey: "error.users_rejected"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := mapGatewayError(tc.err)
			if kind := apperrors.KindOf(got); kind != tc.wantKind {
				t.Fatalf("KindOf() = %q, want %q", kind, tc.wantKind)
			}
			if key := apperrors.LocalizationKey(got); key != tc.wantKey {
				t.Fatalf("LocalizationKey() = %q, want %q", key, tc.wantKey)
			}
			if !errors.Is(got, tc.err) {
				t.Fatalf("expected cause %v to be preserved", tc.err)
			}
		})
	}
	if mapGatewayError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}

func TestRESTGatewayAgainstUsersService(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"1","fullName":"Ann Lee"}]`))
		case http.MethodPost:
			w.WriteHeader(http.StatusConflict)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL)
	if err != nil {
		t.Fatalf("client.New() error = %v", err)
	}
	gw := NewRESTGateway(c)
	ctx := context.Background()

	records, err := gw.ListRecords(ctx)
	if err != nil {
		t.Fatalf("ListRecords() error = %v", err)
	}
	if len(records) != 1 || records[0].FullName != "Ann Lee" {
		t.Fatalf("records = %+v, want Ann Lee", records)
	}
	if _, err := gw.CreateRecord(ctx, directory.Record{ID: "1"}); apperrors.KindOf(err) != apperrors.KindConflict {
		t.Fatalf("CreateRecord() kind = %q, want conflict", apperrors.KindOf(err))
	}
	if err := gw.DeleteRecord(ctx, "9"); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Fatalf("DeleteRecord() kind = %q, want not found", apperrors.KindOf(err))
	}
}

func TestNewRESTGatewayWithoutClientIsUnavailable(t *testing.T) {
	t.Parallel()

	gw := NewRESTGateway(nil)
	if _, err := gw.ListRecords(context.Background()); apperrors.KindOf(err) != apperrors.KindUnavailable {
		t.Fatalf("ListRecords() kind = %q, want unavailable", apperrors.KindOf(err))
	}
	if NewWithGateway(gw, Config{}, modulehandler.NewTestBase()).Healthy() {
		t.Fatal("expected module without client to be unhealthy")
	}
}
