package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want int
	}{
		{kind: KindInvalidInput, want: http.StatusBadRequest},
		{kind: KindNotFound, want: http.StatusNotFound},
		{kind: KindConflict, want: http.StatusConflict},
		{kind: KindUnavailable, want: http.StatusServiceUnavailable},
		{kind: KindBadGateway, want: http.StatusBadGateway},
		{kind: KindUnknown, want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		if got := HTTPStatus(E(tc.kind, "x")); got != tc.want {
			t.Fatalf("HTTPStatus(%s) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}

func TestHTTPStatusDefaultsToInternalError(t *testing.T) {
	t.Parallel()

	if got := HTTPStatus(errors.New("boom")); got != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", got, http.StatusInternalServerError)
	}
	if got := HTTPStatus(nil); got != http.StatusOK {
		t.Fatalf("HTTPStatus(nil) = %d, want %d", got, http.StatusOK)
	}
}

func TestErrorStringFallsBackToKindWhenMessageEmpty(t *testing.T) {
	t.Parallel()

	err := Error{Kind: KindConflict}
	if got := err.Error(); got != string(KindConflict) {
		t.Fatalf("Error() = %q, want %q", got, string(KindConflict))
	}
}

func TestWrapKeepsCauseAndKeyThroughWrapping(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: refused")
	err := fmt.Errorf("load: %w", Wrap(KindUnavailable, " error.users_unavailable ", cause))
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to match")
	}
	if got := LocalizationKey(err); got != "error.users_unavailable" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := KindOf(err); got != KindUnavailable {
		t.Fatalf("KindOf() = %q, want %q", got, KindUnavailable)
	}
	if got := KindOf(cause); got != KindUnknown {
		t.Fatalf("KindOf(plain) = %q, want %q", got, KindUnknown)
	}
}
