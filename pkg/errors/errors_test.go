package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{NotFound("card not found"), http.StatusNotFound},
		{BadRequest("bad limit"), http.StatusBadRequest},
		{Unavailable("dataset not loaded"), http.StatusServiceUnavailable},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Errorf("%q code = %d, want %d", tc.err.Message, tc.err.Code, tc.code)
		}
	}
}

func TestError_WrapsInternal(t *testing.T) {
	inner := errors.New("disk on fire")
	appErr := New(http.StatusInternalServerError, "load failed", inner)
	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should see the wrapped error")
	}
	if want := "load failed: disk on fire"; appErr.Error() != want {
		t.Errorf("Error() = %q, want %q", appErr.Error(), want)
	}
}

func TestErrorsAs(t *testing.T) {
	var appErr *AppError
	err := fmt.Errorf("handler: %w", NotFound("gone"))
	if !errors.As(err, &appErr) {
		t.Fatal("errors.As failed to find AppError")
	}
	if appErr.Code != http.StatusNotFound {
		t.Errorf("code = %d, want 404", appErr.Code)
	}
}
