package apperr

import (
	"errors"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, http.StatusBadRequest},
		{CodeInsufficientStock, http.StatusBadRequest},
		{CodeInvalidStatusTransition, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeProductNotFound, http.StatusNotFound},
		{CodeCartNotFound, http.StatusNotFound},
		{CodeOrderNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := New(c.code, "x").HTTPStatus(); got != c.want {
			t.Errorf("HTTPStatus(%s) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestFromPassesThroughAppErrors(t *testing.T) {
	orig := ProductNotFound()
	wrapped := errors.Join(errors.New("outer"), orig)
	if got := From(wrapped); got.Code != CodeProductNotFound {
		t.Errorf("From returned code %s, want %s", got.Code, CodeProductNotFound)
	}
	if got := From(orig); got != orig {
		t.Error("From should return the original *Error unchanged")
	}
}

func TestFromWrapsUnknownErrors(t *testing.T) {
	got := From(errors.New("pq: connection refused"))
	if got.Code != CodeInternal {
		t.Errorf("From returned code %s, want %s", got.Code, CodeInternal)
	}
	if got.Message != "internal server error" {
		t.Errorf("From leaked message %q", got.Message)
	}
	if got.Unwrap() == nil {
		t.Error("wrapped cause should survive for logging")
	}
}

func TestInvalidStatusTransitionMessage(t *testing.T) {
	err := InvalidStatusTransition("Pending", "Delivered")
	want := "cannot change order status from Pending to Delivered"
	if err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
}
