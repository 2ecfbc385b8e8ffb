package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
		if e.Error() != "ORDER_NOT_FOUND: Order not found" {
			t.Fatalf("unexpected message %q", e.Error())
		}
		if got := e.ToHTTPError(); got.Code != "ORDER_NOT_FOUND" || got.Message != "Order not found" {
			t.Fatalf("unexpected body %+v", got)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("disk full")
		e := NewDomainError("INTERNAL", "Internal error", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("unexpected status %d", e.HTTPStatus)
		}
	})
}
