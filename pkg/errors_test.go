package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("boom")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: boom" {
		t.Fatalf("unexpected error string: %s", e.Error())
	}
	body := e.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("DEAL_NOT_FOUND", "Deal not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Error() != "DEAL_NOT_FOUND: Deal not found" {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
