package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestWrapKeepsKindAndCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := Wrap(ErrStoreUnavailable, cause)

	if !errors.Is(err, ErrStoreUnavailable) || !errors.Is(err, cause) {
		t.Fatalf("expected both kind and cause to match, got %v", err)
	}
	if StatusCode(err) != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", StatusCode(err))
	}
	if Message(err) != ErrStoreUnavailable.Message {
		t.Errorf("expected kind message, got %q", Message(err))
	}
	if err.Error() != "task store unavailable: database is locked" {
		t.Errorf("unexpected error text %q", err.Error())
	}

	if Wrap(ErrStoreUnavailable, nil) != nil {
		t.Error("wrapping nil must return nil")
	}
}

func TestStatusCodeDefaults(t *testing.T) {
	plain := errors.New("boom")
	if StatusCode(plain) != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", StatusCode(plain))
	}
	if Message(plain) != "Internal Server Error" {
		t.Errorf("internal error text must not leak, got %q", Message(plain))
	}
	if StatusCode(ErrTaskNotFound) != http.StatusNotFound {
		t.Errorf("expected 404, got %d", StatusCode(ErrTaskNotFound))
	}
}
