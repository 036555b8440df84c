package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"bike-rental/pkg/apperr"
)

func TestErrorMessage(t *testing.T) {
	err := apperr.Validation("start date must not be in the past")
	if got := err.Error(); got != "start date must not be in the past" {
		t.Errorf("Error() = %q", got)
	}

	cause := errors.New("connection refused")
	wrapped := apperr.Persistence("create booking", cause)
	if got := wrapped.Error(); got != "create booking: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Persistence("create booking", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable through errors.Is")
	}
}

func TestIsKind(t *testing.T) {
	err := apperr.NotFoundf("booking %s not found", "abc")

	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Error("IsKind should match the error's own kind")
	}
	if apperr.IsKind(err, apperr.KindConflict) {
		t.Error("IsKind should not match a different kind")
	}
	if apperr.IsKind(errors.New("plain"), apperr.KindNotFound) {
		t.Error("IsKind should reject errors outside the taxonomy")
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", apperr.Conflict("booking is already paid"))

	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Error("IsKind should find the kind through fmt.Errorf wrapping")
	}
}
