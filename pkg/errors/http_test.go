package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "smart-task-tracker/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))

	httpErr, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if httpErr.StatusCode != http.StatusConflict {
		t.Errorf("expected %d, got %d", http.StatusConflict, httpErr.StatusCode)
	}
	if httpErr.Error() != "conflict" {
		t.Errorf("expected message 'conflict', got %q", httpErr.Error())
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be reported as HTTPError")
	}
}
