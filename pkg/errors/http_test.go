package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "smart-task-parser/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	notFound := pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")

	tests := []struct {
		name   string
		err    error
		ok     bool
		status int
	}{
		{name: "Direct", err: notFound, ok: true, status: http.StatusNotFound},
		{name: "Wrapped", err: fmt.Errorf("handler: %w", notFound), ok: true, status: http.StatusNotFound},
		{name: "Internal", err: pkgErrors.ErrInternalServerError, ok: true, status: http.StatusInternalServerError},
		{name: "Plain", err: fmt.Errorf("boom"), ok: false},
		{name: "Nil", err: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := pkgErrors.AsHTTPError(tt.err)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.status)
			}
		})
	}

	if notFound.Error() != "task not found" {
		t.Errorf("Error() = %q", notFound.Error())
	}
}
