package failure_test

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net/http"
	"rentdesk/shared/failure"
	"testing"

	"github.com/lib/pq"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidIDParam",
			failure: failure.InvalidIDParam,
			code:    http.StatusBadRequest,
			message: "invalid id parameter",
		},
		{
			name:    "EmptyUpdate",
			failure: failure.EmptyUpdate,
			code:    http.StatusBadRequest,
			message: "update request cannot be empty",
		},
		{
			name:    "AuthenticationRequired",
			failure: failure.AuthenticationRequired,
			code:    http.StatusUnauthorized,
			message: "authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	f, ok := failure.As(failure.BadRequest(errors.New("validation failed")))
	if !ok {
		t.Fatal("expected *failure.Failure")
	}

	if f.Code != http.StatusBadRequest || f.Message != "validation failed" {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestBadRequestWithDetails(t *testing.T) {
	f, ok := failure.As(failure.BadRequestWithDetails("missing required fields", "FirstName, Phone"))
	if !ok {
		t.Fatal("expected *failure.Failure")
	}

	if f.Code != http.StatusBadRequest {
		t.Errorf("expected code to be %d, got %d", http.StatusBadRequest, f.Code)
	}

	if f.Details != "FirstName, Phone" {
		t.Errorf("expected details to be 'FirstName, Phone', got %s", f.Details)
	}
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil error")
	}

	f, ok := failure.As(failure.InternalError(errors.New("pq: password authentication failed for user \"rent\"")))
	if !ok {
		t.Fatal("expected *failure.Failure")
	}

	if f.Code != http.StatusInternalServerError {
		t.Errorf("expected code to be %d, got %d", http.StatusInternalServerError, f.Code)
	}

	if f.Message != "internal server error" {
		t.Errorf("expected generic message, got %s", f.Message)
	}
}

func TestNotFound(t *testing.T) {
	f, ok := failure.As(failure.NotFound("customer not found"))
	if !ok {
		t.Fatal("expected *failure.Failure")
	}

	if f.Code != http.StatusNotFound || f.Message != "customer not found" {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("wrapped: %w", failure.NotFound("test")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestPersistence(t *testing.T) {
	tests := []struct {
		name    string
		input   error
		code    int
		details string
	}{
		{
			name:    "foreign key violation",
			input:   fmt.Errorf("failed to insert data (rental): %w", &pq.Error{Code: "23503", Message: "insert or update on table \"rentals\" violates foreign key constraint"}),
			code:    http.StatusBadRequest,
			details: failure.DetailForeignKeyViolation,
		},
		{
			name:    "unique violation",
			input:   &pq.Error{Code: "23505"},
			code:    http.StatusConflict,
			details: failure.DetailUniqueViolation,
		},
		{
			name:    "invalid date value",
			input:   &pq.Error{Code: "22007"},
			code:    http.StatusBadRequest,
			details: failure.DetailInvalidValue,
		},
		{
			name:    "connection failure code",
			input:   &pq.Error{Code: "08006"},
			code:    http.StatusServiceUnavailable,
			details: failure.DetailDatabaseUnavailable,
		},
		{
			name:    "bad connection",
			input:   fmt.Errorf("commit: %w", driver.ErrBadConn),
			code:    http.StatusServiceUnavailable,
			details: failure.DetailDatabaseUnavailable,
		},
		{
			name:    "unknown error",
			input:   errors.New("something odd"),
			code:    http.StatusInternalServerError,
			details: failure.DetailPersistenceFailure,
		},
		{
			name:    "existing failure passes through",
			input:   failure.NotFound("equipment not found"),
			code:    http.StatusNotFound,
			details: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := failure.As(failure.Persistence(tt.input))
			if !ok {
				t.Fatal("expected *failure.Failure")
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Details != tt.details {
				t.Errorf("expected details to be %q, got %q", tt.details, f.Details)
			}
		})
	}

	if failure.Persistence(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
