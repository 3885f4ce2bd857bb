package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_ErrorIncludesInternal(t *testing.T) {
	inner := errors.New("connection refused")
	err := NewInternal(inner)

	if got := err.Error(); got != "internal_error: An unexpected error occurred. Please try again. (internal: connection refused)" {
		t.Errorf("unexpected Error() output: %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("expected errors.Is to find the wrapped internal error")
	}
}

func TestConstructors_CodesAndTypes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantCode int
		wantType string
	}{
		{"not found", NewNotFound("x"), http.StatusNotFound, "not_found"},
		{"bad request", NewBadRequest("x"), http.StatusBadRequest, "bad_request"},
		{"unauthorized", NewUnauthorized("x"), http.StatusUnauthorized, "unauthorized"},
		{"forbidden", NewForbidden("x"), http.StatusForbidden, "forbidden"},
		{"validation", NewValidation("x"), http.StatusUnprocessableEntity, "validation_error"},
		{"internal", NewInternal(errors.New("x")), http.StatusInternalServerError, "internal_error"},
		{"email in use", NewEmailInUse(), http.StatusConflict, "email_already_in_use"},
		{"account not found", NewAccountNotFound(), http.StatusNotFound, "account_not_found"},
		{"wrong credential", NewWrongCredential(), http.StatusUnauthorized, "wrong_credential"},
		{"email not verified", NewEmailNotVerified(), http.StatusForbidden, "email_not_verified"},
		{"rate limited", NewRateLimited(), http.StatusTooManyRequests, "rate_limited"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", tt.err.Type, tt.wantType)
			}
			if tt.err.Message == "" {
				t.Error("Message should never be empty")
			}
		})
	}
}

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"app error passes through", NewEmailInUse(), "This email is already registered. Please sign in instead."},
		{"email hint", errors.New("invalid Email format"), "There was a problem with the email address provided."},
		{"password hint", fmt.Errorf("hashing PASSWORD: %w", errors.New("oops")), "There was a problem with the password provided."},
		{"connection hint", errors.New("dial tcp: connection timed out"), "Network error. Please check your internet connection."},
		{"fallback", errors.New("something else"), "An unexpected error occurred. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hint(tt.err); got != tt.want {
				t.Errorf("Hint() = %q, want %q", got, tt.want)
			}
		})
	}
}
