// Package apperror provides domain-specific error types for Lifelog.
// These errors carry an HTTP status code and a user-safe message. The Echo
// error handler maps them to appropriate JSON responses automatically.
//
// NEVER return raw database or infrastructure errors to the client. Always
// wrap them in an apperror type or return a generic internal error.
package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

// AppError is the base error type for all domain errors. It carries an
// HTTP status code, a machine-readable error type, and a human-readable
// message safe to show to the client.
type AppError struct {
	// Code is the HTTP status code (e.g., 404, 422, 500).
	Code int `json:"-"`

	// Type is a machine-readable error classifier (e.g., "email_not_verified").
	Type string `json:"type"`

	// Message is a human-readable description safe for the client.
	Message string `json:"message"`

	// Internal holds the underlying error for logging. Never exposed to client.
	Internal error `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Type, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AppError) Unwrap() error {
	return e.Internal
}

// --- Constructors for common error types ---

// NewNotFound creates a 404 Not Found error.
func NewNotFound(message string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Type:    "not_found",
		Message: message,
	}
}

// NewBadRequest creates a 400 Bad Request error.
func NewBadRequest(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Type:    "bad_request",
		Message: message,
	}
}

// NewUnauthorized creates a 401 Unauthorized error.
func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Type:    "unauthorized",
		Message: message,
	}
}

// NewForbidden creates a 403 Forbidden error.
func NewForbidden(message string) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Type:    "forbidden",
		Message: message,
	}
}

// NewValidation creates a 422 Unprocessable Entity error for input that
// fails local validation before any store or network call is made.
func NewValidation(message string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Type:    "validation_error",
		Message: message,
	}
}

// NewInternal creates a 500 Internal Server Error. The real error is stored
// in Internal for logging but the client only sees a generic message.
func NewInternal(err error) *AppError {
	return &AppError{
		Code:     http.StatusInternalServerError,
		Type:     "internal_error",
		Message:  "An unexpected error occurred. Please try again.",
		Internal: err,
	}
}

// --- Identity lifecycle errors ---
//
// Fixed translation table for every failure mode of the sign-up/sign-in
// lifecycle: each gets a stable machine type and a fixed user-facing message.

// NewEmailInUse creates the error returned when registration hits an
// already-registered email address.
func NewEmailInUse() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Type:    "email_already_in_use",
		Message: "This email is already registered. Please sign in instead.",
	}
}

// NewAccountNotFound creates the error returned when no account exists for
// the given email.
func NewAccountNotFound() *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Type:    "account_not_found",
		Message: "No account found with this email. Please sign up first.",
	}
}

// NewWrongCredential creates the error returned for a bad password.
func NewWrongCredential() *AppError {
	return &AppError{
		Code:    http.StatusUnauthorized,
		Type:    "wrong_credential",
		Message: "Incorrect password. Please try again.",
	}
}

// NewEmailNotVerified creates the error returned when a sign-in succeeds
// against the credential store but the account's email is unverified. A
// fresh verification email is re-sent on this path before the error is
// returned.
func NewEmailNotVerified() *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Type:    "email_not_verified",
		Message: "Please verify your email address. A new verification email has been sent.",
	}
}

// NewRateLimited creates a 429 Too Many Requests error.
func NewRateLimited() *AppError {
	return &AppError{
		Code:    http.StatusTooManyRequests,
		Type:    "rate_limited",
		Message: "Too many failed attempts. Please try again later.",
	}
}

// Hint produces a best-guess user-facing message for errors that fall
// outside the fixed translation table. It inspects the raw message text
// for recognizable substrings and otherwise returns a generic message.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr.Message
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return "There was a problem with the email address provided."
	case strings.Contains(msg, "password"):
		return "There was a problem with the password provided."
	case strings.Contains(msg, "network"), strings.Contains(msg, "connection"):
		return "Network error. Please check your internet connection."
	}
	return "An unexpected error occurred. Please try again."
}
