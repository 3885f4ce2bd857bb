// Package auth owns the authenticated-identity lifecycle for Lifelog:
// sign-up, sign-in, sign-out, password reset, and email verification.
// Sessions live in Redis and are the single source of truth for "who is
// signed in" -- every request re-validates against the store.
//
// A session is only ever created for a verified email address. Sign-up
// deliberately ends unauthenticated: the account exists, a verification
// email is on its way, and sign-in is refused until the address is
// confirmed.
package auth

import (
	"time"
)

// User is the cached projection of an identity. The users row doubles as
// the per-user profile document: the notifications package reads and
// writes preference columns on the same row.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"displayName"`
	PasswordHash  string     `json:"-"` // Never expose in JSON responses.
	EmailVerified bool       `json:"emailVerified"`
	CreatedAt     time.Time  `json:"createdAt"`
	LastLoginAt   *time.Time `json:"lastLoginAt,omitempty"`
}

// --- Request DTOs (bound from HTTP requests) ---

// SignUpRequest holds the data submitted to POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignInRequest holds the data submitted to POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest asks for a password reset email.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ConfirmResetRequest applies an out-of-band reset code with a new password.
type ConfirmResetRequest struct {
	Code     string `json:"code"`
	Password string `json:"password"`
}

// VerifyEmailRequest applies an out-of-band verification code.
type VerifyEmailRequest struct {
	Code string `json:"code"`
}

// ResendVerificationRequest re-sends the verification email for an address.
type ResendVerificationRequest struct {
	Email string `json:"email"`
}

// --- Service Input DTOs (passed from handler to service) ---

// SignUpInput is the input for creating a new account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
}

// SignInInput is the input for authenticating a user.
type SignInInput struct {
	Email    string
	Password string
}

// --- Session ---

// Session represents an authenticated user session stored in Redis.
// The session token is the key, and this struct is the value (JSON-encoded).
type Session struct {
	UserID        string    `json:"user_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- Tokens ---

// TokenPurpose distinguishes the two single-use token flows.
type TokenPurpose string

const (
	// PurposeVerifyEmail marks a token sent to confirm an email address.
	PurposeVerifyEmail TokenPurpose = "verify_email"

	// PurposeResetPassword marks a token sent to reset a password.
	PurposeResetPassword TokenPurpose = "reset_password"
)

// Token is a single-use emailed code. Only its SHA-256 hash is persisted.
type Token struct {
	UserID    string
	Email     string
	Purpose   TokenPurpose
	ExpiresAt time.Time
	UsedAt    *time.Time
}
