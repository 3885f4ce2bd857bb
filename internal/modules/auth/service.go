package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/mailer"
)

// sessionKeyPrefix is the Redis key prefix for session data.
const sessionKeyPrefix = "session:"

// minPasswordLen matches the sign-up form's client-side rule so server and
// client reject the same inputs.
const minPasswordLen = 6

// emailPattern is the permissive something@something.something check used
// at the edge. The mail round-trip is the real validator.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService defines the business logic contract for the identity
// lifecycle. Handlers call these methods -- they never touch the
// repository directly.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (user *User, verificationSent bool, err error)
	SignIn(ctx context.Context, input SignInInput) (token string, user *User, err error)
	SignOut(ctx context.Context, token string) error
	ValidateSession(ctx context.Context, token string) (*Session, error)
	Reload(ctx context.Context, userID string) (*User, error)

	ResetPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
	SendVerificationEmail(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, code string) (*User, error)
}

// authService implements AuthService with argon2id hashing, Redis sessions,
// and emailed single-use codes for verification and resets.
type authService struct {
	repo            UserRepository
	redis           *redis.Client
	mail            mailer.Mailer
	baseURL         string
	sessionTTL      time.Duration
	verificationTTL time.Duration
	resetTTL        time.Duration
}

// NewAuthService creates a new auth service with the given dependencies.
func NewAuthService(repo UserRepository, rdb *redis.Client, mail mailer.Mailer, baseURL string, sessionTTL, verificationTTL, resetTTL time.Duration) AuthService {
	return &authService{
		repo:            repo,
		redis:           rdb,
		mail:            mail,
		baseURL:         strings.TrimRight(baseURL, "/"),
		sessionTTL:      sessionTTL,
		verificationTTL: verificationTTL,
		resetTTL:        resetTTL,
	}
}

// SignUp creates a new, unverified account and emails a verification code.
// No session is created: sign-in stays refused until the address is
// confirmed. Input validation happens before any repository call. The
// returned flag reports whether the verification email actually went out,
// so the client can prompt for a re-send instead of claiming delivery.
func (s *authService) SignUp(ctx context.Context, input SignUpInput) (*User, bool, error) {
	email := normalizeEmail(input.Email)
	if err := validateCredentials(email, input.Password); err != nil {
		return nil, false, err
	}

	// Check if email is already taken before doing expensive hashing.
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, false, apperror.NewInternal(fmt.Errorf("checking email: %w", err))
	}
	if exists {
		return nil, false, apperror.NewEmailInUse()
	}

	// Hash the password with argon2id (memory-hard, GPU-resistant).
	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, false, apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	user := &User{
		ID:            uuid.NewString(),
		Email:         email,
		DisplayName:   strings.TrimSpace(input.Name),
		PasswordHash:  hash,
		EmailVerified: false,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	verificationSent := true
	if err := s.issueVerificationEmail(ctx, user.ID, user.Email); err != nil {
		// Account exists; the user can ask for a re-send.
		verificationSent = false
		slog.Warn("failed to send verification email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	slog.Info("user signed up",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, verificationSent, nil
}

// SignIn authenticates a user by email and password. Each failure mode maps
// to its own error so the client can respond specifically: unknown account,
// wrong password, and unverified email are distinct outcomes. On success it
// creates a Redis session and returns the session token for the cookie.
func (s *authService) SignIn(ctx context.Context, input SignInInput) (string, *User, error) {
	email := normalizeEmail(input.Email)
	if err := validateCredentials(email, input.Password); err != nil {
		return "", nil, err
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Type == "not_found" {
			return "", nil, apperror.NewAccountNotFound()
		}
		return "", nil, apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	// Verify the password against the stored argon2id hash.
	if !verifyPassword(input.Password, user.PasswordHash) {
		return "", nil, apperror.NewWrongCredential()
	}

	// A session only exists for verified addresses. Re-send the code on
	// this path so the user can recover without a separate request.
	if !user.EmailVerified {
		if err := s.issueVerificationEmail(ctx, user.ID, user.Email); err != nil {
			slog.Warn("failed to re-send verification email",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)
		}
		return "", nil, apperror.NewEmailNotVerified()
	}

	token, err := s.createSession(ctx, user)
	if err != nil {
		return "", nil, apperror.NewInternal(fmt.Errorf("creating session: %w", err))
	}

	// Update the user's last login timestamp (fire-and-forget, non-critical).
	if err := s.repo.UpdateLastLogin(ctx, user.ID); err != nil {
		slog.Warn("failed to update last login",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}

	slog.Info("user signed in",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return token, user, nil
}

// SignOut removes a session from Redis. Destroying a session that no longer
// exists is not an error.
func (s *authService) SignOut(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token

	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return apperror.NewInternal(fmt.Errorf("deleting session from Redis: %w", err))
	}

	return nil
}

// ValidateSession looks up a session token in Redis and returns the session
// data if it exists and hasn't expired.
func (s *authService) ValidateSession(ctx context.Context, token string) (*Session, error) {
	key := sessionKeyPrefix + token

	data, err := s.redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, apperror.NewUnauthorized("session expired or invalid")
	}
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("reading session from Redis: %w", err))
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("unmarshaling session: %w", err))
	}

	return &session, nil
}

// Reload fetches the current identity projection from the store, bypassing
// whatever the session was created with.
func (s *authService) Reload(ctx context.Context, userID string) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

// ResetPassword issues a reset code and emails it. The existence check is
// deliberate: the client tells users with no account to sign up instead.
func (s *authService) ResetPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return apperror.NewValidation("Please enter a valid email address.")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Type == "not_found" {
			return apperror.NewAccountNotFound()
		}
		return apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	code, err := s.issueToken(ctx, user.ID, user.Email, PurposeResetPassword, s.resetTTL)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("issuing reset token: %w", err))
	}

	body := fmt.Sprintf(
		"Someone requested a password reset for your Lifelog account.\r\n\r\n"+
			"Reset your password here: %s/reset-password?code=%s\r\n\r\n"+
			"This link expires in %s. If this wasn't you, ignore this email.\r\n",
		s.baseURL, code, s.resetTTL)
	if err := s.mail.Send(ctx, []string{user.Email}, "Reset your Lifelog password", body); err != nil {
		return apperror.NewInternal(fmt.Errorf("sending reset email: %w", err))
	}

	slog.Info("password reset requested", slog.String("user_id", user.ID))

	return nil
}

// ConfirmPasswordReset redeems a reset code and stores a new password hash.
// All outstanding sessions stay valid; the code itself is single-use.
func (s *authService) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return apperror.NewValidation("Password must be at least 6 characters.")
	}

	token, err := s.redeemToken(ctx, code, PurposeResetPassword)
	if err != nil {
		return err
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	if err := s.repo.UpdatePassword(ctx, token.UserID, hash); err != nil {
		return apperror.NewInternal(fmt.Errorf("updating password: %w", err))
	}

	slog.Info("password reset completed", slog.String("user_id", token.UserID))

	return nil
}

// SendVerificationEmail re-sends the verification code for an address.
// Already-verified accounts get a validation error instead of more mail.
func (s *authService) SendVerificationEmail(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return apperror.NewValidation("Please enter a valid email address.")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Type == "not_found" {
			return apperror.NewAccountNotFound()
		}
		return apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}
	if user.EmailVerified {
		return apperror.NewValidation("This email address is already verified.")
	}

	if err := s.issueVerificationEmail(ctx, user.ID, user.Email); err != nil {
		return apperror.NewInternal(fmt.Errorf("sending verification email: %w", err))
	}

	return nil
}

// VerifyEmail redeems a verification code and marks the account verified.
func (s *authService) VerifyEmail(ctx context.Context, code string) (*User, error) {
	token, err := s.redeemToken(ctx, code, PurposeVerifyEmail)
	if err != nil {
		return nil, err
	}

	if err := s.repo.MarkEmailVerified(ctx, token.UserID); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("marking email verified: %w", err))
	}

	slog.Info("email verified", slog.String("user_id", token.UserID))

	return s.repo.FindByID(ctx, token.UserID)
}

// --- Internals ---

// createSession generates a random session token, stores the session data in
// Redis with the configured TTL, and returns the token.
func (s *authService) createSession(ctx context.Context, user *User) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	session := Session{
		UserID:        user.ID,
		Email:         user.Email,
		Name:          user.DisplayName,
		EmailVerified: user.EmailVerified,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("marshaling session: %w", err)
	}

	key := sessionKeyPrefix + token
	if err := s.redis.Set(ctx, key, data, s.sessionTTL).Err(); err != nil {
		return "", fmt.Errorf("storing session in Redis: %w", err)
	}

	return token, nil
}

// issueVerificationEmail creates a fresh verification token and mails it.
func (s *authService) issueVerificationEmail(ctx context.Context, userID, email string) error {
	code, err := s.issueToken(ctx, userID, email, PurposeVerifyEmail, s.verificationTTL)
	if err != nil {
		return fmt.Errorf("issuing verification token: %w", err)
	}

	body := fmt.Sprintf(
		"Welcome to Lifelog!\r\n\r\n"+
			"Verify your email address here: %s/verify-email?code=%s\r\n\r\n"+
			"This link expires in %s.\r\n",
		s.baseURL, code, s.verificationTTL)

	return s.mail.Send(ctx, []string{email}, "Verify your Lifelog email", body)
}

// issueToken generates a single-use code, persists its hash, and returns
// the plaintext for the email body.
func (s *authService) issueToken(ctx context.Context, userID, email string, purpose TokenPurpose, ttl time.Duration) (string, error) {
	code, err := generateSessionToken()
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}

	token := &Token{
		UserID:    userID,
		Email:     email,
		Purpose:   purpose,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := s.repo.CreateToken(ctx, hashToken(code), token); err != nil {
		return "", fmt.Errorf("storing token: %w", err)
	}

	return code, nil
}

// redeemToken validates and consumes a single-use code. Unknown, expired,
// and already-used codes all produce the same client-facing error.
func (s *authService) redeemToken(ctx context.Context, code string, purpose TokenPurpose) (*Token, error) {
	tokenHash := hashToken(code)

	token, err := s.repo.FindToken(ctx, tokenHash, purpose)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Type == "not_found" {
			return nil, apperror.NewBadRequest("This code is invalid or has expired.")
		}
		return nil, apperror.NewInternal(fmt.Errorf("finding token: %w", err))
	}
	if token.UsedAt != nil || time.Now().UTC().After(token.ExpiresAt) {
		return nil, apperror.NewBadRequest("This code is invalid or has expired.")
	}

	if err := s.repo.MarkTokenUsed(ctx, tokenHash); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("consuming token: %w", err))
	}

	return token, nil
}

// normalizeEmail lowercases and trims an address before any comparison.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateCredentials applies the local format rules shared by sign-up and
// sign-in. It runs before any repository call so malformed input never
// touches the store.
func validateCredentials(email, password string) error {
	if !emailPattern.MatchString(email) {
		return apperror.NewValidation("Please enter a valid email address.")
	}
	if len(password) < minPasswordLen {
		return apperror.NewValidation("Password must be at least 6 characters.")
	}
	return nil
}
