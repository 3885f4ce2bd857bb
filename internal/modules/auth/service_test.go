package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

// --- Mock Repository ---

// mockUserRepo implements UserRepository for testing. Each method delegates
// to an optional function field and counts its calls so tests can assert
// that validation failures never touch the store.
type mockUserRepo struct {
	createFn            func(ctx context.Context, user *User) error
	findByIDFn          func(ctx context.Context, id string) (*User, error)
	findByEmailFn       func(ctx context.Context, email string) (*User, error)
	emailExistsFn       func(ctx context.Context, email string) (bool, error)
	updateLastLoginFn   func(ctx context.Context, id string) error
	markEmailVerifiedFn func(ctx context.Context, id string) error
	updatePasswordFn    func(ctx context.Context, id, passwordHash string) error
	createTokenFn       func(ctx context.Context, tokenHash string, token *Token) error
	findTokenFn         func(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error)
	markTokenUsedFn     func(ctx context.Context, tokenHash string) error

	calls int
}

func (m *mockUserRepo) Create(ctx context.Context, user *User) error {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	m.calls++
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, apperror.NewNotFound("user not found")
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	m.calls++
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, apperror.NewNotFound("user not found")
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	m.calls++
	if m.emailExistsFn != nil {
		return m.emailExistsFn(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id string) error {
	m.calls++
	if m.updateLastLoginFn != nil {
		return m.updateLastLoginFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) MarkEmailVerified(ctx context.Context, id string) error {
	m.calls++
	if m.markEmailVerifiedFn != nil {
		return m.markEmailVerifiedFn(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	m.calls++
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, id, passwordHash)
	}
	return nil
}

func (m *mockUserRepo) CreateToken(ctx context.Context, tokenHash string, token *Token) error {
	m.calls++
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, tokenHash, token)
	}
	return nil
}

func (m *mockUserRepo) FindToken(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error) {
	m.calls++
	if m.findTokenFn != nil {
		return m.findTokenFn(ctx, tokenHash, purpose)
	}
	return nil, apperror.NewNotFound("token not found")
}

func (m *mockUserRepo) MarkTokenUsed(ctx context.Context, tokenHash string) error {
	m.calls++
	if m.markTokenUsedFn != nil {
		return m.markTokenUsedFn(ctx, tokenHash)
	}
	return nil
}

// --- Mock Mailer ---

// mockMailer implements mailer.Mailer for testing.
type mockMailer struct {
	sendFn func(ctx context.Context, to []string, subject, body string) error
	// Capture fields for assertions.
	lastTo      []string
	lastSubject string
	lastBody    string
	sendCount   int
}

func (m *mockMailer) Send(ctx context.Context, to []string, subject, body string) error {
	m.lastTo = to
	m.lastSubject = subject
	m.lastBody = body
	m.sendCount++
	if m.sendFn != nil {
		return m.sendFn(ctx, to, subject, body)
	}
	return nil
}

func (m *mockMailer) IsConfigured() bool { return true }

// --- Test Helpers ---

// newTestAuthService creates an authService with a mock repo and mailer.
// Redis is only wired in tests that exercise session paths (via miniredis).
func newTestAuthService(repo *mockUserRepo, mail *mockMailer) *authService {
	return &authService{
		repo:            repo,
		mail:            mail,
		baseURL:         "https://lifelog.example.com",
		sessionTTL:      24 * time.Hour,
		verificationTTL: 24 * time.Hour,
		resetTTL:        time.Hour,
	}
}

// newTestRedis starts an in-memory Redis server and returns a client
// connected to it.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

// assertAppError checks that err is an *apperror.AppError with the expected
// HTTP code and machine type.
func assertAppError(t *testing.T, err error, expectedCode int, expectedType string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error with code %d, got nil", expectedType, expectedCode)
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != expectedCode {
		t.Errorf("expected status %d, got %d (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	if appErr.Type != expectedType {
		t.Errorf("expected type %s, got %s", expectedType, appErr.Type)
	}
}

// verifiedUser returns a user with a real argon2id hash for the given
// password, ready for sign-in tests.
func verifiedUser(t *testing.T, email, password string) *User {
	t.Helper()
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	return &User{
		ID:            "user-123",
		Email:         email,
		DisplayName:   "Alice",
		PasswordHash:  hash,
		EmailVerified: true,
		CreatedAt:     time.Now().UTC(),
	}
}

// --- SignUp Tests ---

func TestSignUp_Success(t *testing.T) {
	mail := &mockMailer{}
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *User) error {
			if user.Email != "alice@example.com" {
				t.Errorf("expected email alice@example.com, got %s", user.Email)
			}
			if user.DisplayName != "Alice" {
				t.Errorf("expected display name Alice, got %s", user.DisplayName)
			}
			if user.EmailVerified {
				t.Error("expected new account to start unverified")
			}
			if user.PasswordHash == "" {
				t.Error("expected password hash to be set")
			}
			return nil
		},
	}

	svc := newTestAuthService(repo, mail)
	user, verificationSent, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "Alice@Example.com",
		Password: "secret-password",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}
	if user.ID == "" {
		t.Error("expected user ID to be generated")
	}

	// A verification email goes out, containing the verification link.
	if !verificationSent {
		t.Error("expected verification_email_sent to be reported")
	}
	if mail.sendCount != 1 {
		t.Errorf("expected 1 verification email, got %d", mail.sendCount)
	}
	if !strings.Contains(mail.lastBody, "verify-email?code=") {
		t.Errorf("expected verification link in body, got: %s", mail.lastBody)
	}
}

func TestSignUp_InvalidInputNeverTouchesStore(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret-password"},
		{"no at sign", "not-an-email", "secret-password"},
		{"no domain dot", "user@host", "secret-password"},
		{"whitespace in email", "a b@example.com", "secret-password"},
		{"short password", "alice@example.com", "12345"},
		{"empty password", "alice@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{}
			svc := newTestAuthService(repo, &mockMailer{})
			_, _, err := svc.SignUp(context.Background(), SignUpInput{
				Email:    tt.email,
				Password: tt.password,
				Name:     "Test",
			})
			assertAppError(t, err, 422, "validation_error")
			if repo.calls != 0 {
				t.Errorf("expected zero repository calls for invalid input, got %d", repo.calls)
			}
		})
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepo{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	_, _, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "taken@example.com",
		Password: "secret-password",
		Name:     "Test",
	})
	assertAppError(t, err, 409, "email_already_in_use")
}

func TestSignUp_CreateError(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, user *User) error {
			return errors.New("db write error")
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	_, _, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "alice@example.com",
		Password: "secret-password",
		Name:     "Alice",
	})
	assertAppError(t, err, 500, "internal_error")
}

func TestSignUp_MailFailureDoesNotFailSignUp(t *testing.T) {
	mail := &mockMailer{
		sendFn: func(ctx context.Context, to []string, subject, body string) error {
			return errors.New("smtp unreachable")
		},
	}

	svc := newTestAuthService(&mockUserRepo{}, mail)
	user, verificationSent, err := svc.SignUp(context.Background(), SignUpInput{
		Email:    "alice@example.com",
		Password: "secret-password",
		Name:     "Alice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user == nil {
		t.Fatal("expected user despite mail failure")
	}
	// The account exists but the client must not be told the email went out.
	if verificationSent {
		t.Error("expected verification_email_sent to be false when the send fails")
	}
}

// --- SignIn Tests ---

func TestSignIn_Success(t *testing.T) {
	user := verifiedUser(t, "alice@example.com", "secret-password")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	svc.redis = newTestRedis(t)

	token, got, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}
	if got.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, got.ID)
	}

	// The token must round-trip through session validation.
	session, err := svc.ValidateSession(context.Background(), token)
	if err != nil {
		t.Fatalf("expected valid session: %v", err)
	}
	if session.UserID != user.ID {
		t.Errorf("expected session for %s, got %s", user.ID, session.UserID)
	}
	if !session.EmailVerified {
		t.Error("expected verified flag in session")
	}
}

func TestSignIn_InvalidInputNeverTouchesStore(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestAuthService(repo, &mockMailer{})

	_, _, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "not-an-email",
		Password: "secret-password",
	})
	assertAppError(t, err, 422, "validation_error")
	if repo.calls != 0 {
		t.Errorf("expected zero repository calls, got %d", repo.calls)
	}
}

func TestSignIn_UnknownAccount(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{}, &mockMailer{})

	_, _, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "nobody@example.com",
		Password: "secret-password",
	})
	assertAppError(t, err, 404, "account_not_found")
}

func TestSignIn_WrongPassword(t *testing.T) {
	user := verifiedUser(t, "alice@example.com", "secret-password")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	_, _, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assertAppError(t, err, 401, "wrong_credential")
}

func TestSignIn_UnverifiedEmailResendsAndRefuses(t *testing.T) {
	user := verifiedUser(t, "alice@example.com", "secret-password")
	user.EmailVerified = false
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
	}
	mail := &mockMailer{}

	svc := newTestAuthService(repo, mail)
	_, _, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	assertAppError(t, err, 403, "email_not_verified")

	// The refusal itself triggers a fresh verification email.
	if mail.sendCount != 1 {
		t.Errorf("expected verification email re-sent, got %d sends", mail.sendCount)
	}
}

func TestSignIn_LastLoginFailureIsNonFatal(t *testing.T) {
	user := verifiedUser(t, "alice@example.com", "secret-password")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
		updateLastLoginFn: func(ctx context.Context, id string) error {
			return errors.New("db write error")
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	svc.redis = newTestRedis(t)

	token, _, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("expected sign-in to succeed despite lastLogin failure: %v", err)
	}
	if token == "" {
		t.Error("expected session token")
	}
}

// --- Session Tests ---

func TestSignOut_DestroysSession(t *testing.T) {
	user := verifiedUser(t, "alice@example.com", "secret-password")
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return user, nil
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	svc.redis = newTestRedis(t)

	token, _, err := svc.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.SignOut(context.Background(), token); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.ValidateSession(context.Background(), token)
	assertAppError(t, err, 401, "unauthorized")
}

func TestSignOut_UnknownTokenIsNoop(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{}, &mockMailer{})
	svc.redis = newTestRedis(t)

	if err := svc.SignOut(context.Background(), "never-issued"); err != nil {
		t.Fatalf("expected no error for unknown token, got %v", err)
	}
}

func TestValidateSession_UnknownToken(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{}, &mockMailer{})
	svc.redis = newTestRedis(t)

	_, err := svc.ValidateSession(context.Background(), "bogus")
	assertAppError(t, err, 401, "unauthorized")
}

// --- Password Reset Tests ---

func TestResetPassword_Success(t *testing.T) {
	var storedHash string
	mail := &mockMailer{}
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: "user-123", Email: "alice@example.com"}, nil
		},
		createTokenFn: func(ctx context.Context, tokenHash string, token *Token) error {
			if token.Purpose != PurposeResetPassword {
				t.Errorf("expected reset purpose, got %s", token.Purpose)
			}
			untilExpiry := time.Until(token.ExpiresAt)
			if untilExpiry < 55*time.Minute || untilExpiry > 65*time.Minute {
				t.Errorf("expected expiry ~1 hour, got %v", untilExpiry)
			}
			storedHash = tokenHash
			return nil
		},
	}

	svc := newTestAuthService(repo, mail)
	if err := svc.ResetPassword(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mail.sendCount != 1 {
		t.Errorf("expected 1 email sent, got %d", mail.sendCount)
	}
	if len(mail.lastTo) != 1 || mail.lastTo[0] != "alice@example.com" {
		t.Errorf("expected email to alice@example.com, got %v", mail.lastTo)
	}
	if storedHash == "" {
		t.Error("expected token hash to be stored")
	}
	// Only the hash is persisted -- the plaintext code goes in the email.
	if strings.Contains(mail.lastBody, storedHash) {
		t.Error("email body must carry the plaintext code, not the stored hash")
	}
}

func TestResetPassword_UnknownAccount(t *testing.T) {
	mail := &mockMailer{}
	svc := newTestAuthService(&mockUserRepo{}, mail)

	err := svc.ResetPassword(context.Background(), "nobody@example.com")
	assertAppError(t, err, 404, "account_not_found")
	if mail.sendCount != 0 {
		t.Errorf("expected no email for unknown account, got %d", mail.sendCount)
	}
}

func TestConfirmPasswordReset_Success(t *testing.T) {
	var updatedHash string
	var tokenConsumed bool
	repo := &mockUserRepo{
		findTokenFn: func(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error) {
			return &Token{
				UserID:    "user-123",
				Email:     "alice@example.com",
				Purpose:   PurposeResetPassword,
				ExpiresAt: time.Now().UTC().Add(30 * time.Minute),
			}, nil
		},
		updatePasswordFn: func(ctx context.Context, id, passwordHash string) error {
			if id != "user-123" {
				t.Errorf("expected user-123, got %s", id)
			}
			updatedHash = passwordHash
			return nil
		},
		markTokenUsedFn: func(ctx context.Context, tokenHash string) error {
			tokenConsumed = true
			return nil
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	if err := svc.ConfirmPasswordReset(context.Background(), "valid-code", "new-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !verifyPassword("new-secret", updatedHash) {
		t.Error("expected new password to verify against updated hash")
	}
	if !tokenConsumed {
		t.Error("expected token to be marked used")
	}
}

func TestConfirmPasswordReset_BadCodes(t *testing.T) {
	usedAt := time.Now().Add(-5 * time.Minute)
	tests := []struct {
		name   string
		findFn func(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error)
	}{
		{"unknown code", nil},
		{"expired code", func(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error) {
			return &Token{UserID: "user-123", ExpiresAt: time.Now().Add(-10 * time.Minute)}, nil
		}},
		{"already used code", func(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error) {
			return &Token{UserID: "user-123", ExpiresAt: time.Now().Add(30 * time.Minute), UsedAt: &usedAt}, nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{findTokenFn: tt.findFn}
			svc := newTestAuthService(repo, &mockMailer{})
			err := svc.ConfirmPasswordReset(context.Background(), "some-code", "new-secret")
			assertAppError(t, err, 400, "bad_request")
		})
	}
}

func TestConfirmPasswordReset_ShortPassword(t *testing.T) {
	repo := &mockUserRepo{}
	svc := newTestAuthService(repo, &mockMailer{})

	err := svc.ConfirmPasswordReset(context.Background(), "some-code", "12345")
	assertAppError(t, err, 422, "validation_error")
	if repo.calls != 0 {
		t.Errorf("expected zero repository calls, got %d", repo.calls)
	}
}

// --- Email Verification Tests ---

func TestVerifyEmail_Success(t *testing.T) {
	var markedVerified bool
	repo := &mockUserRepo{
		findTokenFn: func(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error) {
			if purpose != PurposeVerifyEmail {
				t.Errorf("expected verify purpose, got %s", purpose)
			}
			return &Token{
				UserID:    "user-123",
				Email:     "alice@example.com",
				Purpose:   PurposeVerifyEmail,
				ExpiresAt: time.Now().UTC().Add(time.Hour),
			}, nil
		},
		markEmailVerifiedFn: func(ctx context.Context, id string) error {
			markedVerified = true
			return nil
		},
		findByIDFn: func(ctx context.Context, id string) (*User, error) {
			return &User{ID: id, Email: "alice@example.com", EmailVerified: true}, nil
		},
	}

	svc := newTestAuthService(repo, &mockMailer{})
	user, err := svc.VerifyEmail(context.Background(), "valid-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !markedVerified {
		t.Error("expected account to be marked verified")
	}
	if !user.EmailVerified {
		t.Error("expected reloaded user to be verified")
	}
}

func TestVerifyEmail_InvalidCode(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{}, &mockMailer{})
	_, err := svc.VerifyEmail(context.Background(), "bogus-code")
	assertAppError(t, err, 400, "bad_request")
}

func TestSendVerificationEmail_AlreadyVerified(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*User, error) {
			return &User{ID: "user-123", Email: email, EmailVerified: true}, nil
		},
	}
	mail := &mockMailer{}

	svc := newTestAuthService(repo, mail)
	err := svc.SendVerificationEmail(context.Background(), "alice@example.com")
	assertAppError(t, err, 422, "validation_error")
	if mail.sendCount != 0 {
		t.Errorf("expected no email, got %d", mail.sendCount)
	}
}

// --- Password Hashing Tests ---

func TestHashAndVerifyPassword(t *testing.T) {
	password := "my-secret-password-123"

	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}

	if !verifyPassword(password, hash) {
		t.Error("expected correct password to verify")
	}
	if verifyPassword("wrong-password", hash) {
		t.Error("expected wrong password to fail verification")
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty string", ""},
		{"random text", "not-a-hash"},
		{"too few parts", "$argon2id$v=19$m=65536"},
		{"corrupted salt", "$argon2id$v=19$m=65536,t=3,p=4$!!!invalid$aGFzaA"},
		{"corrupted hash", "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$!!!invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if verifyPassword("password", tt.hash) {
				t.Error("expected invalid hash to fail verification")
			}
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	hash2, err := hashPassword("same-password")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	if hash1 == hash2 {
		t.Error("expected different salts to produce different hashes")
	}
}

// --- Token Hashing Tests ---

func TestHashToken_Deterministic(t *testing.T) {
	token := "test-token-12345"
	if hashToken(token) != hashToken(token) {
		t.Error("expected hashToken to be deterministic")
	}
}

func TestHashToken_Length(t *testing.T) {
	// SHA-256 = 32 bytes = 64 hex characters.
	if len(hashToken("any-token")) != 64 {
		t.Errorf("expected 64-char hex hash, got %d chars", len(hashToken("any-token")))
	}
}
