package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

// UserRepository defines the data access contract for identity operations.
// All SQL lives in the concrete implementation -- no SQL leaks out.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id string) error
	MarkEmailVerified(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// Single-use emailed tokens (verification + password reset).
	CreateToken(ctx context.Context, tokenHash string, token *Token) error
	FindToken(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error)
	MarkTokenUsed(ctx context.Context, tokenHash string) error
}

// userRepository implements UserRepository with hand-written MariaDB queries.
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository backed by the given DB pool.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// userColumns is the SELECT column list for identity queries.
const userColumns = `id, email, display_name, password_hash, email_verified,
	created_at, last_login_at`

// Create inserts a new user row. Preference columns keep their schema
// defaults (reminders off).
func (r *userRepository) Create(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, email, display_name, password_hash, email_verified, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.EmailVerified,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

// FindByID retrieves a user by their UUID.
// Returns apperror.NotFound if no user exists with this ID.
func (r *userRepository) FindByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.EmailVerified,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by id: %w", err)
	}

	return user, nil
}

// FindByEmail retrieves a user by their email address.
// Returns apperror.NotFound if no user exists with this email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user := &User{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.EmailVerified,
		&user.CreatedAt,
		&user.LastLoginAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user by email: %w", err)
	}

	return user, nil
}

// EmailExists reports whether an account already uses the given address.
// This is the sign-in-methods lookup the sign-up and reset flows rely on.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`

	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking email existence: %w", err)
	}

	return exists, nil
}

// UpdateLastLogin stamps the profile row with the current time. Callers
// treat failure as non-fatal.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id string) error {
	query := `UPDATE users SET last_login_at = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("updating last login: %w", err)
	}

	return nil
}

// MarkEmailVerified flips the verified flag after a successful code apply.
func (r *userRepository) MarkEmailVerified(ctx context.Context, id string) error {
	query := `UPDATE users SET email_verified = 1 WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("marking email verified: %w", err)
	}

	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users SET password_hash = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, passwordHash, id); err != nil {
		return fmt.Errorf("updating password: %w", err)
	}

	return nil
}

// CreateToken stores a single-use token hash with its purpose and expiry.
func (r *userRepository) CreateToken(ctx context.Context, tokenHash string, token *Token) error {
	query := `INSERT INTO auth_tokens (token_hash, user_id, email, purpose, expires_at, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		tokenHash,
		token.UserID,
		token.Email,
		string(token.Purpose),
		token.ExpiresAt,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting auth token: %w", err)
	}

	return nil
}

// FindToken retrieves a token by hash, scoped to a purpose so a reset code
// can never verify an email or vice versa.
// Returns apperror.NotFound if no such token exists.
func (r *userRepository) FindToken(ctx context.Context, tokenHash string, purpose TokenPurpose) (*Token, error) {
	query := `SELECT user_id, email, purpose, expires_at, used_at
	          FROM auth_tokens WHERE token_hash = ? AND purpose = ?`

	token := &Token{}
	var purposeStr string
	err := r.db.QueryRowContext(ctx, query, tokenHash, string(purpose)).Scan(
		&token.UserID,
		&token.Email,
		&purposeStr,
		&token.ExpiresAt,
		&token.UsedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("token not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying auth token: %w", err)
	}
	token.Purpose = TokenPurpose(purposeStr)

	return token, nil
}

// MarkTokenUsed consumes a token so it cannot be replayed.
func (r *userRepository) MarkTokenUsed(ctx context.Context, tokenHash string) error {
	query := `UPDATE auth_tokens SET used_at = ? WHERE token_hash = ?`

	if _, err := r.db.ExecContext(ctx, query, time.Now().UTC(), tokenHash); err != nil {
		return fmt.Errorf("marking token used: %w", err)
	}

	return nil
}
