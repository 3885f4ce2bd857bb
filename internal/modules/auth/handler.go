package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

// sessionCookieName is the HTTP cookie used to store the session token.
const sessionCookieName = "lifelog_session"

// Handler handles HTTP requests for the identity lifecycle. Handlers are
// thin: they bind the request, call the service, and write JSON. No
// business logic lives here.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// SignUp processes POST /api/auth/signup. On success the account exists
// but the caller is NOT signed in: a verification email is on its way.
func (h *Handler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	user, verificationSent, err := h.service.SignUp(c.Request().Context(), SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"user":                    user,
		"verification_email_sent": verificationSent,
	})
}

// SignIn processes POST /api/auth/signin and sets the session cookie.
func (h *Handler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	token, user, err := h.service.SignIn(c.Request().Context(), SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	setSessionCookie(c, token)

	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// SignOut processes POST /api/auth/signout. The session is destroyed and
// the cookie cleared regardless of whether a valid session existed.
func (h *Handler) SignOut(c echo.Context) error {
	if token := getSessionToken(c); token != "" {
		// Ignore errors -- the cookie is cleared regardless.
		_ = h.service.SignOut(c.Request().Context(), token)
	}

	clearSessionCookie(c)

	return c.NoContent(http.StatusNoContent)
}

// Me processes GET /api/auth/me. It reloads the identity projection from
// the store rather than echoing the session snapshot, so callers see
// changes (display name, verification) made since sign-in.
func (h *Handler) Me(c echo.Context) error {
	session := GetSession(c)

	user, err := h.service.Reload(c.Request().Context(), session.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// ResetPassword processes POST /api/auth/reset-password.
func (h *Handler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.ResetPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"reset_email_sent": true})
}

// ConfirmReset processes POST /api/auth/reset-password/confirm.
func (h *Handler) ConfirmReset(c echo.Context) error {
	var req ConfirmResetRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if err := h.service.ConfirmPasswordReset(c.Request().Context(), req.Code, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"password_reset": true})
}

// VerifyEmail processes POST /api/auth/verify-email with an emailed code.
func (h *Handler) VerifyEmail(c echo.Context) error {
	var req VerifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}
	if req.Code == "" {
		return apperror.NewValidation("Verification code is required.")
	}

	user, err := h.service.VerifyEmail(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"user": user})
}

// ResendVerification processes POST /api/auth/verify-email/resend.
func (h *Handler) ResendVerification(c echo.Context) error {
	var req ResendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	// Signed-in (but unverified) callers may omit the email.
	if req.Email == "" {
		if session := GetSession(c); session != nil {
			req.Email = session.Email
		}
	}

	if err := h.service.SendVerificationEmail(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{"verification_email_sent": true})
}

// --- Cookie helpers ---

// getSessionToken reads the session token from the cookie.
func getSessionToken(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// setSessionCookie sets the session cookie on the response. The cookie is
// HttpOnly (JS can't read it), Secure if behind TLS, and SameSite=Lax.
func setSessionCookie(c echo.Context, token string) {
	req := c.Request()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   req.TLS != nil || req.Header.Get("X-Forwarded-Proto") == "https",
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 days in seconds
	})
}

// clearSessionCookie removes the session cookie by setting MaxAge to -1.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
