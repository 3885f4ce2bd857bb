package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/middleware"
)

// RegisterRoutes sets up all auth-related routes on the given Echo instance.
// Most auth routes are public (no session required) -- the middleware is
// exported separately for other modules to use on their route groups.
//
// Credential endpoints are rate-limited to prevent brute-force and
// credential stuffing attacks: 10 attempts per IP per minute for sign-in,
// 5 for sign-up and the email-sending flows.
func RegisterRoutes(e *echo.Echo, h *Handler, service AuthService) {
	g := e.Group("/api/auth")

	g.POST("/signup", h.SignUp, middleware.RateLimit(5, time.Minute))
	g.POST("/signin", h.SignIn, middleware.RateLimit(10, time.Minute))
	g.POST("/signout", h.SignOut)

	g.POST("/reset-password", h.ResetPassword, middleware.RateLimit(5, time.Minute))
	g.POST("/reset-password/confirm", h.ConfirmReset, middleware.RateLimit(5, time.Minute))
	g.POST("/verify-email", h.VerifyEmail, middleware.RateLimit(10, time.Minute))
	g.POST("/verify-email/resend", h.ResendVerification, middleware.RateLimit(5, time.Minute))

	g.GET("/me", h.Me, RequireAuth(service))
}
