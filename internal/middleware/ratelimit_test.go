package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

func TestRateLimit_OverLimitReturnsRateLimitedError(t *testing.T) {
	e := echo.New()
	limited := RateLimit(2, time.Minute)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	call := func() error {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", nil)
		req.RemoteAddr = "203.0.113.7:12345"
		rec := httptest.NewRecorder()
		return limited(e.NewContext(req, rec))
	}

	// The first two requests in the window pass through.
	for i := 0; i < 2; i++ {
		if err := call(); err != nil {
			t.Fatalf("request %d unexpectedly limited: %v", i+1, err)
		}
	}

	// The third is refused with the shared taxonomy error so the central
	// handler produces the same JSON shape as every other failure.
	err := call()
	if err == nil {
		t.Fatal("expected third request to be rate limited")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	if appErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", appErr.Code)
	}
	if appErr.Type != "rate_limited" {
		t.Errorf("expected type rate_limited, got %s", appErr.Type)
	}
}
