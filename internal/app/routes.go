package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lifelogapp/lifelog/internal/mailer"
	"github.com/lifelogapp/lifelog/internal/modules/auth"
	"github.com/lifelogapp/lifelog/internal/modules/entries"
	"github.com/lifelogapp/lifelog/internal/modules/export"
	"github.com/lifelogapp/lifelog/internal/modules/insights"
	"github.com/lifelogapp/lifelog/internal/modules/notifications"
)

// RegisterRoutes constructs every module's repository/service/handler stack
// and registers its routes. This is the single place where the modules are
// wired together.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// Health check endpoint for container orchestration.
	e.GET("/healthz", func(c echo.Context) error {
		if err := a.DB.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "database unreachable"})
		}
		if err := a.Redis.Ping(c.Request().Context()).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "redis unreachable"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Outbound mail: real SMTP when configured, log-only in development.
	var mail mailer.Mailer = mailer.LogMailer{}
	if a.Config.Mail.IsConfigured() {
		mail = mailer.NewSMTPMailer(
			a.Config.Mail.Host,
			a.Config.Mail.Port,
			a.Config.Mail.Username,
			a.Config.Mail.Password,
			a.Config.Mail.From,
		)
	} else {
		slog.Warn("SMTP not configured, emails will be logged instead of sent")
	}

	// Push delivery: FCM when credentials are present, otherwise a nop
	// sender so preference management still works.
	var sender notifications.Sender = notifications.NopSender{}
	if a.Config.Notify.FCMCredentialsFile != "" {
		fcm, err := notifications.NewFCMSender(context.Background(), a.Config.Notify.FCMCredentialsFile)
		if err != nil {
			slog.Error("initializing FCM sender, pushes disabled", slog.Any("error", err))
		} else {
			sender = fcm
		}
	} else {
		slog.Warn("FCM credentials not configured, reminder pushes will be dropped")
	}

	// auth: identity lifecycle and sessions.
	userRepo := auth.NewUserRepository(a.DB)
	authService := auth.NewAuthService(
		userRepo, a.Redis, mail, a.Config.BaseURL,
		a.Config.Auth.SessionTTL, a.Config.Auth.VerificationTTL, a.Config.Auth.ResetTTL,
	)
	auth.RegisterRoutes(e, auth.NewHandler(authService), authService)

	// entries: the append-only journal.
	entryRepo := entries.NewEntryRepository(a.DB)
	entryService := entries.NewEntryService(entryRepo)
	entries.RegisterRoutes(e, entries.NewHandler(entryService), authService)

	// insights: aggregate views over the journal.
	insightService := insights.NewInsightService(entryRepo)
	insights.RegisterRoutes(e, insights.NewHandler(insightService), authService)

	// notifications: preferences and reminder dispatch.
	prefRepo := notifications.NewPreferenceRepository(a.DB)
	notifyService := notifications.NewNotificationService(prefRepo, sender)
	notifHandler := notifications.NewHandler(notifyService, a.Config.Notify.CronSecret != "")
	notifications.RegisterRoutes(e, notifHandler, authService, a.Config.Notify.CronSecret)

	// export: portable data envelopes.
	exportService := export.NewExportService(entryRepo, prefRepo)
	export.RegisterRoutes(e, export.NewHandler(exportService), authService)
}
