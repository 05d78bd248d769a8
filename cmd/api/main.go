package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/oauth2"

	"smart-task-planner/config"
	_ "smart-task-planner/docs" // Swagger docs
	authUsecase "smart-task-planner/internal/auth/usecase"
	"smart-task-planner/internal/httpserver"
	"smart-task-planner/internal/middleware"
	"smart-task-planner/internal/planner"
	plannerUsecase "smart-task-planner/internal/planner/usecase"
	"smart-task-planner/internal/session"
	"smart-task-planner/pkg/datemath"
	"smart-task-planner/pkg/gcalendar"
	"smart-task-planner/pkg/llmprovider"
	"smart-task-planner/pkg/log"
	"smart-task-planner/pkg/taskparse"
)

// @title       Smart Task Planner API
// @description Turns free-text tasks into Google Calendar events, using a local extractor with an LLM fallback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Local parsing
	dateMathParser, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}
	extractor := taskparse.NewExtractor(dateMathParser, cfg.Planner.DefaultDuration)

	// 4. Remote parser (optional)
	var oracle planner.Oracle
	if len(cfg.LLM.Providers) > 0 {
		manager, llmErr := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		if llmErr != nil {
			logger.Warnf(ctx, "Remote parser disabled: %v", llmErr)
		} else {
			oracle = manager
			logger.Infof(ctx, "Remote parser enabled with %d provider(s)", len(manager.Providers()))
		}
	} else {
		logger.Warn(ctx, "No LLM provider configured, only the local extractor will run")
	}

	// 5. Shared calendar (optional)
	var shared planner.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Shared calendar not available: %v", calErr)
			logger.Warn(ctx, "→ Run `planner auth` to generate token.json")
		} else {
			shared = client
			logger.Info(ctx, "Shared Google Calendar initialized")
		}
	}

	// 6. Browser sign-in (optional)
	redirectURL := cfg.OAuth.RedirectURL
	if cfg.OAuth.NgrokAPI != "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.OAuth.NgrokAPI)
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			redirectURL = ngrokURL + "/oauth2callback"
			logger.Infof(ctx, "Auto-detected OAuth redirect URL: %s", redirectURL)
		}
	}
	oauthCfg := loadOAuthConfig(ctx, logger, cfg.OAuth, redirectURL)

	// 7. Use cases
	sessions := session.NewStore(cfg.Session.MaxSessions, cfg.Session.TTL)
	authUC := authUsecase.New(logger, sessions, oauthCfg, shared)
	plannerUC := plannerUsecase.New(logger, authUC, oracle, extractor, dateMathParser, plannerUsecase.Config{
		CalendarID:       cfg.GoogleCalendar.CalendarID,
		Timezone:         dateMathParser.Location().String(),
		MaxInputLength:   cfg.Planner.MaxInputLength,
		WorkdayStartHour: cfg.Planner.WorkdayStartHour,
		WorkdayEndHour:   cfg.Planner.WorkdayEndHour,
		SlotSearchDays:   cfg.Planner.SlotSearchDays,
		DuplicateWindow:  cfg.Planner.DuplicateWindow,
		HistoryContext:   cfg.Planner.HistoryContext,
		UpcomingLimit:    cfg.Planner.UpcomingLimit,
	})

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, sessions, cfg.Session, cfg.HTTPServer.RateLimitPerMin),
		PlannerUseCase: plannerUC,
		HistoryContext: cfg.Planner.HistoryContext,
		AuthUseCase:    authUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// loadOAuthConfig prefers explicit client credentials over the client secret
// file. It returns nil when neither is usable, which disables /login.
func loadOAuthConfig(ctx context.Context, logger log.Logger, cfg config.OAuthConfig, redirectURL string) *oauth2.Config {
	if cfg.ClientID != "" && cfg.ClientSecret != "" {
		return gcalendar.OAuthConfig(cfg.ClientID, cfg.ClientSecret, redirectURL)
	}
	if cfg.ClientSecretFile == "" {
		logger.Warn(ctx, "Browser sign-in disabled: no OAuth client configured")
		return nil
	}

	data, err := os.ReadFile(cfg.ClientSecretFile)
	if err != nil {
		logger.Warnf(ctx, "Browser sign-in disabled: %v", err)
		return nil
	}
	oauthCfg, err := gcalendar.OAuthConfigFromJSON(data, redirectURL)
	if err != nil {
		logger.Warnf(ctx, "Browser sign-in disabled: %v", err)
		return nil
	}
	return oauthCfg
}
