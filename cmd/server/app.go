package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"kotoba/backend/internal/config"
	"kotoba/backend/internal/db"
	"kotoba/backend/internal/logger"
	"kotoba/backend/internal/mailer"
	"kotoba/backend/internal/repository"
	"kotoba/backend/internal/repository/postgres"
	"kotoba/backend/internal/service"
	"kotoba/backend/internal/service/ai"
)

// app holds the wired services shared by every command.
type app struct {
	cfg     config.Config
	loc     *time.Location
	closeDB func() error
	users   repository.UserRepository
	auth    service.AuthService
	trans   service.TranslationService
	summary service.SummaryService
	job     *service.DailySummaryJob
}

func newApp(cfg config.Config) (*app, error) {
	loc, err := cfg.Job.Location()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, loc: loc}
	var (
		translations repository.TranslationRepository
		summaries    repository.SummaryRepository
	)
	if cfg.DatabaseURL != "" {
		gdb, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("postgres handle: %w", err)
		}
		a.closeDB = sqlDB.Close
		translations = postgres.NewTranslationRepository(gdb)
		summaries = postgres.NewSummaryRepository(gdb)
		a.users = postgres.NewUserRepository(gdb)
		logger.Info("database opened", "module", "db", "action", "open", "resource", "postgres", "result", "ok")
	} else {
		conn, err := db.Open(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		a.closeDB = conn.Close
		translations = repository.NewTranslationRepository(conn)
		summaries = repository.NewSummaryRepository(conn)
		a.users = repository.NewUserRepository(conn)
		logger.Info("database opened", "module", "db", "action", "open", "resource", "sqlite", "result", "ok", "path", cfg.DBPath)
	}

	provider, err := newProvider(cfg.AI)
	if err != nil {
		if !errors.Is(err, ai.ErrMissingAPIKey) {
			_ = a.closeDB()
			return nil, err
		}
		provider = nil
		logger.Warn("ai provider disabled", "module", "ai", "action", "init", "resource", "provider", "result", "skipped", "reason", "missing api key")
	}
	limiter := ai.NewRateLimiter(cfg.AI.RateLimit)

	dispatcher := mailer.NewDispatcher(
		mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}),
		cfg.SMTP.Username,
		cfg.SMTP.FromName,
		loc,
	)

	a.auth = service.NewAuthService(a.users, jwtSecret(cfg.JWTSecret))
	a.trans = service.NewTranslationService(translations, service.NewTranslator(provider, limiter), loc)
	a.summary = service.NewSummaryService(summaries, translations, service.NewSummaryGenerator(provider, limiter), dispatcher, loc)
	a.job = service.NewDailySummaryJob(a.summary, a.users, dispatcher, service.DailySummarySettings{
		UserID:   cfg.Job.UserID,
		Email:    cfg.Job.Email,
		Location: loc,
	})
	return a, nil
}

func newProvider(cfg config.AIConfig) (ai.Provider, error) {
	provider, err := ai.NewProvider(ai.Config{
		Provider: cfg.Provider,
		APIKey:   cfg.APIKey,
		BaseURL:  cfg.BaseURL,
		Model:    cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("ai provider: %w", err)
	}
	return provider, nil
}

func (a *app) Close() {
	if a.closeDB == nil {
		return
	}
	if err := a.closeDB(); err != nil {
		logger.Warn("database close failed", "module", "db", "action", "close", "resource", "db", "result", "failed", "error", err)
	}
}

// jwtSecret returns the configured secret or a random one, which logs every
// session out on restart.
func jwtSecret(configured string) []byte {
	if configured != "" {
		return []byte(configured)
	}
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	logger.Warn("jwt secret not configured", "module", "auth", "action", "init", "resource", "jwt", "result", "ok", "secret", "random")
	return secret
}
