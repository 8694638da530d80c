package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"monozvit/internal/cli"
	applog "monozvit/internal/log"
	"monozvit/internal/mcc"
	"monozvit/internal/mono"
	"monozvit/internal/report"
	"monozvit/internal/services"
	"monozvit/internal/telegram"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fail(logger, err)
		return 1
	}

	loc, err := cfg.Location()
	if err != nil {
		fail(logger, fmt.Errorf("load timezone: %w", err))
		return 1
	}

	httpClient := &http.Client{Timeout: cfg.RequestTimeout}
	monoClient := mono.New(cfg.MonoToken, logger, mono.WithHTTPClient(httpClient))
	tgClient := telegram.New(cfg.TelegramToken, logger, telegram.WithHTTPClient(httpClient))
	generator := report.NewGenerator(mcc.Resolve, loc)

	svc := services.NewDailyReportService(monoClient, tgClient, generator, loc, services.DailyReportConfig{
		AccountID: cfg.MonoAccountID,
		ChatID:    cfg.TelegramChatID,
		Day:       cfg.Day(),
		DryRun:    cfg.DryRun,
	}, logger)

	if cfg.DryRun {
		logger.Info("dry run mode, report will not be sent to Telegram")
	}

	text, err := svc.Run(context.Background())
	if err != nil {
		fail(logger, err)
		return 1
	}

	if cfg.DryRun {
		fmt.Println("\n--- ЗВІТ (DRY_RUN) ---")
		fmt.Println(text)
		fmt.Println("--- КІНЕЦЬ ЗВІТУ ---")
	}
	return 0
}

func fail(logger *applog.Logger, err error) {
	logger.Error("run failed", applog.FieldError, err.Error())
	if isCredentialError(err) {
		fmt.Fprintln(os.Stderr, "Перевірте правильність токенів у environment variables")
	}
}

// isCredentialError reports whether the failure points at a misconfigured
// token, so the user gets a hint on top of the diagnostic line.
func isCredentialError(err error) bool {
	var authErr *mono.AuthError
	if errors.As(err, &authErr) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "MONO_TOKEN") || strings.Contains(msg, "TG_BOT_TOKEN")
}
