// Package services sequences the daily run: fetch the statement, build the
// report, deliver it. One strictly sequential flow, stateless between runs.
package services

import (
	"context"
	"fmt"
	"time"

	"monozvit/internal/core"
	applog "monozvit/internal/log"
	"monozvit/internal/report"
)

// StatementFetcher retrieves the account's transactions for a day window.
type StatementFetcher interface {
	Statement(ctx context.Context, accountID string, rng core.TimeRange) ([]core.Transaction, error)
}

// MessageSender delivers a rendered report to a chat.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// DailyReportConfig carries the run parameters the orchestrator needs.
type DailyReportConfig struct {
	AccountID string
	ChatID    string
	Day       core.Day
	DryRun    bool
}

type DailyReportService struct {
	fetcher   StatementFetcher
	sender    MessageSender
	generator *report.Generator
	loc       *time.Location
	cfg       DailyReportConfig
	now       func() time.Time
	logger    *applog.Logger
}

func NewDailyReportService(
	fetcher StatementFetcher,
	sender MessageSender,
	generator *report.Generator,
	loc *time.Location,
	cfg DailyReportConfig,
	logger *applog.Logger,
) *DailyReportService {
	return &DailyReportService{
		fetcher:   fetcher,
		sender:    sender,
		generator: generator,
		loc:       loc,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger.WithComponent(applog.ComponentService),
	}
}

// Run executes one fetch-report-deliver cycle and returns the rendered
// report. In dry-run mode the report is returned without being sent. Every
// failure bubbles up; there is no partial-result recovery.
func (s *DailyReportService) Run(ctx context.Context) (string, error) {
	rng := core.DayRange(s.now(), s.loc, s.cfg.Day)

	s.logger.InfoContext(ctx, "fetching statement",
		applog.FieldDay, string(s.cfg.Day),
		applog.FieldFrom, rng.From,
		applog.FieldTo, rng.To)

	transactions, err := s.fetcher.Statement(ctx, s.cfg.AccountID, rng)
	if err != nil {
		return "", fmt.Errorf("fetch statement: %w", err)
	}

	stats := report.Summarize(transactions)
	s.logger.InfoContext(ctx, "statement received",
		applog.FieldTransactions, stats.Total,
		applog.FieldExpenses, stats.Expenses,
		applog.FieldAmountMinor, stats.ExpenseAmount)

	text := s.generator.Generate(transactions, rng)

	if s.cfg.DryRun {
		s.logger.InfoContext(ctx, "dry run, skipping delivery", applog.FieldDryRun, true)
		return text, nil
	}

	if err := s.sender.SendMessage(ctx, s.cfg.ChatID, text); err != nil {
		return "", fmt.Errorf("deliver report: %w", err)
	}
	s.logger.InfoContext(ctx, "report delivered", applog.FieldChatID, s.cfg.ChatID)
	return text, nil
}
