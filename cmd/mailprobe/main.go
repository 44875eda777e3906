package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/mailprobe/internal/checker"
	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/logger"
	"github.com/aleister1102/mailprobe/internal/models"
	"github.com/aleister1102/mailprobe/internal/notifier"
	"github.com/aleister1102/mailprobe/internal/parser"
	"github.com/aleister1102/mailprobe/internal/progress"
	"github.com/aleister1102/mailprobe/internal/reporter"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	applyFlagOverrides(gCfg, flags)

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	data, err := os.ReadFile(flags.EntriesFile)
	if err != nil {
		zLogger.Fatal().Err(err).Str("file", flags.EntriesFile).Msg("Could not read entries file")
	}

	entries := parser.Parse(string(data))
	if len(entries) == 0 {
		zLogger.Fatal().Str("file", flags.EntriesFile).Msg("No valid entries found in input file")
	}
	zLogger.Info().Int("entries", len(entries)).Str("file", flags.EntriesFile).Msg("Entries parsed")

	// SIGINT/SIGTERM stops the batch after the in-flight check.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	factory := checker.NewBrowserSessionFactory(gCfg.BrowserConfig, gCfg.CheckerConfig, zLogger)
	batchChecker := checker.NewBatchChecker(gCfg.CheckerConfig, factory, zLogger)

	tracker := progress.NewTracker()
	tracker.Start(len(entries))

	results, summary := batchChecker.Run(ctx, entries, newProgressCallback(tracker, zLogger))

	switch {
	case summary.Cancelled:
		tracker.SetStatus(progress.StatusCancelled)
	case summary.SessionError != "":
		tracker.SetStatus(progress.StatusError)
	default:
		tracker.SetStatus(progress.StatusComplete)
	}

	files := reporter.BuildFiles(results, time.Now())
	fileReporter := reporter.New(gCfg.ReporterConfig, zLogger)
	paths, err := fileReporter.Write(files)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to write result files")
	}
	for _, path := range paths {
		zLogger.Info().Str("path", path).Msg("Result file ready")
	}

	if gCfg.NotificationConfig.WebhookURL != "" {
		discordNotifier := notifier.NewDiscordNotifier(zLogger, &http.Client{Timeout: 20 * time.Second})
		payload := notifier.FormatBatchSummary(summary, gCfg.NotificationConfig)
		if err := discordNotifier.SendNotification(context.Background(), gCfg.NotificationConfig.WebhookURL, payload); err != nil {
			zLogger.Error().Err(err).Msg("Failed to send summary notification")
		}
	}

	if summary.SessionError != "" {
		zLogger.Warn().Str("error", summary.SessionError).Msg("Batch did not run to completion")
	}
}

// newProgressCallback feeds the shared tracker and renders a console
// progress line with the percent and ETA the batch checker's own per-item
// log does not carry.
func newProgressCallback(tracker *progress.Tracker, logger zerolog.Logger) checker.ProgressFunc {
	return func(current, total int, address string, label models.Label) {
		tracker.Record(current, total, address, label)
		info := tracker.Info()
		logger.Info().
			Int("current", current).
			Int("total", total).
			Int("percent", info.Percent()).
			Dur("eta", info.EstimatedETA).
			Str("label", label.String()).
			Msg("Progress")
	}
}

// applyFlagOverrides lets command-line flags take precedence over the config
// file.
func applyFlagOverrides(gCfg *config.GlobalConfig, flags AppFlags) {
	if flags.OutputDir != "" {
		gCfg.ReporterConfig.OutputDir = flags.OutputDir
	}
	if flags.BaseDelaySecs > 0 {
		gCfg.CheckerConfig.BaseDelaySecs = flags.BaseDelaySecs
	}
	if flags.LogLevel != "" {
		gCfg.LogConfig.LogLevel = flags.LogLevel
	}
	if flags.Visible {
		gCfg.BrowserConfig.Headless = false
	}
}
