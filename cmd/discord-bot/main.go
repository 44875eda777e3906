package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/logger"
)

func main() {
	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	flag.Parse()

	gCfg, err := config.LoadGlobalConfig(*globalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config: %v", err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	if gCfg.BotConfig.ResolveToken() == "" {
		zLogger.Fatal().Msg("Bot token is not set. Set DISCORD_BOT_TOKEN or bot_config.token in the config file")
	}

	zLogger.Info().Msg("Starting mailprobe Discord bot...")

	bot, err := NewBot(gCfg, zLogger)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Failed to create Discord bot")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := bot.Start(ctx); err != nil {
			zLogger.Error().Err(err).Msg("Bot stopped with error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zLogger.Info().Msg("Shutting down Discord bot...")
	cancel()
	zLogger.Info().Msg("Discord bot stopped")
}
