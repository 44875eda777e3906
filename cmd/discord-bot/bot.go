package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/aleister1102/mailprobe/internal/checker"
	"github.com/aleister1102/mailprobe/internal/common/errorwrapper"
	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/progress"
)

// Bot represents the Discord bot instance
type Bot struct {
	session        *discordgo.Session
	cfg            *config.GlobalConfig
	logger         zerolog.Logger
	rateLimiter    *rate.Limiter
	batchChecker   *checker.BatchChecker
	tracker        *progress.Tracker
	serviceMonitor *ServiceMonitor
	httpClient     *http.Client

	runMu     sync.Mutex
	cancelRun context.CancelFunc
}

// NewBot creates a new Discord bot instance
func NewBot(cfg *config.GlobalConfig, logger zerolog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.BotConfig.ResolveToken())
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create Discord session")
	}

	serviceMonitor, err := NewServiceMonitor()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create service monitor")
	}

	factory := checker.NewBrowserSessionFactory(cfg.BrowserConfig, cfg.CheckerConfig, logger)

	bot := &Bot{
		session:        session,
		cfg:            cfg,
		logger:         logger.With().Str("component", "Bot").Logger(),
		rateLimiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.BotConfig.CommandsPerMinute)), cfg.BotConfig.BurstLimit),
		batchChecker:   checker.NewBatchChecker(cfg.CheckerConfig, factory, logger),
		tracker:        progress.NewTracker(),
		serviceMonitor: serviceMonitor,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
	}

	bot.session.AddHandler(bot.onReady)
	bot.session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// Start opens the Discord session and blocks until the context is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return errorwrapper.WrapError(err, "failed to open Discord session")
	}

	if err := b.session.UpdateGameStatus(0, "mailprobe"); err != nil {
		b.logger.Warn().Err(err).Msg("Failed to set bot status")
	}

	<-ctx.Done()

	b.logger.Info().Msg("Cleaning up commands and closing session")
	cleanupCommands(b.session, b.cfg.BotConfig.GuildID, b.logger)

	return b.session.Close()
}

// onReady handles the ready event
func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info().
		Str("username", event.User.Username).
		Msg("Discord bot is ready")

	if err := registerCommands(s, b.cfg.BotConfig.GuildID); err != nil {
		b.logger.Error().Err(err).Msg("Failed to register commands")
	}
}

// onInteractionCreate handles interaction events
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if !b.rateLimiter.Allow() {
		b.logger.Warn().Msg("Rate limit exceeded for interaction")
		_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "⚠️ Rate limit exceeded. Please wait before sending another command.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	switch i.ApplicationCommandData().Name {
	case "check":
		b.handleCheck(s, i)
	case "cancel":
		b.handleCancel(s, i)
	case "status":
		b.handleStatus(s, i)
	case "help":
		b.handleHelp(s, i)
	default:
		b.logger.Warn().Str("command", i.ApplicationCommandData().Name).Msg("Unknown command")
	}
}

// beginRun reserves the single run slot. It returns a run context or an
// error when a batch is already in flight.
func (b *Bot) beginRun() (context.Context, error) {
	b.runMu.Lock()
	defer b.runMu.Unlock()

	if b.cancelRun != nil {
		return nil, errorwrapper.NewError("a batch check is already running, use /cancel to stop it")
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancelRun = cancel
	return ctx, nil
}

// endRun releases the run slot.
func (b *Bot) endRun() {
	b.runMu.Lock()
	defer b.runMu.Unlock()

	if b.cancelRun != nil {
		b.cancelRun()
		b.cancelRun = nil
	}
}

// cancelActiveRun cancels the in-flight batch, if any. The batch stops after
// the current address finishes; the per-address probe is not interrupted.
func (b *Bot) cancelActiveRun() bool {
	b.runMu.Lock()
	defer b.runMu.Unlock()

	if b.cancelRun == nil {
		return false
	}
	b.cancelRun()
	return true
}
