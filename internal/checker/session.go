package checker

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"

	"github.com/aleister1102/mailprobe/internal/classify"
	"github.com/aleister1102/mailprobe/internal/common/errorwrapper"
	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/models"
)

// emailInputSelector locates the provider's email field. The comma selector
// gives first-match semantics across the three known variants.
const emailInputSelector = `input#email, input[name='user[login]'], input[type="email"]`

// stealthPatch hides the automation fingerprint before any provider script
// runs. Defeats the plain navigator.webdriver check.
const stealthPatch = `Object.defineProperty(navigator, 'webdriver', {get: () => undefined});`

// requestIdleWindow is how long the network must stay quiet before
// navigation counts as settled.
const requestIdleWindow = 300 * time.Millisecond

// BrowserSessionFactory launches rod-backed sessions.
type BrowserSessionFactory struct {
	browserCfg config.BrowserConfig
	checkerCfg config.CheckerConfig
	logger     zerolog.Logger
}

// NewBrowserSessionFactory creates a new browser session factory.
func NewBrowserSessionFactory(browserCfg config.BrowserConfig, checkerCfg config.CheckerConfig, logger zerolog.Logger) *BrowserSessionFactory {
	return &BrowserSessionFactory{
		browserCfg: browserCfg,
		checkerCfg: checkerCfg,
		logger:     logger.With().Str("component", "BrowserSession").Logger(),
	}
}

// Open launches a browser, prepares a single page with a realistic
// user-agent, viewport and the stealth patch, and returns the session.
func (f *BrowserSessionFactory) Open(ctx context.Context) (Session, error) {
	l := launcher.New()

	if f.browserCfg.ChromePath != "" {
		l = l.Bin(f.browserCfg.ChromePath)
	}
	if f.browserCfg.UserDataDir != "" {
		l = l.UserDataDir(f.browserCfg.UserDataDir)
	}

	l = l.Headless(f.browserCfg.Headless).
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-blink-features", "AutomationControlled")

	if f.browserCfg.DisableImages {
		l = l.Set("blink-settings", "imagesEnabled=false")
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to launch browser")
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, errorwrapper.WrapError(err, "failed to connect browser")
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Cleanup()
		return nil, errorwrapper.WrapError(err, "failed to create page")
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  f.browserCfg.WindowWidth,
		Height: f.browserCfg.WindowHeight,
	}); err != nil {
		f.logger.Warn().Err(err).Msg("Failed to set viewport")
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: f.browserCfg.UserAgent,
	}); err != nil {
		f.logger.Warn().Err(err).Msg("Failed to set user agent")
	}

	if _, err := page.EvalOnNewDocument(stealthPatch); err != nil {
		f.logger.Warn().Err(err).Msg("Failed to install stealth patch")
	}

	f.logger.Info().Bool("headless", f.browserCfg.Headless).Msg("Browser session opened")

	return &BrowserSession{
		checkerCfg: f.checkerCfg,
		logger:     f.logger,
		launcher:   l,
		browser:    browser,
		page:       page,
	}, nil
}

// BrowserSession owns one browser and one page for the duration of a batch
// run. The signup flow is stateful per page, so the session must not be
// shared across concurrent checks.
type BrowserSession struct {
	checkerCfg config.CheckerConfig
	logger     zerolog.Logger
	launcher   *launcher.Launcher
	browser    *rod.Browser
	page       *rod.Page
}

// Check classifies one address. Probe faults are logged with a truncated
// message and collapse to LabelError; they never propagate.
func (s *BrowserSession) Check(ctx context.Context, address string) models.Label {
	label, err := s.probe(ctx, address)
	if err != nil {
		s.logger.Error().
			Str("address", address).
			Str("error", truncateMessage(err, config.DefaultErrorMessageTruncateChars)).
			Msg("Probe failed")
		return models.LabelError
	}
	return label
}

// probe runs the fixed classification procedure against a fresh signup form.
func (s *BrowserSession) probe(ctx context.Context, address string) (models.Label, error) {
	page := s.page.Context(ctx)

	navPage := page.Timeout(s.checkerCfg.NavigationTimeout())
	waitIdle := navPage.WaitRequestIdle(requestIdleWindow, nil, nil, nil)
	if err := navPage.Navigate(s.checkerCfg.SignupURL); err != nil {
		return "", errorwrapper.WrapError(err, "navigation failed")
	}
	if err := navPage.WaitLoad(); err != nil {
		return "", errorwrapper.WrapError(err, "page load timed out")
	}
	waitIdle()
	// client-side scripts keep mutating the form shortly after network idle
	time.Sleep(s.checkerCfg.NavigationSettle())

	field, err := page.Timeout(s.checkerCfg.InputVisibleTimeout()).Element(emailInputSelector)
	if err != nil {
		return "", errorwrapper.WrapError(err, "email input not found")
	}
	if err := field.Timeout(s.checkerCfg.InputVisibleTimeout()).WaitVisible(); err != nil {
		return "", errorwrapper.WrapError(err, "email input not visible")
	}

	if err := s.typeAddress(field, address); err != nil {
		return "", err
	}
	time.Sleep(s.checkerCfg.TypeSettle())

	// Tab moves focus away and triggers the provider's async validation.
	if err := field.Type(input.Tab); err != nil {
		return "", errorwrapper.WrapError(err, "failed to blur email input")
	}
	time.Sleep(s.checkerCfg.BlurSettle())

	html, err := page.HTML()
	if err != nil {
		return "", errorwrapper.WrapError(err, "failed to read page content")
	}

	return classify.Page(classify.PageState{
		HTML:            html,
		PasswordVisible: s.passwordVisible(page),
	}), nil
}

// typeAddress clears the field and types the address character by character
// with a small delay, simulating human input.
func (s *BrowserSession) typeAddress(field *rod.Element, address string) error {
	if err := field.SelectAllText(); err != nil {
		return errorwrapper.WrapError(err, "failed to select field text")
	}
	if err := field.Type(input.Backspace); err != nil {
		return errorwrapper.WrapError(err, "failed to clear email input")
	}

	for _, r := range address {
		if err := field.Input(string(r)); err != nil {
			return errorwrapper.WrapError(err, "failed to type address")
		}
		time.Sleep(s.checkerCfg.TypeDelay())
	}
	return nil
}

// passwordVisible reports whether a password input is present and visible.
// Best effort: any query failure counts as not visible.
func (s *BrowserSession) passwordVisible(page *rod.Page) bool {
	has, el, err := page.Has(`input[type="password"]`)
	if err != nil || !has {
		return false
	}
	visible, err := el.Visible()
	return err == nil && visible
}

// Close tears the session down. Safe to call once after Open succeeds.
func (s *BrowserSession) Close() {
	if s.page != nil {
		_ = s.page.Close()
	}
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Cleanup()
	}
	s.logger.Debug().Msg("Browser session closed")
}

// truncateMessage bounds an error message for logging.
func truncateMessage(err error, limit int) string {
	msg := err.Error()
	if len(msg) > limit {
		return msg[:limit]
	}
	return msg
}
