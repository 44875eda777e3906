package config

const (
	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Browser Defaults
	DefaultBrowserUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultBrowserWindowWidth  = 1280
	DefaultBrowserWindowHeight = 900
	DefaultBrowserHeadless     = true

	// Checker Defaults
	DefaultSignupURL                 = "https://github.com/signup"
	DefaultNavigationTimeoutSecs     = 30
	DefaultNavigationSettleMs        = 2000
	DefaultInputVisibleTimeoutSecs   = 10
	DefaultTypeDelayMs               = 50
	DefaultTypeSettleMs              = 1000
	DefaultBlurSettleMs              = 3000
	DefaultBaseDelaySecs             = 2.0
	DefaultErrorMessageTruncateChars = 100

	// Reporter Defaults
	DefaultReporterOutputDir = "results"

	// Bot Defaults
	DefaultBotCommandsPerMinute   = 10
	DefaultBotBurstLimit          = 3
	DefaultBotProgressEditMs      = 1500
	DefaultBotMaxVisibleResults   = 15
	DefaultBotMaxAttachmentSizeMB = 5
)
