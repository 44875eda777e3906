package config

// BrowserConfig defines how the headless browser session is launched.
type BrowserConfig struct {
	ChromePath    string `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`
	UserDataDir   string `json:"user_data_dir,omitempty" yaml:"user_data_dir,omitempty"`
	Headless      bool   `json:"headless" yaml:"headless"`
	DisableImages bool   `json:"disable_images,omitempty" yaml:"disable_images,omitempty"`
	UserAgent     string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	WindowWidth   int    `json:"window_width,omitempty" yaml:"window_width,omitempty" validate:"omitempty,min=1"`
	WindowHeight  int    `json:"window_height,omitempty" yaml:"window_height,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultBrowserConfig creates a BrowserConfig with default values.
func NewDefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless:     DefaultBrowserHeadless,
		UserAgent:    DefaultBrowserUserAgent,
		WindowWidth:  DefaultBrowserWindowWidth,
		WindowHeight: DefaultBrowserWindowHeight,
	}
}
