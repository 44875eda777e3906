package config

// ReporterConfig defines where categorized result files are written.
type ReporterConfig struct {
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// NewDefaultReporterConfig creates a ReporterConfig with default values.
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir: DefaultReporterOutputDir,
	}
}
