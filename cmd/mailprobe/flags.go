package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	EntriesFile      string
	GlobalConfigFile string
	OutputDir        string
	BaseDelaySecs    float64
	LogLevel         string
	Visible          bool
}

func ParseFlags() AppFlags {
	entriesFile := flag.String("file", "", "Path to a text file containing candidate addresses, one per line (email or email:password).")
	entriesFileAlias := flag.String("f", "", "Alias for -file")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	outputDir := flag.String("out", "", "Directory for result files (overrides config file if set)")
	outputDirAlias := flag.String("o", "", "Alias for -out")

	baseDelay := flag.Float64("delay", 0, "Base delay in seconds between checks (overrides config file if set)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config file if set)")
	visible := flag.Bool("visible", false, "Run the browser with a visible window instead of headless")

	flag.Parse()

	flags := AppFlags{
		BaseDelaySecs: *baseDelay,
		LogLevel:      *logLevel,
		Visible:       *visible,
	}

	if *entriesFile != "" {
		flags.EntriesFile = *entriesFile
	} else if *entriesFileAlias != "" {
		flags.EntriesFile = *entriesFileAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *outputDir != "" {
		flags.OutputDir = *outputDir
	} else if *outputDirAlias != "" {
		flags.OutputDir = *outputDirAlias
	}

	if flags.EntriesFile == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] -file argument is required")
		os.Exit(1)
	}

	return flags
}
