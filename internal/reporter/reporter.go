// Package reporter builds the categorized result files returned to the user.
package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aleister1102/mailprobe/internal/common/errorwrapper"
	"github.com/aleister1102/mailprobe/internal/config"
	"github.com/aleister1102/mailprobe/internal/models"
)

const fileTimestampLayout = "20060102_150405"
const headerDateLayout = "2006-01-02 15:04:05"

// ResultFile is one categorized output file, built in memory so it can be
// either written to disk (CLI) or uploaded directly (bot).
type ResultFile struct {
	Name    string
	Caption string
	Content []byte
}

// BuildFiles renders the non-empty buckets of a result set into up to three
// files: registered, available, and a combined invalid/error file. Raw input
// lines are echoed unchanged.
func BuildFiles(rs *models.ResultSet, now time.Time) []ResultFile {
	ts := now.Format(fileTimestampLayout)
	var files []ResultFile

	if lines := rs.Lines(models.LabelRegistered); len(lines) > 0 {
		content := formatSection("Addresses already registered with the provider", lines, now) + strings.Join(lines, "\n")
		files = append(files, ResultFile{
			Name:    fmt.Sprintf("registered_%s.txt", ts),
			Caption: fmt.Sprintf("Already registered (%d)", len(lines)),
			Content: []byte(content),
		})
	}

	if lines := rs.Lines(models.LabelAvailable); len(lines) > 0 {
		content := formatSection("Addresses not yet registered", lines, now) + strings.Join(lines, "\n")
		files = append(files, ResultFile{
			Name:    fmt.Sprintf("available_%s.txt", ts),
			Caption: fmt.Sprintf("Not registered (%d)", len(lines)),
			Content: []byte(content),
		})
	}

	invalid := rs.Lines(models.LabelInvalid)
	failed := rs.Lines(models.LabelError)
	if len(invalid) > 0 || len(failed) > 0 {
		var sb strings.Builder
		if len(invalid) > 0 {
			sb.WriteString("# Addresses with invalid format\n")
			sb.WriteString(strings.Join(invalid, "\n"))
			sb.WriteString("\n\n")
		}
		if len(failed) > 0 {
			sb.WriteString("# Addresses that could not be checked\n")
			sb.WriteString(strings.Join(failed, "\n"))
		}
		files = append(files, ResultFile{
			Name:    fmt.Sprintf("errors_%s.txt", ts),
			Caption: fmt.Sprintf("Invalid or failed (%d)", len(invalid)+len(failed)),
			Content: []byte(sb.String()),
		})
	}

	return files
}

func formatSection(title string, lines []string, now time.Time) string {
	return fmt.Sprintf("# %s\n# Total: %d\n# Date: %s\n\n", title, len(lines), now.Format(headerDateLayout))
}

// Reporter writes result files to the configured output directory.
type Reporter struct {
	outputDir string
	logger    zerolog.Logger
}

// New creates a new Reporter.
func New(cfg config.ReporterConfig, logger zerolog.Logger) *Reporter {
	return &Reporter{
		outputDir: cfg.OutputDir,
		logger:    logger.With().Str("component", "Reporter").Logger(),
	}
}

// Write persists the files and returns their paths.
func (r *Reporter) Write(files []ResultFile) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create output directory")
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		path := filepath.Join(r.outputDir, file.Name)
		if err := os.WriteFile(path, file.Content, 0644); err != nil {
			return paths, errorwrapper.WrapError(err, "failed to write result file")
		}
		r.logger.Info().Str("path", path).Msg("Result file written")
		paths = append(paths, path)
	}

	return paths, nil
}
