// Package parser converts raw user-supplied text into candidate entries.
package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/aleister1102/mailprobe/internal/common/errorwrapper"
	"github.com/aleister1102/mailprobe/internal/models"
)

// Parse splits raw text into entries, one candidate per line.
// Blank lines and lines starting with '#' are skipped. When a line contains
// ':', everything before the first ':' is the candidate address and the full
// line is kept as the record. A candidate qualifies only if it contains '@';
// no further validation and no deduplication is done. Output order matches
// input order.
func Parse(text string) []models.Entry {
	var entries []models.Entry

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		address := line
		if idx := strings.Index(line, ":"); idx >= 0 {
			address = strings.TrimSpace(line[:idx])
		}

		if !strings.Contains(address, "@") {
			continue
		}

		entries = append(entries, models.Entry{Address: address, RawLine: line})
	}

	return entries
}

// ParseReader applies the same rules to a stream, e.g. a downloaded
// attachment body.
func ParseReader(r io.Reader) ([]models.Entry, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read entry input")
	}
	return Parse(string(data)), nil
}
