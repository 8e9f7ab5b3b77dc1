// Package logging builds the zerolog logger used by the CLI.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a human-readable logger writing to w at level. An empty level
// means info.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(trimmed))
		if err != nil {
			return zerolog.Nop(), err
		}
		lvl = parsed
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
