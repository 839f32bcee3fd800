package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"teller/internal/config"
)

// Init configures the global logger. Logs go to stderr or the log file;
// stdout belongs to the customer display.
func Init(cfg config.LogConfig) error {
	level := zerolog.InfoLevel
	if v := strings.TrimSpace(cfg.Level); v != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return err
		}
		level = parsed
	}

	var output io.Writer = os.Stderr
	switch {
	case cfg.File != "":
		w, err := newCappedFileWriter(cfg.File, cfg.MaxMB)
		if err != nil {
			return err
		}
		output = w
	case cfg.Pretty:
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return nil
}
