// Package log provides the JSON-lines structured logger for the hw CLI.
// Logs go to a file under ~/.hw/logs so command output stays clean for
// humans and pipes.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runger/hwcli/internal/config"
)

// Config configures the structured logger.
type Config struct {
	// Output overrides the log destination (default: ~/.hw/logs/hw.log).
	Output io.Writer

	// Level is the minimum log level name: debug, info, warn, error.
	Level string
}

// New creates a JSON-lines logger and installs it as the slog default.
// Entries look like:
//
//	{"ts":"2024-01-15T10:30:00Z","level":"INFO","msg":"resolved part","value":"100nF"}
func New(cfg Config) (*slog.Logger, error) {
	output := cfg.Output
	if output == nil {
		dir, err := config.LogDir()
		if err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(filepath.Join(dir, "hw.log"),
			os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		output = f
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			return a
		},
	}
	logger := slog.New(slog.NewJSONHandler(output, opts))
	slog.SetDefault(logger)
	return logger, nil
}

func parseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
