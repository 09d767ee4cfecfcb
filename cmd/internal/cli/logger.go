package cli

import (
	"fmt"
	"io"
	"log/slog"
)

// NewLogger builds the slog logger selected by the configuration.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	options := &slog.HandlerOptions{Level: level}

	switch cfg.LogFormat {
	case LogFormatText:
		return slog.New(slog.NewTextHandler(w, options)), nil
	case LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, options)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
	}
}
