package log

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the declarative form of a Logger, suitable for embedding in a
// larger on-disk configuration file.
type Config struct {
	Level            string   `json:"level" yaml:"level"`
	Format           string   `json:"format" yaml:"format"`
	Outputs          []string `json:"outputs" yaml:"outputs"`
	FilePath         string   `json:"file_path" yaml:"file_path"`
	Redact           []string `json:"redact" yaml:"redact"`
	SampleInitial    int      `json:"sample_initial" yaml:"sample_initial"`
	SampleThereafter int      `json:"sample_thereafter" yaml:"sample_thereafter"`
}

// ParseLevel maps a case-insensitive level name to a Level, defaulting to
// InfoLevel for anything unrecognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

// ApplyConfig builds a Logger from a declarative Config.
func ApplyConfig(cfg Config) (Logger, error) {
	var formatter Formatter
	switch strings.ToLower(cfg.Format) {
	case "text":
		formatter = &TextFormatter{}
	case "", "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}

	opts := []LoggerOption{
		WithLevel(ParseLevel(cfg.Level)),
		WithFormatter(formatter),
	}

	outputs := cfg.Outputs
	if len(outputs) == 0 {
		outputs = []string{"console"}
	}
	for _, name := range outputs {
		switch strings.ToLower(name) {
		case "console":
			opts = append(opts, WithOutput(NewConsoleOutput()))
		case "file":
			if cfg.FilePath == "" {
				return nil, fmt.Errorf("log: file output requires file_path")
			}
			fo, err := NewFileOutput(cfg.FilePath)
			if err != nil {
				return nil, fmt.Errorf("log: open file output: %w", err)
			}
			opts = append(opts, WithOutput(fo))
		case "null":
			opts = append(opts, WithOutput(NullOutput{}))
		default:
			return nil, fmt.Errorf("log: unknown output %q", name)
		}
	}

	logger := NewLogger(opts...)
	base, ok := logger.(*BaseLogger)
	if !ok {
		return logger, nil
	}

	if len(cfg.Redact) > 0 || cfg.SampleThereafter > 0 {
		h, ok := base.slogLogger.Handler().(*bridgeHandler)
		if ok {
			if len(cfg.Redact) > 0 {
				h = h.withRedactions(cfg.Redact)
			}
			if cfg.SampleThereafter > 0 {
				h = h.withSampler(cfg.SampleInitial, cfg.SampleThereafter)
			}
			base.slogLogger = slog.New(h)
		}
	}

	return base, nil
}
