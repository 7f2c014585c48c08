package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// TranscriptPath, when set, appends every entry to a line-oriented,
	// timestamped log file in addition to Writer. The transcript is an
	// operator-facing side channel; it carries no meaning to the caller.
	TranscriptPath string
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base       zerolog.Logger
	transcript *os.File
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	var transcript *os.File
	if opts.TranscriptPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.TranscriptPath), 0o755); err != nil {
			return nil, fmt.Errorf("create transcript directory: %w", err)
		}
		file, err := os.OpenFile(opts.TranscriptPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open transcript: %w", err)
		}
		transcript = file

		lines := zerolog.ConsoleWriter{Out: file, NoColor: true, TimeFormat: time.RFC3339}
		output = zerolog.MultiLevelWriter(output, lines)
	}

	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &Logger{base: logger, transcript: transcript}, nil
}

// TranscriptPath returns the conventional transcript location for a package
// inside dir. The identifier is sanitized so it is always a single file name.
func TranscriptPath(dir, packageID string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, packageID)
	if name == "" {
		name = "detection"
	}
	return filepath.Join(dir, name+".log")
}

// Close releases the transcript file, if one was opened.
func (l *Logger) Close() error {
	if l == nil || l.transcript == nil {
		return nil
	}
	return l.transcript.Close()
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}

	derived := Logger{base: builder.Logger(), transcript: l.transcript}
	return &derived
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
