package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options controls how SetupLogger builds the logger.
type Options struct {
	// Verbosity is the -v count: 0 INFO, 1 DEBUG, 2+ TRACE.
	Verbosity int

	// LogFile, when set, receives a JSON copy of every log line.
	LogFile string

	// Console is where human readable logs go. Defaults to os.Stderr.
	Console io.Writer
}

// logFile is the sink opened by the last SetupLogger call, if any.
var logFile *os.File

// LevelForVerbosity maps the -v count to a zerolog level.
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger configures the global logger and returns it.
// Console output is pretty printed; the optional log file gets JSON lines.
func SetupLogger(opts Options) (zerolog.Logger, error) {
	zerolog.SetGlobalLevel(LevelForVerbosity(opts.Verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !colorEnabled(console),
	}

	writers := []io.Writer{consoleWriter}

	// A logger set up again replaces the previous file sink.
	_ = Close()

	var fileErr error
	if opts.LogFile != "" {
		f, err := setupLogFile(opts.LogFile)
		if err != nil {
			fileErr = err
		} else {
			logFile = f
			writers = append(writers, f)
		}
	}

	logger := zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()

	// Add caller information at trace level
	if opts.Verbosity >= 2 {
		logger = logger.With().Caller().Logger()
	}

	log.Logger = logger

	if fileErr != nil {
		logger.Warn().Err(fileErr).Str("path", opts.LogFile).Msg("Failed to open log file, logging to console only")
	}

	logger.Debug().
		Int("verbosity", opts.Verbosity).
		Str("logFile", opts.LogFile).
		Msg("Logger initialized")

	return logger, fileErr
}

// Close closes the log file opened by SetupLogger. It is safe to call when
// no file is open.
func Close() error {
	if logFile == nil {
		return nil
	}
	f := logFile
	logFile = nil
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

// colorEnabled reports whether w is a terminal whose environment allows color.
func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}
