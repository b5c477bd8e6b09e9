package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// EnvLogFile overrides the log file location. "off" disables the file.
	EnvLogFile = "ROBE_LOG_FILE"

	logFileDisabled = "off"
	logDirName      = "robe"
	logFileName     = "robe.log"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// LevelFor maps the --verbose count to a log level: warnings by default,
// then info, debug and trace
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger points the global logger at stderr and, unless disabled, at
// the append-only log file. Calling it again replaces the previous setup.
func SetupLogger(verbosity int) {
	mu.Lock()
	defer mu.Unlock()

	zerolog.SetGlobalLevel(LevelFor(verbosity))

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}}

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	path := LogFilePath()
	var fileErr error
	if path != "" {
		logFile, fileErr = openLogFile(path)
		if fileErr == nil {
			writers = append(writers, logFile)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("log_file", path).Msg("Logger initialized")
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogFilePath returns where SetupLogger writes the log file, or "" when
// file logging is off. ROBE_LOG_FILE wins over $XDG_STATE_HOME/robe/robe.log.
func LogFilePath() string {
	if override := os.Getenv(EnvLogFile); override != "" {
		if strings.EqualFold(override, logFileDisabled) {
			return ""
		}
		return override
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return logFileName
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, logDirName, logFileName)
}

// openLogFile opens the log file for appending, creating private parent
// directories
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand logs a command execution with its arguments
func LogCommand(cmd string, args []string) {
	log.Debug().
		Str("command", cmd).
		Strs("args", args).
		Msg("Executing command")
}

// LogOperationStart logs the start of an operation and returns a function
// that logs its completion with the elapsed time
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
