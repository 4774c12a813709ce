// Package logging pairs the operator console (stdout) with a structured
// zerolog logger (stderr).
//
// The console carries what the operator asked to see: verbose per-file
// progress and the final summary line. The structured log carries per-file
// failures and warnings, with the file path and failure kind as fields.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/ginjaninja78/XML-status-summary/internal/types"
)

// Logger handles console output and structured logging for one run.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	verbose bool
}

// New creates a logger writing progress to console and structured log lines to errOut.
func New(console, errOut io.Writer, level zerolog.Level, verbose bool) *Logger {
	cw := zerolog.ConsoleWriter{Out: errOut, NoColor: color.NoColor}
	return &Logger{
		zlog:    zerolog.New(cw).Level(level).With().Timestamp().Logger(),
		console: console,
		verbose: verbose,
	}
}

// ParseLevel maps a config log level to a zerolog level.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, errors.Newf("unknown log level %q", level)
	}
}

// WithRunID returns a copy of the logger that tags every structured line with runID.
func (l *Logger) WithRunID(runID string) *Logger {
	return &Logger{
		zlog:    l.zlog.With().Str("run_id", runID).Logger(),
		console: l.console,
		verbose: l.verbose,
	}
}

// Zerolog exposes the structured logger.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// Verbose reports whether per-file progress is printed.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Processing announces a file before it is read. Verbose only.
func (l *Logger) Processing(path string) {
	l.zlog.Debug().Str("file", path).Msg("processing file")
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.console, "%s %s\n", color.CyanString("Processing file:"), path)
}

// Extracted echoes the values extracted from a file. Verbose only.
func (l *Logger) Extracted(record types.Record) {
	l.zlog.Debug().
		Str("source", record.SourceName).
		Str("item_code", record.ItemCode).
		Str("status", record.Status).
		Msg("extracted")
	if !l.verbose {
		return
	}
	fmt.Fprintf(l.console, "  %s %s\n", color.New(color.Faint).Sprint("Item Code:"), record.ItemCode)
	fmt.Fprintf(l.console, "  %s %s\n", color.New(color.Faint).Sprint("Status:"), record.Status)
}

// FileFailed logs a per-file failure. Always shown, regardless of verbosity.
func (l *Logger) FileFailed(path string, err error) {
	l.zlog.Error().
		Str("file", path).
		Str("kind", types.Kind(err)).
		Err(err).
		Msgf("Error processing file %s", path)
}

// Warn logs a non-fatal problem that is not tied to a candidate file.
func (l *Logger) Warn(msg string, err error) {
	l.zlog.Warn().Err(err).Msg(msg)
}

// Summary prints the closing line of a run.
func (l *Logger) Summary(processed int, outputPath string) {
	fmt.Fprintf(l.console, "%s %d files. Results saved to %s\n",
		color.GreenString("Successfully processed"), processed, outputPath)
	l.zlog.Debug().Int("processed", processed).Str("output", outputPath).Msg("run complete")
}
