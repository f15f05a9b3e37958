// Package logging provides the leveled logger used by every other package:
// timestamped lines, colored level tags, errors routed to stderr, and an
// optional append-to-file sink that always receives plain text.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/backmassage/dupsweep/internal/config"
	"github.com/backmassage/dupsweep/internal/term"
)

// Level tag colors. The color package renders these as plain text when
// term.Configure disabled colors.
var (
	infoTag    = color.New(color.FgHiBlue, color.Bold)
	successTag = color.New(color.FgHiGreen, color.Bold)
	warnTag    = color.New(color.FgHiYellow, color.Bold)
	errorTag   = color.New(color.FgHiRed, color.Bold)
	debugTag   = color.New(color.FgHiCyan, color.Bold)
)

// Logger provides leveled, optionally colored logging with an optional file sink.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
	file    *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{
		out:     os.Stdout,
		errOut:  os.Stderr,
		verbose: cfg.Verbose,
	}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// New returns a logger writing to the given streams with no file sink.
// Used by tests; NewLogger is the production constructor.
func New(out, errOut io.Writer) *Logger {
	return &Logger{out: out, errOut: errOut}
}

// Discard returns a logger that swallows all output.
func Discard() *Logger {
	return New(io.Discard, io.Discard)
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, tag *color.Color, toErr bool, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()

	out := l.out
	if toErr {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+tag.Sprint("["+level+"]")+" "+text+"\n")

	// The file sink always gets plain text, regardless of color mode.
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" ["+level+"] "+text+"\n")
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", infoTag, false, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", successTag, false, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", warnTag, false, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", errorTag, true, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose; no-op otherwise.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", debugTag, false, fmt.Sprintf(format, args...))
}
