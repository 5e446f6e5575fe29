package types

import (
	"io"
	"log/slog"
	"os"
)

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands
type AppContext struct {
	Version string
	Logger  *slog.Logger

	// LogToFile is set when --log-file is used; the form keeps logging
	// enabled then because it no longer fights the alt screen for the terminal
	LogToFile bool

	// Stdout receives user-facing output; nil means os.Stdout
	Stdout io.Writer
}

// GetVersion returns the application version, tolerating a nil context
func (c *AppContext) GetVersion() string {
	if c == nil || c.Version == "" {
		return DefaultVersion
	}
	return c.Version
}

// GetLogger returns the configured logger or slog.Default
func (c *AppContext) GetLogger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Out returns where commands print their results
func (c *AppContext) Out() io.Writer {
	if c == nil || c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}
