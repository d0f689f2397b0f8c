package config

import (
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// Config holds all runtime configuration.
type Config struct {
	Start string // initial working directory for the session

	JSON    bool
	NoColor bool
	Color   bool

	HistoryFile string

	// Default timeout for the wait command (overridable per call with -t).
	WaitTimeout time.Duration

	// Remaining args after flag parsing (single-command mode)
	Args []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	histFile := home + "/.pathkit_history"
	if env := os.Getenv("PATHKIT_HISTORY"); env != "" {
		histFile = env
	}

	return &Config{
		HistoryFile: histFile,
		WaitTimeout: 5 * time.Second,
	}
}

// RegisterFlags registers CLI flags on the given flag set.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVarP(&c.Start, "start", "C", c.Start, "Initial working directory (default: process cwd)")

	fs.BoolVar(&c.JSON, "json", false, "JSON output mode")
	fs.BoolVar(&c.NoColor, "no-color", false, "Disable colors")
	fs.BoolVar(&c.Color, "color", false, "Force colors")

	fs.DurationVar(&c.WaitTimeout, "wait-timeout", c.WaitTimeout, "Default timeout for the wait command")
}

// ShouldColor returns true if color output should be enabled.
func (c *Config) ShouldColor() bool {
	if c.NoColor {
		return false
	}
	if c.Color {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}
