package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// LinePrefix marks every non-JSON log line.
	LinePrefix = "🔮 "

	EnvLogLevel = "SPELLFORGE_LOG_LEVEL"
	EnvJSONLog  = "SPELLFORGE_JSON_LOG"
	EnvLogPath  = "SPELLFORGE_LOG_PATH"
)

// NewLogger creates a new hclog logger with standard settings.
// A level of the form "json:debug" switches to JSON output.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if rest, ok := strings.CutPrefix(level, "json"); ok {
		jsonFormat = true
		level = strings.TrimPrefix(rest, ":")
		if level == "" {
			level = "info"
		}
	}

	if !jsonFormat {
		output = NewPrefixWriter(LinePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ResolveLevel picks the log level from the CLI flag, then SPELLFORGE_LOG_LEVEL,
// then the config file, and reports where it came from.
func ResolveLevel(cliLevel, configLevel string) (level, source string) {
	switch {
	case cliLevel != "":
		return cliLevel, "CLI --log-level"
	case os.Getenv(EnvLogLevel) != "":
		return os.Getenv(EnvLogLevel), EnvLogLevel
	case configLevel != "":
		return configLevel, "config log_level"
	default:
		return "warn", "default"
	}
}

// Output returns the log destination: SPELLFORGE_LOG_PATH when set and
// writable, stderr otherwise. The returned close func releases the log file and
// is a no-op for stderr.
func Output() (io.Writer, func() error) {
	if path := os.Getenv(EnvLogPath); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return f, f.Close
		}
	}
	return os.Stderr, func() error { return nil }
}
