// Package logging builds the hclog loggers used by the configure-tools binary.
package logging

import (
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel overrides the default log level.
	EnvLogLevel = "CONFIGURE_TOOLS_LOG_LEVEL"
	// EnvJSONLog switches to JSON log lines when set to "1".
	EnvJSONLog = "CONFIGURE_TOOLS_JSON_LOG"

	defaultLevel = "info"
	timeFormat   = "2006-01-02T15:04:05Z" // UTC ISO format
)

// NewLogger creates an hclog logger. A nil output logs to stdout.
// level may carry a "json:" prefix (e.g. "json:debug") to force JSON output.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stdout
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if rest, ok := strings.CutPrefix(level, "json"); ok {
		jsonFormat = true
		level = strings.TrimPrefix(rest, ":")
	}
	if level == "" {
		level = defaultLevel
	}

	if !jsonFormat {
		output = NewPrefixWriter(linePrefix(), output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: timeFormat,
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// GetLogLevel returns the level from the environment, or the default.
func GetLogLevel() string {
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return defaultLevel
}

// linePrefix is ASCII on Windows consoles.
func linePrefix() string {
	if runtime.GOOS == "windows" {
		return "[tools] "
	}
	return "🧰 "
}
