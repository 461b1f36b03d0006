// Package logging configures the global logrus logger and provides request
// scoped log entries.
package logging

import (
	"context"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mrlokans/businesscards/internal/audit"
)

// Setup configures the global logrus logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	SetupWithOutput(level, format, os.Stdout)
}

// SetupWithOutput is Setup with an explicit destination.
func SetupWithOutput(level, format string, out io.Writer) {
	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))

	if strings.ToLower(format) == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}

// ParseLevel converts a string log level to a logrus level.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// FromContext returns a log entry carrying the request id of ctx, if any.
func FromContext(ctx context.Context) *log.Entry {
	entry := log.NewEntry(log.StandardLogger())
	if id, ok := audit.LookupRequestID(ctx); ok {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
