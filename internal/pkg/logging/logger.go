package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact
}

// CompactFormatter renders entries as [LEVEL][component][network] message (k=v, ...)
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	if f.ShowTime {
		b.WriteString(fmt.Sprintf("[%s]", entry.Time.Format("15:04:05")))
	}

	b.WriteString(fmt.Sprintf("[%s]", strings.ToUpper(entry.Level.String())))

	if component, ok := entry.Data["component"]; ok {
		b.WriteString(fmt.Sprintf("[%s]", component))
	}
	if network, ok := entry.Data["network"]; ok {
		b.WriteString(fmt.Sprintf("[%s]", network))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" && k != "network" {
			keys = append(keys, k)
		}
	}

	if len(keys) > 0 {
		// Sort fields for consistent output
		sort.Strings(keys)

		b.WriteString(" (")
		for i, key := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(fmt.Sprintf("%s=%v", key, entry.Data[key]))
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration.
// Output goes to stderr so command results on stdout stay machine readable.
func InitLogger(config LogConfig) {
	initLogger(config, os.Stderr)
}

func initLogger(config LogConfig, out io.Writer) {
	Logger = logrus.New()
	Logger.SetOutput(out)

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		// Default to warn if invalid level
		level = logrus.WarnLevel
		if config.Level != "" {
			Logger.Warnf("Invalid log level '%s', defaulting to 'warn'", config.Level)
		}
	}
	Logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple":
		Logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		Logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	Logger.Debugf("Logger initialized with level: %s, format: %s", level.String(), config.Format)
}

func init() {
	// Client code logs from concurrent goroutines, so a usable logger exists before
	// anyone calls InitLogger.
	InitLogger(LogConfig{
		Level:  "warn",
		Format: "text",
	})
}

// GetLogger returns the global logger instance
func GetLogger() *logrus.Logger {
	return Logger
}

// Helper functions for common logging patterns
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithNetwork(network string) *logrus.Entry {
	return GetLogger().WithField("network", network)
}

func WithComponentAndNetwork(component, network string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"network":   network,
	})
}

func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}
