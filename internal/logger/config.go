package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Config describes how the process logs
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// LogLevel falls back to info for names it does not know
func (c Config) LogLevel() slog.Level {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(c.Level))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, formatJSON)
}

// newHandler builds the JSON or text handler for w, stamped with the
// service identity. Empty identity fields are left out.
func (c Config) newHandler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.LogLevel(), AddSource: c.AddSource}

	var h slog.Handler = slog.NewTextHandler(w, opts)
	if c.IsJSON() {
		h = slog.NewJSONHandler(w, opts)
	}

	var attrs []slog.Attr
	for key, val := range map[string]string{
		AttrKeyService:     c.ServiceName,
		AttrKeyVersion:     c.Version,
		AttrKeyEnvironment: c.Environment,
	} {
		if val != "" {
			attrs = append(attrs, slog.String(key, val))
		}
	}
	return h.WithAttrs(attrs)
}
