package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options — parámetros de inicialización del logger.
type Options struct {
	Level  string // debug|info|warn|error
	Format string // text|json
	App    string // nombre de la app, se agrega como field en cada línea
}

// New construye un *logrus.Entry listo para inyectar en router/adapters.
// Devolvemos Entry (no Logger) para poder fijar fields base como "app".
func New(opts Options) *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	switch strings.ToLower(strings.TrimSpace(opts.Level)) {
	case "debug":
		l.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		l.SetLevel(logrus.WarnLevel)
	case "error":
		l.SetLevel(logrus.ErrorLevel)
	default:
		l.SetLevel(logrus.InfoLevel)
	}

	if strings.ToLower(strings.TrimSpace(opts.Format)) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	entry := logrus.NewEntry(l)
	if app := strings.TrimSpace(opts.App); app != "" {
		entry = entry.WithField("app", app)
	}
	return entry
}

// NewNop devuelve un logger que descarta todo. Útil en tests.
func NewNop() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return logrus.NewEntry(l)
}
