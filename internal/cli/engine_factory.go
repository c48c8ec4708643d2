package cli

import (
	"log/slog"

	"github.com/aretw0/quotesort"
	"github.com/aretw0/quotesort/internal/logging"
)

// Options holds the flags shared by every command.
type Options struct {
	Dir   string // Project directory containing public/quotes.json
	Debug bool
}

// createEngine initializes an engine with standard CLI conventions.
func createEngine(opts Options, extra ...quotesort.Option) *quotesort.Engine {
	logger := createLogger(opts.Debug)
	engineOpts := append([]quotesort.Option{quotesort.WithLogger(logger)}, extra...)
	return quotesort.New(opts.Dir, engineOpts...)
}

// createLogger configures the application logger.
// In debug mode, it writes to Stderr; otherwise the tool stays silent.
func createLogger(debug bool) *slog.Logger {
	return logging.ForDebug(debug)
}
