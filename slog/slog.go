// Package slog registers logging options on an argparse.List and configures
// log/slog from them.
package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/isobit/argparse"
)

// Options adds --log-level <LEVEL> and --log-json to a List. LogLevel
// accepts anything slog.Level.UnmarshalText does, e.g. "debug" or "warn+2".
type Options struct {
	LogLevel slog.Level
	LogJSON  bool `args:"name=log-json"`
}

// Register adds the options to l. Read them only after l.Release.
func (opts *Options) Register(l *argparse.List) error {
	return l.RegisterStruct(opts)
}

func (opts *Options) ConfigureWithHandlerOptions(w io.Writer, handlerOpts *slog.HandlerOptions) {
	var ho slog.HandlerOptions
	if handlerOpts != nil {
		ho = *handlerOpts
	}
	ho.Level = opts.LogLevel

	var handler slog.Handler
	if opts.LogJSON {
		handler = slog.NewJSONHandler(w, &ho)
	} else {
		handler = slog.NewTextHandler(w, &ho)
	}
	slog.SetDefault(slog.New(handler))
}

// Configure installs the default logger, writing to stderr.
func (opts *Options) Configure() {
	opts.ConfigureWithHandlerOptions(os.Stderr, nil)
}
