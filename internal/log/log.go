// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/httphdr/internal/constraints"
	"github.com/ghettovoice/httphdr/internal/types"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(r types.Renderer) slog.Value {
		return slog.GroupValue(
			slog.String("type", fmt.Sprintf("%T", r)),
			slog.String("field", r.Render(nil)),
		)
	}),
)

// Options are options of the console and developer handlers.
type Options struct {
	// Level is the minimum level of records. If nil, [slog.LevelDebug] is used.
	Level slog.Leveler
	// NoColor disables ANSI colors.
	NoColor bool
}

func (o *Options) level() slog.Leveler {
	if o == nil || o.Level == nil {
		return slog.LevelDebug
	}
	return o.Level
}

func (o *Options) noColor() bool { return o != nil && o.NoColor }

// NewConsole returns a logger writing human-readable lines to w.
func NewConsole(w io.Writer, opts *Options) *slog.Logger {
	return slog.New(newHandler(
		console.NewHandler(w, &console.HandlerOptions{
			AddSource:  true,
			Level:      opts.level(),
			NoColor:    opts.noColor(),
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// NewDev returns a logger writing verbose developer output to w.
func NewDev(w io.Writer, opts *Options) *slog.Logger {
	return slog.New(newHandler(
		devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: true,
				Level:     opts.level(),
			},
			NoColor:    opts.noColor(),
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		}),
	))
}

// Def is a default logger.
var Def = NewConsole(os.Stdout, nil)

// Dev is a developer logger.
var Dev = NewDev(os.Stdout, nil)

// New returns a logger that writes to the given handler with header values formatted as fields.
func New(h slog.Handler) *slog.Logger { return slog.New(newHandler(h)) }

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
