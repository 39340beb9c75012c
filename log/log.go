// Package log provides ready-made loggers for the httphdr components,
// such as [github.com/ghettovoice/httphdr/header.ParserOptions].
//
// Header values passed as log attributes are rendered as a group
// of the header Go type and the "Name: value" field.
package log

import (
	"io"
	"log/slog"

	ilog "github.com/ghettovoice/httphdr/internal/log"
)

// Options are options of [NewConsole] and [NewDev].
// Options are optional, nil is allowed.
type Options = ilog.Options

// Default returns the console logger writing to the standard output at debug level.
func Default() *slog.Logger { return ilog.Def }

// Dev returns the developer logger writing to the standard output at debug level.
func Dev() *slog.Logger { return ilog.Dev }

// Noop returns a logger that discards all records.
func Noop() *slog.Logger { return ilog.Noop }

// NewConsole returns a logger writing human-readable lines to w
// (github.com/phsym/console-slog).
func NewConsole(w io.Writer, opts *Options) *slog.Logger { return ilog.NewConsole(w, opts) }

// NewDev returns a logger writing verbose developer output to w
// (github.com/golang-cz/devslog).
func NewDev(w io.Writer, opts *Options) *slog.Logger { return ilog.NewDev(w, opts) }

// New returns a logger that writes to h with header values formatted as fields.
func New(h slog.Handler) *slog.Logger { return ilog.New(h) }
