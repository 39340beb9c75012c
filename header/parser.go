package header

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
	"github.com/ghettovoice/httphdr/internal/log"
)

// ParserOptions are options for [NewParser].
type ParserOptions struct {
	// Log is a logger used to log vocabulary fallbacks and parse failures.
	// If nil, a noop logger is used.
	Log *slog.Logger
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Noop
	}
	return o.Log
}

// Parser parses header fields like [ParseValue] and [Parse], logging what it does.
//
// Values outside the built-in vocabulary are logged at debug level,
// parse failures at warning level. Parser is safe for concurrent use.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a new parser with the given options.
// Options are optional, nil is allowed.
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{log: opts.log()}
}

var defParser = sync.OnceValue(func() *Parser { return NewParser(nil) })

// DefaultParser returns the parser created with default options.
func DefaultParser() *Parser { return defParser() }

// ParseValue parses the value of the named header, see [ParseValue].
func (p *Parser) ParseValue(name, value string) (Header, error) {
	hdr, err := ParseValue(name, value)
	if err != nil {
		p.log.LogAttrs(context.Background(), slog.LevelWarn, "failed to parse header",
			slog.String("name", name),
			slog.String("value", value),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	p.logFallback(hdr)
	return hdr, nil
}

// Parse parses a header field line, see [Parse].
func (p *Parser) Parse(line string) (Header, error) {
	hdr, err := Parse(line)
	if err != nil {
		p.log.LogAttrs(context.Background(), slog.LevelWarn, "failed to parse header line",
			slog.Any("line", log.StringValue(line)),
			slog.Any("error", err),
		)
		return nil, errtrace.Wrap(err)
	}
	p.logFallback(hdr)
	return hdr, nil
}

// ParseBlock parses a sequence of header field lines.
// Empty lines are skipped. Lines that fail to parse are left out of the result,
// their errors are joined and returned along with the headers that were parsed.
func (p *Parser) ParseBlock(lines []string) (Headers, error) {
	hs := make(Headers, 0, len(lines))
	var errs []error
	for i, line := range lines {
		if line == "" || line == "\r\n" || line == "\n" {
			continue
		}
		hdr, err := p.Parse(line)
		if err != nil {
			errs = append(errs, errorutil.JoinPrefix("line "+strconv.Itoa(i+1)+":", err))
			continue
		}
		hs.Append(hdr)
	}
	return hs, errtrace.Wrap(errorutil.JoinPrefix("parse header block:", errs...))
}

func (p *Parser) logFallback(hdr Header) {
	ctx := context.Background()
	if !p.log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	switch h := hdr.(type) {
	case Any:
		p.log.LogAttrs(ctx, slog.LevelDebug, "parsed extension header", slog.Any("header", h))
	case ContentEncoding:
		if !h.Encoding().IsKnown() {
			p.log.LogAttrs(ctx, slog.LevelDebug, "unknown content coding", slog.Any("header", h))
		}
	case ContentType:
		mt := h.MediaType()
		if mt.Type.IsExt() || mt.Subtype.IsExt() || mt.Suffix.IsExt() {
			p.log.LogAttrs(ctx, slog.LevelDebug, "unclassified media type",
				slog.Any("header", h),
				slog.String("media_type", mt.String()),
			)
		}
	}
}
