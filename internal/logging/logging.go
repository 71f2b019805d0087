// Package logging configures the structured logger used by labctl and carries
// it through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

// Supported output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
)

// Options selects the handler and threshold for New.
type Options struct {
	Format string
	Level  slog.Leveler
}

// New returns a logger writing to w. The human format colors output only when
// w is a terminal. Every logger carries a fresh runId attribute so lines from
// one invocation can be grouped.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level := opts.Level
	if level == nil {
		level = slog.LevelWarn
	}

	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", FormatHuman:
		noColor := true
		if f, ok := w.(*os.File); ok {
			noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
			w = colorable.NewColorable(f)
		}
		handler = tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    noColor,
		})
	case FormatJSON:
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return nil, fmt.Errorf("unsupported log format: %q (want %s or %s)", opts.Format, FormatHuman, FormatJSON)
	}

	return slog.New(handler).With("runId", uuid.NewString()), nil
}

type contextKey struct{}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return slog.Default()
}

// Level is a pflag.Value accepting debug, info, warn and error.
type Level struct {
	slog.LevelVar
}

var _ pflag.Value = (*Level)(nil)

// NewLevel returns a Level set to def.
func NewLevel(def slog.Level) *Level {
	l := &Level{}
	l.LevelVar.Set(def)
	return l
}

func (l *Level) String() string {
	return strings.ToLower(l.Level().String())
}

// Set parses s case-insensitively.
func (l *Level) Set(s string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", s)
	}
	l.LevelVar.Set(lvl)
	return nil
}

func (l *Level) Type() string {
	return "level"
}
