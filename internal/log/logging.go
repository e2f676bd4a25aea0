// Package log builds the configured slog.Logger.
//
// Console output goes to stderr so report dumps and YAML exports on
// stdout stay machine-readable. Colors are used only when stderr is a
// terminal. An optional log file receives the same records through a
// plain text handler.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// LevelTrace is a custom slog level below Debug for per-tick output.
const LevelTrace slog.Level = -8

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup builds the logger, installs it as the slog default, and
// returns a closer for the optional log file.
func Setup(logLevel, logFile string) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(logLevel)

	console := &consoleHandler{
		w:     os.Stderr,
		level: level,
		color: term.IsTerminal(int(os.Stderr.Fd())),
	}

	var (
		handler slog.Handler = console
		closer  io.Closer
	)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = f
		handler = multiHandler{hs: []slog.Handler{
			console,
			slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}),
		}}
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, closer, nil
}

// multiHandler fans out records to multiple handlers.
type multiHandler struct{ hs []slog.Handler }

func (m multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range m.hs {
		_ = h.Handle(ctx, r)
	}
	return nil
}

func (m multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithAttrs(attrs)
	}
	return multiHandler{hs: out}
}

func (m multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		out[i] = h.WithGroup(name)
	}
	return multiHandler{hs: out}
}

type consoleHandler struct {
	w     io.Writer
	level slog.Leveler
	color bool
	attrs []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func levelColor(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "\033[31m"
	case l >= slog.LevelWarn:
		return "\033[33m"
	case l >= slog.LevelInfo:
		return "\033[32m"
	case l >= slog.LevelDebug:
		return "\033[34m"
	default:
		return "\033[35m"
	}
}

func levelName(l slog.Level) string {
	if l == LevelTrace {
		return "TRACE"
	}
	return l.String()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder

	if h.color {
		buf.WriteString("\033[90m")
	}
	buf.WriteString(r.Time.Format("15:04:05.000"))
	if h.color {
		buf.WriteString("\033[0m")
	}
	buf.WriteByte(' ')

	if h.color {
		buf.WriteString(levelColor(r.Level))
	}
	fmt.Fprintf(&buf, "%5s", levelName(r.Level))
	if h.color {
		buf.WriteString("\033[0m")
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	writeAttr := func(a slog.Attr) {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteByte('=')
		buf.WriteString(a.Value.String())
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	buf.WriteByte('\n')
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := *h
	out.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &out
}

func (h *consoleHandler) WithGroup(string) slog.Handler {
	return h
}
