// SPDX-License-Identifier: Apache-2.0

package mrkle

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
)

// tHandler routes slog records through t.Log so narration from a
// golden-vector run appears inline with `go test -v` output instead of
// on stdout.
type tHandler struct {
	t     *testing.T
	attrs []slog.Attr
}

func newTestLogger(t *testing.T) *slog.Logger {
	return slog.New(&tHandler{t: t})
}

func (h *tHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *tHandler) Handle(_ context.Context, r slog.Record) error {
	line := fmt.Sprintf("[%s] %s", r.Level, r.Message)
	for _, a := range h.attrs {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		line += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})
	h.t.Log(line)
	return nil
}

func (h *tHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tHandler{t: h.t, attrs: append(append([]slog.Attr{}, h.attrs...), attrs...)}
}

func (h *tHandler) WithGroup(string) slog.Handler { return h }
