package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestNewFanoutHandlerCollapses(t *testing.T) {
	if _, ok := newFanoutHandler(nil, nil).(NoopHandler); !ok {
		t.Error("expected NoopHandler for all nil handlers")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := newFanoutHandler(nil, inner, nil); h != inner {
		t.Error("expected single non-nil handler to be returned unwrapped")
	}
}

func TestFanoutHandlerRespectsLevels(t *testing.T) {
	var info, warn bytes.Buffer
	h := newFanoutHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled for both handlers")
	}

	logger := slog.New(h).With("key", "value").WithGroup("grp")
	logger.Info("info message", "field", 1)

	if !bytes.Contains(info.Bytes(), []byte(`"key":"value"`)) || !bytes.Contains(info.Bytes(), []byte(`"grp"`)) {
		t.Errorf("expected attrs and group in info output: %s", info.String())
	}
	if warn.Len() != 0 {
		t.Errorf("expected no output at warn handler: %s", warn.String())
	}
}

func TestTeeLoggerNilBase(t *testing.T) {
	var buf bytes.Buffer
	logger := TeeLogger(nil, slog.NewTextHandler(&buf, nil))
	logger.Info("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Fatalf("expected tee output, got %q", buf.String())
	}
}
