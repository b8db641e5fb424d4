package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const sessionLogSuffix = ".log"

// SessionLog is a per-dump log file. Every record written through Handler
// carries the session ID.
type SessionLog struct {
	Path    string
	Handler slog.Handler
	file    *os.File
}

// OpenSessionLog creates dir/<tool>-<sessionID>.log and returns a handler
// writing to it in the given format. Close releases the file.
func OpenSessionLog(dir, tool, sessionID string, opts Options) (*SessionLog, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("session log: directory not configured")
	}
	name := sessionID + sessionLogSuffix
	if tool = strings.TrimSpace(tool); tool != "" {
		name = tool + "-" + name
	}
	path := filepath.Join(dir, name)
	file, err := openLogFile(path)
	if err != nil {
		return nil, err
	}
	handler, err := newHandler(file, opts)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &SessionLog{
		Path:    path,
		Handler: newSessionIDHandler(handler, sessionID),
		file:    file,
	}, nil
}

// Close flushes and closes the underlying file.
func (s *SessionLog) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// sessionIDHandler injects a session_id attribute into records that lack one.
// present is set once a WithAttrs call already carried the key.
type sessionIDHandler struct {
	base      slog.Handler
	sessionID string
	present   bool
}

func newSessionIDHandler(base slog.Handler, sessionID string) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	return &sessionIDHandler{base: base, sessionID: sessionID}
}

func (h *sessionIDHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *sessionIDHandler) Handle(ctx context.Context, record slog.Record) error {
	if _, ok := recordValue(record, FieldSessionID); !ok && !h.present {
		record = record.Clone()
		record.AddAttrs(slog.String(FieldSessionID, h.sessionID))
	}
	return h.base.Handle(ctx, record)
}

func (h *sessionIDHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionIDHandler{
		base:      h.base.WithAttrs(attrs),
		sessionID: h.sessionID,
		present:   h.present || HasAttrKey(attrs, FieldSessionID),
	}
}

func (h *sessionIDHandler) WithGroup(name string) slog.Handler {
	return &sessionIDHandler{base: h.base.WithGroup(name), sessionID: h.sessionID, present: h.present}
}

func recordValue(record slog.Record, key string) (slog.Value, bool) {
	var (
		value slog.Value
		found bool
	)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value = attr.Value
			found = true
			return false
		}
		return true
	})
	return value, found
}
