package logging

import (
	"context"
	"log/slog"

	"discparams/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for dump session identifiers.
	FieldSessionID = "session_id"
	// FieldTool is the standardized structured logging key for the dumping tool name.
	FieldTool = "tool"
	// FieldStage is the standardized structured logging key for session stage names.
	FieldStage = "stage"
	// FieldCommand is the key for a context's base command.
	FieldCommand = "command"
	// FieldDevice is the key for drive device paths and letters.
	FieldDevice = "device"
	// FieldPreset is the key for saved preset names.
	FieldPreset = "preset"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step to the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	FieldError  = "error"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.SessionIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSessionID, id))
	}
	if tool, ok := services.ToolFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldTool, tool))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldStage, stage))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
