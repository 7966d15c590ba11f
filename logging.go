package kverrors

import "log/slog"

// logValue renders e as a structured log group:
// kind, family, message, then each payload field.
//
// Payload that ToStatus drops from the wire, such as the revisions of
// TokenOldRevision, is kept here.
func logValue(e ExecuteError) slog.Value {
	fields := e.Fields()
	attrs := make([]slog.Attr, 0, len(fields)+3)
	attrs = append(attrs,
		slog.String("kind", string(e.Kind())),
		slog.String("family", string(e.Kind().Family())),
		slog.String("message", e.Error()),
	)
	for _, f := range fields {
		attrs = append(attrs, slog.Any(f.Name, f.Value))
	}
	return slog.GroupValue(attrs...)
}
