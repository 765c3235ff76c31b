package logging

import "log/slog"

// Structured log keys shared by the request logger, store and catalog client.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldClientIP   = "client_ip"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldFile       = "file"
	FieldCount      = "count"
	FieldUpstream   = "upstream"
)

// WithCommon appends the service identity attributes that are set.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	for _, kv := range [...][2]string{{FieldService, service}, {FieldVersion, version}} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
