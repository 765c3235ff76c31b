package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/preston-bernstein/games-api/internal/http/respond"
	"github.com/preston-bernstein/games-api/internal/logging"
)

// DefaultBodyLimit caps decoded request bodies.
const DefaultBodyLimit int64 = 100 << 10

const (
	msgInvalidBody  = "invalid JSON body"
	msgBodyTooLarge = "request body too large"
)

type bodyKey struct{}

// BodyFromContext returns the record decoded by BodyDecoder, or nil when the
// request carried no JSON body.
func BodyFromContext(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	body, _ := ctx.Value(bodyKey{}).(map[string]any)
	return body
}

// BodyDecoder parses JSON request bodies into a record stored on the context.
// Requests without a JSON content type pass through untouched. A JSON value
// that is not an object yields an empty record.
func BodyDecoder(limit int64) func(http.Handler) http.Handler {
	if limit <= 0 {
		limit = DefaultBodyLimit
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !isJSON(r.Header.Get("Content-Type")) {
				next.ServeHTTP(w, r)
				return
			}
			logger := logging.FromContext(r.Context(), nil)

			data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					logging.Warn(logger, "request body rejected", "limit", limit)
					respond.Error(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge, logger)
					return
				}
				logging.Warn(logger, "request body unreadable", "error", err)
				respond.Error(w, http.StatusBadRequest, msgInvalidBody, logger)
				return
			}

			record, err := decodeRecord(data)
			if err != nil {
				logging.Warn(logger, "request body malformed", "error", err)
				respond.Error(w, http.StatusBadRequest, msgInvalidBody, logger)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(data))
			ctx := context.WithValue(r.Context(), bodyKey{}, record)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func decodeRecord(data []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	record, ok := v.(map[string]any)
	if !ok || record == nil {
		return map[string]any{}, nil
	}
	return record, nil
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
