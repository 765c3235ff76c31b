package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/games-api/internal/http/respond"
	"github.com/preston-bernstein/games-api/internal/logging"
	"github.com/preston-bernstein/games-api/internal/metrics"
)

// AccessTokenHeader names the header checked by RequireToken.
const AccessTokenHeader = "accessToken"

const msgInvalidToken = "Not a valid access token"

// RequireToken admits a request only when its access token header equals
// token exactly. An empty token denies every request.
func RequireToken(token string, baseLogger *slog.Logger, recorder *metrics.Recorder) func(http.Handler) http.Handler {
	want := []byte(token)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AccessTokenHeader)
			if len(want) > 0 && subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			logger := logging.FromContext(r.Context(), baseLogger)
			logging.Warn(logger, "access denied",
				logging.FieldPath, r.URL.Path,
				"token_present", got != "",
			)
			recorder.RecordGuardDenied(routePattern(r))
			respond.Error(w, http.StatusUnauthorized, msgInvalidToken, logger)
		})
	}
}
