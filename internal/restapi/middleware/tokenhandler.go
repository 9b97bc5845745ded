package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/eurofurence/reg-ukrpay-service/internal/logging"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/common"
)

const apiKeyHeader = "X-Api-Key"

func tokenHandlerMiddleware(token string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		headerToken := r.Header.Get(apiKeyHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(headerToken)) != 1 {
			logger := logging.LoggerFromContext(ctx)
			logger.Warn("invalid api token provided")
			common.SendUnauthorizedResponse(w, common.GetRequestID(ctx), logger, "")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TokenHandlerMiddleware requires the fixed api token in the X-Api-Key header.
// An empty token switches the check off.
func TokenHandlerMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return tokenHandlerMiddleware(token, next)
	}
}
