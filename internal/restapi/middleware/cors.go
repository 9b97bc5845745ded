package middleware

import (
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/eurofurence/reg-ukrpay-service/internal/config"
	"github.com/eurofurence/reg-ukrpay-service/internal/restapi/common"
)

func createCorsHeadersHandler(next http.Handler, conf config.CorsConfig) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if conf.DisableCors {
			w.Header().Set(headers.AccessControlAllowOrigin, allowOrigin(conf))
			w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set(headers.AccessControlAllowHeaders, "content-type, "+apiKeyHeader+", "+RequestIDHeader)
			w.Header().Set(headers.AccessControlExposeHeaders, headers.Location+", "+RequestIDHeader+", "+common.PaymentUrlHeader)
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func allowOrigin(conf config.CorsConfig) string {
	if conf.AllowOrigin == "" {
		return "*"
	}
	return conf.AllowOrigin
}

// CorsHeadersMiddleware adds permissive CORS headers when cors checking is disabled,
// so the browser form can be served from another origin during development.
func CorsHeadersMiddleware(conf config.CorsConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(createCorsHeadersHandler(next, conf))
	}
}
