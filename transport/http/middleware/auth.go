package middleware

import (
	"bloom/config"
	"bloom/infras/otel"
	"bloom/shared/constant"
	"bloom/shared/failure"
	"bloom/transport/http/response"
	"crypto/subtle"
	"net/http"
)

// Auth guards the operator routes.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey requires X-API-Key to equal APP_API_KEY. With no key configured
// every request is refused.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		expected := m.cfg.App.APIKey

		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			err := failure.ForbiddenError

			scope.SetAttribute("http.source", "client")
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("http.source", "internal")
		scope.End()

		next.ServeHTTP(writer, request)
	})
}
