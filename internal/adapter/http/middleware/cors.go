package middleware

import (
	"net/http"

	"github.com/jub0bs/fcors"
	"github.com/labstack/echo/v4"
)

// AnyOrigin allows every origin when listed in CORS origins.
const AnyOrigin = "*"

// CORS returns middleware that lets the browser front end call the API
// from the given origins. An empty list or "*" allows any origin.
func CORS(origins []string) (echo.MiddlewareFunc, error) {
	var originOpt fcors.OptionAnon = fcors.FromAnyOrigin()
	if len(origins) > 0 && !contains(origins, AnyOrigin) {
		originOpt = fcors.FromOrigins(origins[0], origins[1:]...)
	}

	cors, err := fcors.AllowAccess(
		originOpt,
		fcors.WithMethods(
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
		),
		fcors.WithRequestHeaders(echo.HeaderContentType, RequestIDHeader),
	)
	if err != nil {
		return nil, err
	}
	return echo.WrapMiddleware(cors), nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
