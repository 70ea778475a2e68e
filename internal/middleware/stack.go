package middleware

import "net/http"

// Stack composes multiple middleware functions into a single middleware.
//
// Middleware is applied in the order provided, meaning the first middleware
// is the outermost (runs first on request, last on response).
//
// Example:
//
//	stack := Stack(logging.Handler, security.Handler, metrics.Middleware)
//	srv.Handler = stack(mux)
//
// This is equivalent to:
//
//	srv.Handler = logging.Handler(security.Handler(metrics.Middleware(mux)))
func Stack(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
