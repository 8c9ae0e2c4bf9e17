package middleware

import "net/http"

// Chain wraps h so the given middleware run in the order listed: the first
// middleware sees the request first. Composition happens once at startup, in
// routes.SetupRoutes.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
