// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, CORS, New Relic tracing
// and panic recovery, and render every error in one JSON shape.
package middleware
