// Package api exposes the travel resources over HTTP. It parses paths, query
// strings and JSON bodies into domain values, calls the services and wraps
// results in list or resource envelopes with navigation links. Errors are
// mapped to a status code, a stable kind and a client-safe message.
package api
