// Package http implements the HTTP transport layer of the transactions API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer-token authentication, request tracing, access
// logging and response compression are handled in this package before
// requests are delegated to the service layer. Errors from lower layers are
// turned into responses by one ordered table in errors_mapper.go.
package http
