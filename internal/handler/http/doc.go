// Package http implements the HTTP transport of the OData emulator server.
//
// It exposes route wiring, request handlers, and middleware for the bookmark
// collection. Cross-cutting concerns such as token authentication, request
// tracing, access logging, response compression, and integrity checks are
// handled in this package before requests are delegated to the service layer.
package http
