// Package http implements the REST surface of the development API server.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as bearer authentication, role checks, request tracing,
// access logging, response compression, and body integrity checks are
// handled in this package before requests are delegated to the service
// layer. Response shapes follow what the check-in client's gateway decodes.
package http
