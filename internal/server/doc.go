// Package server runs the dev server's HTTP listener.
//
// It covers startup, signal handling and graceful shutdown with a bounded
// drain of in-flight requests.
package server
