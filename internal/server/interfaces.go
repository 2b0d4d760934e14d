package server

// Server is the dev server lifecycle.
type Server interface {
	// RunServer serves the event API until SIGINT, SIGTERM or SIGQUIT and
	// then shuts down.
	RunServer()

	// Shutdown drains in-flight requests within the shutdown timeout.
	Shutdown()
}
