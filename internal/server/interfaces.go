package server

// Server is the medi-vault backend process: it serves the REST API until a
// stop signal arrives.
type Server interface {
	// RunServer blocks until a stop signal has been handled or the listener
	// fails. A listener failure is returned wrapped in [ErrListenFailed].
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
