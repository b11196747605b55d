package server

// Server is the lifecycle contract the application runner drives. The account
// service currently ships a single HTTP implementation, but the runner only
// ever sees this interface.
type Server interface {
	// RunServer begins accepting requests and blocks for the lifetime of the
	// server.
	RunServer()

	// Shutdown drains in-flight requests and releases the listener.
	Shutdown()
}
