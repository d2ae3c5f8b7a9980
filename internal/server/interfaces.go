package server

// Server is the lifecycle of the profile server process: the HTTP API and
// the optional gRPC health endpoint.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
