package server

// Server is a runnable emulator process.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down and
	// returns.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
