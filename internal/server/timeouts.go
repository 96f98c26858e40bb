package server

import "time"

const (
	readTimeout = 10 * time.Second
	// WebSocket connections are hijacked before this applies; the hub sets
	// its own per-frame deadlines.
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
