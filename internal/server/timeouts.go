package server

import "time"

const (
	readTimeout = 10 * time.Second
	// writeTimeout covers a request that triggers a sheet refresh at the default fetch timeout.
	writeTimeout = 45 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
