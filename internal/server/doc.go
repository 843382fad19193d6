// Package server runs the daemon HTTP API.
//
// The server is started and stopped through a context so that the
// application can run it next to the background workers and shut everything
// down together.
package server
