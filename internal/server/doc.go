// Package server wires and runs the replica's inbound transport.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, and graceful shutdown.
package server
