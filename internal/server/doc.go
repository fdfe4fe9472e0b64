// Package server runs the remote store's HTTP server.
//
// It covers startup, signal handling and graceful shutdown.
package server
