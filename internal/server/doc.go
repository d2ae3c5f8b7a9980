// Package server runs the profile HTTP API and the gRPC health endpoint
// and stops both on SIGTERM, SIGINT or SIGQUIT.
package server
