// Package http implements the REST transport of the profile service.
//
// It wires the /users/{id} routes to the user service, serves stored pictures
// for the filesystem backend, and exposes the server version and Prometheus
// metrics. Request tracing, access logging, metrics and response compression
// are handled here before requests reach the service layer.
package http
