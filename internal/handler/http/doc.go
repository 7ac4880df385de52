// Package http implements the REST transport of the mentor-match server.
//
// It wires the /api routes, decodes and validates requests, and maps
// service and store errors onto JSON error responses. Authentication, role
// checks, request tracing, access logging and gzip compression are handled
// by middleware before requests reach the service layer.
package http
