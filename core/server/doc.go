// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure and its validation.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key and the request body limit
// applied to identification batches posted to the API.
package server
