// Package server runs the HTTP transport: it listens, serves until the
// context is cancelled, then drains in-flight requests.
package server
