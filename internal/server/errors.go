package server

import "errors"

// errNoHTTPServer is returned when neither a route tree nor a listen address
// is configured.
var errNoHTTPServer = errors.New("no http server configured: missing handler or address")
