// Package http implements the REST transport of the scene store.
//
// Routes address a room by the {roomID} path parameter and receive the room
// key in the X-Room-Key header; the key is handed to the service layer and
// never logged. Tracing, access logging, compression and optional room
// tokens are handled here before requests reach the services.
package http
