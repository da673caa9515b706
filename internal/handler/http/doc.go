// Package http implements the HTTP transport layer of the application.
//
// It serves two surfaces from one chi router: the server-rendered task board
// (HTML forms, every POST redirects back to the board) and the JSON API used
// by the remote terminal client. Request tracing, access logging, response
// compression and session cookies are handled here before requests reach the
// controller or the service layer.
package http
