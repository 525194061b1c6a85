// Package middleware holds the Fiber middleware mounted in front of the path-mapper routes.
//
//   - rayid tags every request with an X-Ray-ID header, reusing the caller's value when present.
//   - auth checks the X-API-Key header against the configured key. An empty key disables it.
//
// rayid is mounted first. auth follows the swagger route, so it guards /identify and /integrity.
package middleware
