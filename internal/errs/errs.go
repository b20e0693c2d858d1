// Package errs defines the error shapes returned to API clients.
//
// Handlers and services return *HTTPError for anything the client caused
// (bad keyword, unknown id, malformed range); everything else is hidden
// behind a generic 500 by the global error handler.
package errs
