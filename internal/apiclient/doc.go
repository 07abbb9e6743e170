// Package apiclient is the Go client of the puisi JSON API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the auth, puisi and reaction services.
//  2. A concrete HTTP implementation (see HTTPClient) that keeps the access
//     token obtained at login and sends it as a Bearer token on protected
//     calls.
//
// The same HTTPClient is used by the CLI and by the services themselves for
// their inter-service calls. A request id found in the call's context (see
// internal/requestid) is sent as X-Request-ID, so one user action can be
// followed through the logs of every service it touches.
//
// # Error Handling
//
// Error responses are decoded into *APIError, which unwraps to the sentinel
// of internal/common named by the response code, so callers match with
// errors.Is(err, common.ErrorNotFound) and friends. Transport failures wrap
// ErrUnavailable; any 401 also matches ErrUnauthorized.
package apiclient
