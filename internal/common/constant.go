package common

// AuthorizationHeaderName carries the bearer token on every request to a
// protected endpoint.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the only accepted authorization scheme.
const BearerScheme = "Bearer"

// RequestIDHeaderName is echoed back on every response.
const RequestIDHeaderName = "X-Request-ID"
