package common

// RequestIDHeaderName is the HTTP header (and lower-cased gRPC metadata key)
// carrying the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
