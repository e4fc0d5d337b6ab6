package constant

type contextKey string

// RequestIDKey carries the per-request identifier set by the request-id middleware.
const RequestIDKey contextKey = "request_id"
