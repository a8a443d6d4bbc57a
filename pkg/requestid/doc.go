// Package requestid tags every HTTP request with a correlation ID.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUID, stores it in the request context and echoes it in the
// response. LoggerExtractor adds it to log records as "request_id".
package requestid
