// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses the client's X-Request-ID header when it is a short token
// of letters, digits, '-' and '_', otherwise it generates a UUIDv4. The ID is
// stored in the request context (FromContext), echoed in the response header
// and added to log records through LoggerExtractor.
package requestid
