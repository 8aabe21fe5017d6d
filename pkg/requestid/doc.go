// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client-supplied "X-Request-ID" header when it is a
// short token of letters, digits, '-' and '_'; otherwise it generates a
// UUIDv4. The ID is stored in the request context (FromContext) and echoed
// in the response header.
//
// LoggerExtractor plugs into pkg/logger so that every record logged with a
// request context carries a request_id attribute:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
package requestid
