// Package transport performs the single HTTP GET every catalog request boils
// down to.
//
// Request builders depend on the Connector interface only, so tests and
// callers with their own HTTP stack can substitute it:
//
//	conn := transport.ConnectorFunc(func(ctx context.Context, rawURL string) (string, error) {
//		return `{"resultCount":0,"results":[]}`, nil
//	})
//
// HTTPConnector is the default implementation. It performs one blocking
// request per call, never retries, and returns the body as text with trailing
// line separators removed:
//
//	conn := transport.NewHTTPConnector(
//		transport.WithTimeout(10*time.Second),
//		transport.WithLogger(logger),
//	)
//	body, err := conn.Get(ctx, "https://itunes.apple.com/lookup?id=909253")
//
// # Error Handling
//
// Every failure wraps ErrTransport:
//
//   - *Error: the URL could not be parsed, the connection failed or the body could not be read
//   - *StatusError: the server answered with a non-2xx status
package transport
