// Package logging provides structured logging for jokebox.
//
// This package wraps a global zap logger with convenience functions. The
// terminal panels are the program's real output, so logging is silent unless
// the JOKEBOX_LOG_LEVEL environment variable is set to "debug", "info",
// "warn" or "error". Log lines are written to stderr in zap's console format.
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	}
//	defer logging.Sync()
//
// # HTTP Logging
//
//	logging.LogHTTPRequest(http.MethodGet, url)
//	logging.LogHTTPResponse(url, resp.StatusCode, time.Since(start))
//	logging.LogFetchFailure(url, "Timeout", err)
//
// Tests can capture records by installing an observer core with SetLogger.
package logging
