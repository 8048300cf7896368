// Package joke provides an HTTP client for the Official Joke API.
//
// A Client performs one GET request per call against a fixed endpoint,
// checks the HTTP status, and decodes the "setup" and "punchline" keys of
// the JSON body. There are no retries and no caching.
//
// # Usage Example
//
//	client := joke.NewClient()
//
//	text, err := client.Fetch(ctx)
//	if err != nil {
//	    // err is a *joke.Error
//	}
//	fmt.Println(text) // "<setup>\n<punchline>"
//
// # Error Handling
//
// Every error returned by Client is a *Error whose Type is one of:
//   - ErrTypeNetwork, ErrTypeTimeout, ErrTypeConnectionRefused, ErrTypeDNS:
//     the endpoint could not be reached or the body could not be read
//   - ErrTypeHTTP: a response arrived with a non-2xx status (StatusCode is set)
//   - ErrTypeParse: the body is not a JSON object with string fields
//   - ErrTypeMissingField: "setup" or "punchline" is absent or null (Field is set)
//
// Use the Is* helpers (IsNetworkError, IsHTTPError, ...) to branch on them.
package joke
