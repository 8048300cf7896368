package joke

import (
	"encoding/json"
	"fmt"
)

// Joke is the payload returned by the random joke endpoint.
// The endpoint also sends "id" and "type"; they are not used.
type Joke struct {
	Setup     string
	Punchline string
}

// String returns the setup followed by the punchline on the next line
func (j *Joke) String() string {
	return j.Setup + "\n" + j.Punchline
}

// ParseJoke decodes a response body into a Joke.
// Keys are matched exactly: "Setup" is not "setup". A body that is not a
// JSON object, or whose fields are not strings, yields an ErrTypeParse
// error. An absent or null "setup" or "punchline" yields an
// ErrTypeMissingField error; "setup" is checked first.
func ParseJoke(body []byte) (*Joke, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, NewParseError("failed to parse JSON response", err)
	}
	// A literal "null" body decodes without error and leaves fields nil
	if fields == nil {
		return nil, NewParseError("response body is JSON null", nil)
	}

	setup, err := stringField(fields, "setup")
	if err != nil {
		return nil, err
	}
	punchline, err := stringField(fields, "punchline")
	if err != nil {
		return nil, err
	}

	return &Joke{Setup: *setup, Punchline: *punchline}, nil
}

// stringField looks up key exactly and decodes it as a string
func stringField(fields map[string]json.RawMessage, key string) (*string, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, NewMissingFieldError(key)
	}

	var value *string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, NewParseError(fmt.Sprintf("field %q is not a string", key), err)
	}
	if value == nil {
		return nil, NewMissingFieldError(key)
	}
	return value, nil
}
