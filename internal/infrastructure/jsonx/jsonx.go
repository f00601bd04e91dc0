// Package jsonx provides best-effort JSON recovery for upstream responses
// that claim JSON but occasionally deliver HTML or plain text with a JSON
// object buried inside.
package jsonx

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSON indicates no parsable JSON object could be located in the body.
var ErrNoJSON = errors.New("no JSON object found in response body")

// Decode unmarshals body into v, falling back to extracting an embedded JSON
// object when the body as a whole is not valid JSON.
func Decode(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err == nil {
		return nil
	}

	extracted, err := Extract(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(extracted, v)
}

// Extract locates the outermost JSON object embedded in a text body.
// It takes the span from the first '{' to the last '}' and verifies it
// parses; anything else fails with ErrNoJSON.
func Extract(body []byte) ([]byte, error) {
	text := string(body)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrNoJSON
	}

	candidate := []byte(text[start : end+1])
	if !json.Valid(candidate) {
		return nil, ErrNoJSON
	}
	return candidate, nil
}
