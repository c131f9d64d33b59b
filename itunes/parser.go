package itunes

import (
	"encoding/json"
	"unicode/utf8"
)

const snippetLen = 64

// Decode unmarshals body into v. Any failure is reported as a *ParseError.
func Decode[T any](body string, v *T) error {
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return NewParseError(body, err)
	}
	return nil
}

// NewParseError reports err against the beginning of body
func NewParseError(body string, err error) error {
	return &ParseError{Snippet: snippet(body), Err: err}
}

// ParseResponse decodes a Search or Lookup response body
func ParseResponse(body string) (*Response, error) {
	var resp Response
	if err := Decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []Result{}
	}
	return &resp, nil
}

func snippet(body string) string {
	if len(body) <= snippetLen {
		return body
	}
	cut := snippetLen
	for cut > 0 && !utf8.RuneStart(body[cut]) {
		cut--
	}
	return body[:cut] + "..."
}
