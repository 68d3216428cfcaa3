package tempo

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Page is one generic Tempo API response: an ordered batch of raw records
// plus pagination metadata. The payload shape of the records is endpoint
// specific and decoded by the caller.
type Page struct {
	Results  []json.RawMessage `json:"results"`
	Metadata Metadata          `json:"metadata"`
}

// Metadata carries the opaque continuation cursor and pagination counters.
// Total is only a progress hint: it has been observed to shrink between pages
// and to disagree with the page size, so it must never drive loop termination.
// Only the absence of Next signals the final page.
type Metadata struct {
	Next   string `json:"next"`
	Offset int    `json:"offset"`
	Count  int    `json:"count"`
	Total  int    `json:"total"`
}

// NextPath returns the continuation cursor as a path relative to baseURL,
// or "" when this is the final page. The upstream embeds a full URL; the
// host prefix has to be stripped before it can be re-requested.
func (m Metadata) NextPath(baseURL string) string {
	if m.Next == "" {
		return ""
	}
	if rel, ok := strings.CutPrefix(m.Next, baseURL); ok {
		return rel
	}
	u, err := url.Parse(m.Next)
	if err != nil {
		return ""
	}
	return u.RequestURI()
}

// StatusError is a transport failure: the upstream answered outside [200,300).
// It keeps the endpoint and raw body for diagnostics.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tempo api %s [%d] - %s", e.Endpoint, e.Code, e.Body)
}

// DecodeError is a malformed body on an otherwise successful response,
// kept distinct from StatusError: the same bytes will not parse better on a
// verbatim retry, only a rebuilt request can help.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tempo api %s: invalid response body: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeResults[T any](endpoint string, raw []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil {
			return nil, &DecodeError{Endpoint: endpoint, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
