package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnavailable wraps transport failures: DNS, refused connections,
	// timeouts, truncated bodies.
	ErrUnavailable = errors.New("server unavailable")
	// ErrAuthExpired is returned for a 401 after the session was cleared.
	ErrAuthExpired = errors.New("unauthorized - please login again")
	// ErrInvalidResponse matches every *InvalidResponseError.
	ErrInvalidResponse = errors.New("invalid JSON response")
)

// excerptLimit bounds how much of a non-JSON body is quoted in errors.
const excerptLimit = 200

// InvalidResponseError is returned when the body is not JSON.
type InvalidResponseError struct {
	Status  int
	Excerpt string
	Err     error
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("server error: %d - %s (%v)", e.Status, e.Excerpt, e.Err)
}

func (e *InvalidResponseError) Unwrap() error { return e.Err }

func (e *InvalidResponseError) Is(target error) bool { return target == ErrInvalidResponse }

// APIError is a non-2xx JSON response.
//
// Message is the server's "detail" or "message" field, or "HTTP <status>".
// Fields holds the first message per field of a validation error body such
// as {"username": ["already taken"]}.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string { return e.Message }

// FieldErrors renders Fields as "field: message" lines in key order.
func (e *APIError) FieldErrors() []string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+e.Fields[k])
	}
	return lines
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: fmt.Sprintf("HTTP %d", status)}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}

	for _, key := range []string{"detail", "message"} {
		if msg, ok := payload[key].(string); ok && msg != "" {
			apiErr.Message = msg
			break
		}
	}

	for key, value := range payload {
		if key == "detail" || key == "message" {
			continue
		}
		switch v := value.(type) {
		case string:
			apiErr.addField(key, v)
		case []any:
			if len(v) > 0 {
				if first, ok := v[0].(string); ok {
					apiErr.addField(key, first)
				}
			}
		}
	}

	return apiErr
}

func (e *APIError) addField(key, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[key] = msg
}
