package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Envelope is the one response shape the rest of the client sees.
type Envelope[T any] struct {
	OK    bool
	Data  T
	Error string
}

// APIError is a non-OK response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

// rawEnvelope covers every body shape the API has used over time. Older
// list endpoints answer with "businesses" or "items" instead of "data",
// and some errors come back as "message".
type rawEnvelope struct {
	OK         *bool           `json:"ok"`
	Success    *bool           `json:"success"`
	Data       json.RawMessage `json:"data"`
	Businesses json.RawMessage `json:"businesses"`
	Items      json.RawMessage `json:"items"`
	Error      string          `json:"error"`
	Message    string          `json:"message"`
}

func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// decodeEnvelope adapts a raw response body to Envelope[T]. A non-OK
// response is returned as *APIError.
func decodeEnvelope[T any](status int, body []byte) (Envelope[T], error) {
	var env Envelope[T]
	var raw rawEnvelope
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			if status >= http.StatusBadRequest {
				return env, &APIError{Status: status, Message: strings.TrimSpace(string(body))}
			}
			return env, fmt.Errorf("decode response: %w", err)
		}
	}

	env.OK = status >= 200 && status < 300
	switch {
	case raw.OK != nil:
		env.OK = env.OK && *raw.OK
	case raw.Success != nil:
		env.OK = env.OK && *raw.Success
	}

	if !env.OK {
		env.Error = raw.Error
		if env.Error == "" {
			env.Error = raw.Message
		}
		if env.Error == "" {
			env.Error = http.StatusText(status)
		}
		return env, &APIError{Status: status, Message: env.Error}
	}

	for _, payload := range []json.RawMessage{raw.Data, raw.Businesses, raw.Items} {
		if !present(payload) {
			continue
		}
		if err := json.Unmarshal(payload, &env.Data); err != nil {
			return env, fmt.Errorf("decode response data: %w", err)
		}
		break
	}
	return env, nil
}
