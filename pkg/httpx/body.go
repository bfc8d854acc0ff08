package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// maxPeekBytes bounds how much of a request body the rate limiter will
// buffer while looking for a grouping key.
const maxPeekBytes = 1 << 16

// peekJSONField reads the request body, extracts a top-level string field
// from it, and restores the body so downstream handlers can decode it again.
func peekJSONField(r *http.Request, field string) string {
	if r.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	var value string
	if err := json.Unmarshal(payload[field], &value); err != nil {
		return ""
	}
	return value
}
