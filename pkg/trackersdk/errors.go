package trackersdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the typed form of the service's JSON error body. Callers can
// switch on Code or StatusCode to distinguish auth failures from not-found
// and validation problems.
type APIError struct {
	// StatusCode is the HTTP status the server answered with.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "invalid_credentials").
	Code string `json:"error"`

	// Description is the human-readable detail.
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseError turns a non-success response body into an *APIError. Bodies
// that are not the expected JSON shape fall back to the HTTP status text.
func parseError(resp *http.Response, body []byte) error {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        er.Error,
			Description: er.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        "server_error",
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
