// Package dealcloud provides utility functions for common operations and error handling.
package dealcloud

import (
	"io"
	"net/http"
	"strings"

	"github.com/tonimelisma/dealcloud-activity/internal/logger"
)

// closeBodySafely closes an HTTP response body and logs any error.
// This is intended for use in defer statements where error handling is not critical.
func closeBodySafely(body io.Closer, log logger.Logger, operation string) {
	if err := body.Close(); err != nil {
		log.Warnf("Failed to close %s body: %v", operation, err)
	}
}

// readErrorBody reads up to MaxErrorBodyLength bytes of an error response.
func readErrorBody(body io.Reader) string {
	if body == nil {
		return ""
	}
	errorBody, _ := io.ReadAll(io.LimitReader(body, MaxErrorBodyLength))
	return strings.TrimSpace(string(errorBody))
}

// isSuccess reports whether the status code is in the 2xx range.
func isSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// newHTTPError builds an HTTPError from a failed response, consuming its body.
func newHTTPError(res *http.Response) *HTTPError {
	httpErr := &HTTPError{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Body:       readErrorBody(res.Body),
	}
	if res.Request != nil {
		httpErr.Method = res.Request.Method
		if res.Request.URL != nil {
			httpErr.URL = res.Request.URL.Redacted()
		}
	}
	return httpErr
}
