package dealcloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// ActivityRow is one row of the user activity report, passed through as
// returned by the server.
type ActivityRow map[string]any

// GetUserActivity validates the filter and page, posts the report request
// with the bearer token, and returns the rows of the response.
//
// Invalid input fails with ErrValidation before any request is sent. A
// non-2xx status fails with *HTTPError, and a response without a rows array
// fails with ErrMalformedResponse.
func (c *Client) GetUserActivity(ctx context.Context, accessToken string, filter ActivityFilter, page PageRequest) ([]ActivityRow, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("%w: an access token is required", ErrAuth)
	}

	activityReq, err := BuildActivityRequest(filter, page)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(activityReq.Body)
	if err != nil {
		return nil, fmt.Errorf("marshalling user activity request: %w", err)
	}

	activityURL := c.endpoint(UserActivityPath)
	if len(activityReq.Query) > 0 {
		activityURL += "?" + activityReq.Query.Encode()
	}

	c.logger.Debug("requesting user activity", "filters", len(activityReq.Body), "query", activityReq.Query.Encode())

	res, err := c.apiCall(ctx, http.MethodPost, activityURL, accessToken, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("fetching user activity: %w", err)
	}
	defer closeBodySafely(res.Body, c.logger, "user activity")

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading user activity response: %w", err)
	}

	rows, err := extractRows(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("user activity received", "rows", len(rows))
	return rows, nil
}

// extractRows pulls the rows array out of a report response.
func extractRows(body []byte) ([]ActivityRow, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response body is not valid JSON", ErrMalformedResponse)
	}

	result := gjson.GetBytes(body, "rows")
	if !result.Exists() {
		return nil, fmt.Errorf("%w: response has no rows field", ErrMalformedResponse)
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: rows is %s, not an array", ErrMalformedResponse, result.Type)
	}

	// Numbers stay json.Number so ids above 2^53 survive re-encoding.
	rows := make([]ActivityRow, 0, len(result.Array()))
	dec := json.NewDecoder(strings.NewReader(result.Raw))
	dec.UseNumber()
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: decoding rows: %w", ErrMalformedResponse, err)
	}
	return rows, nil
}
