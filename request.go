package blnk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"reflect"

	"github.com/blnkfinance/blnk-go/model"
)

// APIKeyHeader carries the static API key on every request.
const APIKeyHeader = "X-Blnk-Key"

// request is the single chokepoint through which every service call reaches
// the transport. Exactly one network attempt is made per call; retries are a
// caller concern. No failure escapes as an error: server-reported failures
// keep the server's status, everything unexpected becomes a 500 envelope.
//
// An io.Reader payload is sent as-is (multipart bodies arrive this way, with
// the boundary content-type in headers); anything else is JSON-encoded. The
// headers map overrides both the defaults and the client-wide headers.
func request[R any](ctx context.Context, c *Client, endpoint string, payload any, method string, headers map[string]string) *model.Response[R] {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	switch p := payload.(type) {
	case nil:
	case io.Reader:
		body = p
	default:
		encoded, err := json.Marshal(payload)
		if err != nil {
			return handleError[R](err, c.logger, endpoint)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(endpoint), body)
	if err != nil {
		return handleError[R](err, c.logger, endpoint)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(APIKeyHeader, c.apiKey)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug("%s %s", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return handleError[R](err, c.logger, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Warn("request to %s failed with status %d: %s", endpoint, resp.StatusCode, raw)

		// Pass the server's verdict through verbatim; the error body is
		// decoded best-effort and dropped when it does not fit. A body that
		// contributes no field leaves Data nil so a rejection is never
		// mistaken for a zero-valued success.
		var errData R
		data := &errData
		if json.Unmarshal(raw, data) != nil || reflect.DeepEqual(errData, *new(R)) {
			data = nil
		}
		return model.Format(resp.StatusCode, http.StatusText(resp.StatusCode), data)
	}

	var result R
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return handleError[R](err, c.logger, endpoint)
	}
	return model.Format(resp.StatusCode, "Success", &result)
}
