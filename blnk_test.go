package blnk

import (
	"io"
	"net/http"
	"strings"
)

// fakeDoer is a transport stand-in that records every request it sees.
type fakeDoer struct {
	calls    int
	lastReq  *http.Request
	lastBody []byte
	handler  func(req *http.Request) (*http.Response, error)
}

func (d *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls++
	d.lastReq = req
	if req.Body != nil {
		d.lastBody, _ = io.ReadAll(req.Body)
	}
	if d.handler != nil {
		return d.handler(req)
	}
	return jsonResponse(http.StatusOK, `{}`), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func respondWith(status int, body string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return jsonResponse(status, body), nil
	}
}

func newTestClient(doer Doer) *Client {
	c, err := New("test-key", Options{
		BaseURL:    "http://blnk.test",
		HTTPClient: doer,
	})
	if err != nil {
		panic(err)
	}
	return c
}
