// Package httpclient is the JSON transport shared by every accessor. It
// performs no retries: transport failures surface to the caller as a single
// TransportError.
package httpclient

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	perrors "github.com/pkg/errors"

	clienterr "github.com/exhuman777/polymarket-go/pkg/errors"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "polymarket-go/1.0"
)

// Client wraps a resty client with the error handling shared by all three
// remote services.
type Client struct {
	rc *resty.Client
}

// New creates a transport with the default timeout.
func New() *Client {
	return NewWithTimeout(defaultTimeout)
}

// NewWithTimeout creates a transport with an explicit request timeout.
func NewWithTimeout(timeout time.Duration) *Client {
	rc := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	return &Client{rc: rc}
}

// SetHTTPClient swaps the underlying http.Client, used by tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.rc = resty.NewWithClient(hc).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
}

// Get issues a GET and decodes the JSON response into out when out is
// non-nil.
func (c *Client) Get(url string, query map[string]string, headers map[string]string, out interface{}) error {
	req := c.rc.R().SetHeaders(headers)
	if query != nil {
		req.SetQueryParams(query)
	}
	resp, err := req.Get(url)
	return decode(resp, err, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(url string, headers map[string]string, body interface{}, out interface{}) error {
	req := c.rc.R().SetHeaders(headers)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Post(url)
	return decode(resp, err, out)
}

// Delete issues a DELETE, optionally with a JSON body.
func (c *Client) Delete(url string, headers map[string]string, body interface{}, out interface{}) error {
	req := c.rc.R().SetHeaders(headers)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	resp, err := req.Delete(url)
	return decode(resp, err, out)
}

func decode(resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		return &clienterr.TransportError{Err: perrors.Wrap(err, "request failed")}
	}
	if !resp.IsSuccess() {
		return &clienterr.TransportError{
			StatusCode: resp.StatusCode(),
			Body:       remoteMessage(resp.Body()),
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &clienterr.TransportError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
			Err:        perrors.Wrap(err, "decode response"),
		}
	}
	return nil
}

// remoteMessage extracts the service's error field when the failure body is
// JSON, otherwise returns the raw body.
func remoteMessage(body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload["error"].(string); ok {
			return msg
		}
		if msg, ok := payload["message"].(string); ok {
			return msg
		}
	}
	return string(body)
}
