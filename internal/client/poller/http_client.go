package poller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"transfer-booking/internal/pkg/errs"
)

const sessionPath = "/api/checkout/session"

// ErrTransient marks failures the poller retries on its next attempt.
var ErrTransient = errs.New("session query failed")

// HTTPClient queries the session confirmation endpoint of a running server.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Code string `json:"code"`
}

func (c *HTTPClient) QuerySession(ctx context.Context, sessionID string) (*Response, error) {
	body, err := json.Marshal(map[string]string{"sessionId": sessionID})
	if err != nil {
		return nil, errs.Wrap(err, "encode session query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+sessionPath, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "build session query"), ErrTerminal)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "session query"), ErrTransient)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read session response"), ErrTransient)
	}

	if res.StatusCode >= 200 && res.StatusCode < 300 {
		var out Response
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode session response"), ErrTransient)
		}
		return &out, nil
	}

	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	err = errs.Newf("session query: status %d code %q: %s", res.StatusCode, eb.Code, eb.Error.Message)
	if terminalStatus(res.StatusCode) || eb.Code == "missing_intent_metadata" {
		return nil, errs.Mark(err, ErrTerminal)
	}
	return nil, errs.Mark(err, ErrTransient)
}

// Client errors repeat identically on retry, except timeouts and rate limits.
func terminalStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return code >= 400 && code < 500
}
