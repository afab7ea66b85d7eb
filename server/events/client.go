package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// SessionCookieName is the cookie the upstream API expects the session token in.
const SessionCookieName = "session"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api request failed with status code: %d", e.Status)
	}
	return e.Message
}

// Auth carries the credentials forwarded to the upstream API. Exactly which of
// the two fields is set depends on the caller: routes forward the inbound
// session cookie, the login callback uses the freshly exchanged bearer token.
type Auth struct {
	SessionToken string
	BearerToken  string
}

func (a Auth) IsAnonymous() bool {
	return a.SessionToken == "" && a.BearerToken == ""
}

func New(cfg Config, httpClient *http.Client) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
	}
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func (c *Client) get(ctx context.Context, auth Auth, path string, query url.Values, out any) error {
	return c.do(ctx, auth, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, auth Auth, path string, body any, out any) error {
	return c.do(ctx, auth, http.MethodPost, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, auth Auth, path string, body any, out any) error {
	return c.do(ctx, auth, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, auth Auth, path string) error {
	return c.do(ctx, auth, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, auth Auth, method string, path string, query url.Values, body any, out any) error {
	requestURL := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = buf
	}

	rq, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	rq.Header.Set("Accept", "application/json")
	if body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}
	if auth.SessionToken != "" {
		rq.AddCookie(&http.Cookie{Name: SessionCookieName, Value: auth.SessionToken})
	}
	if auth.BearerToken != "" {
		rq.Header.Set("Authorization", "Bearer "+auth.BearerToken)
	}

	rs, err := c.httpClient.Do(rq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer rs.Body.Close()

	switch rs.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	if rs.StatusCode >= http.StatusBadRequest {
		return newAPIError(rs)
	}

	if out == nil {
		return nil
	}

	logBuf := &bytes.Buffer{}
	bodyReader = io.TeeReader(rs.Body, logBuf)

	if err = json.NewDecoder(bodyReader).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %q: %w", logBuf.String(), err)
	}

	return nil
}

func newAPIError(rs *http.Response) error {
	apiErr := &APIError{
		Status: rs.StatusCode,
	}

	data, err := io.ReadAll(rs.Body)
	if err != nil {
		return apiErr
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err = json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			apiErr.Message = body.Error
		} else {
			apiErr.Message = body.Message
		}
	}

	return apiErr
}
