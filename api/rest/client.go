package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/devsensei-ai/devsensei-cli/api/header"
	"github.com/devsensei-ai/devsensei-cli/settings"
	"github.com/devsensei-ai/devsensei-cli/version"
)

// CredentialStore gives the client access to the stored API key. Injected at
// construction so tests can observe the 401 side effect with an in-memory
// store instead of touching the user's config file.
type CredentialStore interface {
	APIKey() string
	Clear() error
}

type Client struct {
	baseURL *url.URL
	creds   CredentialStore
	client  *http.Client
}

// New returns a client rooted at the given route group of the DevSensei
// server, e.g. New(config.Host, "api/github", config).
func New(host, endpoint string, config *settings.Config) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return NewWithStore(host, endpoint, settings.NewAPIKeyStore(config), httpClient)
}

// NewWithStore is New with an explicit credential store and HTTP client.
func NewWithStore(host, endpoint string, creds CredentialStore, httpClient *http.Client) *Client {
	// Ensure endpoint ends with a slash
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	u, _ := url.Parse(host)
	return &Client{
		baseURL: u.ResolveReference(&url.URL{Path: endpoint}),
		creds:   creds,
		client:  httpClient,
	}
}

func (c *Client) NewRequest(method string, u *url.URL, payload interface{}) (req *http.Request, err error) {
	var r io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		r = buf
		err = json.NewEncoder(buf).Encode(payload)
		if err != nil {
			return nil, err
		}
	}

	req, err = http.NewRequest(method, c.baseURL.ResolveReference(u).String(), r)
	if err != nil {
		return nil, err
	}

	if key := c.creds.APIKey(); key != "" {
		req.Header.Set("X-Api-Key", key)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	commandStr := header.GetCommandStr()
	if commandStr != "" {
		req.Header.Set("Devsensei-Cli-Command", commandStr)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// DoRequest sends req and decodes the JSON body into resp. Non-2xx responses
// become an *HTTPError carrying the server's `detail` message. A 401 also
// clears the stored API key before the error is returned; no retry is made.
func (c *Client) DoRequest(req *http.Request, resp interface{}) (statusCode int, err error) {
	httpResp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= 300 {
		if httpResp.StatusCode == http.StatusUnauthorized {
			// The key is no longer valid, drop it for the rest of the session.
			_ = c.creds.Clear()
		}

		httpError := struct {
			Detail string `json:"detail"`
		}{}
		_ = json.NewDecoder(httpResp.Body).Decode(&httpError)
		return httpResp.StatusCode, &HTTPError{Code: httpResp.StatusCode, Message: httpError.Detail}
	}

	if resp != nil {
		if !strings.Contains(httpResp.Header.Get("Content-Type"), "application/json") {
			return httpResp.StatusCode, errors.New("wrong content type received")
		}

		err = json.NewDecoder(httpResp.Body).Decode(resp)
		if err != nil {
			return httpResp.StatusCode, err
		}
	}
	return httpResp.StatusCode, nil
}

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	if e.Code == 0 {
		e.Code = http.StatusInternalServerError
	}
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("response %d (%s)", e.Code, http.StatusText(e.Code))
}

// ErrorMessage extracts the server-reported detail from err, falling back to
// the given generic message when the error carries none. Commands use this to
// turn façade failures into the notice shown to the user.
func ErrorMessage(err error, fallback string) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Message != "" {
			return httpErr.Message
		}
		return fallback
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
