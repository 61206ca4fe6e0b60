package rest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/devsensei-ai/devsensei-cli/version"
)

type memoryStore struct {
	mu  sync.Mutex
	key string
}

func (s *memoryStore) APIKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

func (s *memoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.key = ""
	return nil
}

func TestClient_DoRequest(t *testing.T) {
	t.Run("POST with req and resp", func(t *testing.T) {
		fix := &fixture{}
		c, _, cleanup := fix.Run(http.StatusOK, `{"key": "value"}`)
		defer cleanup()

		t.Run("Check result", func(t *testing.T) {
			r, err := c.NewRequest("POST", &url.URL{Path: "execute"}, struct {
				Code     string `json:"code"`
				Language string `json:"language"`
			}{
				Code:     "print('hi')",
				Language: "python",
			})
			assert.NilError(t, err)

			resp := make(map[string]interface{})
			statusCode, err := c.DoRequest(r, &resp)
			assert.NilError(t, err)
			assert.Equal(t, statusCode, http.StatusOK)
			assert.Check(t, cmp.DeepEqual(resp, map[string]interface{}{
				"key": "value",
			}))
		})

		t.Run("Check request", func(t *testing.T) {
			assert.Check(t, cmp.Equal(fix.URL(), url.URL{Path: "/api/code/execute"}))
			assert.Check(t, cmp.Equal(fix.Method(), "POST"))
			assert.Check(t, cmp.DeepEqual(fix.Header(), http.Header{
				"Accept":          {"application/json"},
				"Accept-Encoding": {"gzip"},
				"Content-Length":  {"43"},
				"Content-Type":    {"application/json"},
				"User-Agent":      {version.UserAgent()},
				"X-Api-Key":       {"fake-key"},
			}))
			assert.Check(t, cmp.Equal(fix.Body(), `{"code":"print('hi')","language":"python"}`+"\n"))
		})
	})

	t.Run("GET with error status", func(t *testing.T) {
		fix := &fixture{}
		c, store, cleanup := fix.Run(http.StatusBadRequest, `{"detail": "the error message"}`)
		defer cleanup()

		r, err := c.NewRequest("GET", &url.URL{Path: "supported-languages"}, nil)
		assert.NilError(t, err)

		resp := make(map[string]interface{})
		statusCode, err := c.DoRequest(r, &resp)
		assert.Error(t, err, "the error message")
		assert.Equal(t, statusCode, http.StatusBadRequest)
		assert.Check(t, cmp.DeepEqual(resp, map[string]interface{}{}))

		// Only a 401 drops the credential.
		assert.Equal(t, store.APIKey(), "fake-key")
	})

	t.Run("401 clears the stored key and still fails", func(t *testing.T) {
		fix := &fixture{}
		c, store, cleanup := fix.Run(http.StatusUnauthorized, `{"detail": "Invalid API key"}`)
		defer cleanup()

		r, err := c.NewRequest("GET", &url.URL{Path: "user/repos"}, nil)
		assert.NilError(t, err)

		_, err = c.DoRequest(r, nil)
		assert.Error(t, err, "Invalid API key")
		assert.Equal(t, store.APIKey(), "")
	})

	t.Run("error without detail gets a readable message", func(t *testing.T) {
		fix := &fixture{}
		c, _, cleanup := fix.Run(http.StatusInternalServerError, ``)
		defer cleanup()

		r, err := c.NewRequest("GET", &url.URL{Path: "user/repos"}, nil)
		assert.NilError(t, err)

		_, err = c.DoRequest(r, nil)
		assert.Error(t, err, "response 500 (Internal Server Error)")
	})

	t.Run("no key means no auth header", func(t *testing.T) {
		fix := &fixture{}
		c, store, cleanup := fix.Run(http.StatusOK, `{}`)
		defer cleanup()
		assert.NilError(t, store.Clear())

		r, err := c.NewRequest("GET", &url.URL{Path: "supported-languages"}, nil)
		assert.NilError(t, err)

		_, err = c.DoRequest(r, nil)
		assert.NilError(t, err)
		assert.Equal(t, fix.Header().Get("X-Api-Key"), "")
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, ErrorMessage(&HTTPError{Code: 400, Message: "bad input"}, "generic"), "bad input")
	assert.Equal(t, ErrorMessage(&HTTPError{Code: 500}, "generic"), "generic")
	assert.Equal(t, ErrorMessage(nil, "generic"), "generic")
}

type fixture struct {
	mu     sync.Mutex
	url    url.URL
	method string
	header http.Header
	body   bytes.Buffer
}

func (f *fixture) URL() url.URL {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.url
}

func (f *fixture) Method() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method
}

func (f *fixture) Header() http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.header
}

func (f *fixture) Body() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.body.String()
}

func (f *fixture) Run(statusCode int, respBody string) (c *Client, store *memoryStore, cleanup func()) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		defer r.Body.Close()
		_, _ = io.Copy(&f.body, r.Body)
		f.url = *r.URL
		f.header = r.Header
		f.method = r.Method

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = io.WriteString(w, respBody)
	})
	server := httptest.NewServer(mux)

	store = &memoryStore{key: "fake-key"}
	return NewWithStore(server.URL, "api/code", store, http.DefaultClient), store, server.Close
}
