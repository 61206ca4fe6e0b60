package repo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gotest.tools/v3/assert"

	"github.com/devsensei-ai/devsensei-cli/cmd/validator"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

func scaffoldCMD(serverURL string, preRunE validator.Validator, opts ...Option) (*cobra.Command, *bytes.Buffer, afero.Fs) {
	config := &settings.Config{
		Host:       serverURL,
		Token:      "test-api-key",
		HTTPClient: http.DefaultClient,
	}
	fs := afero.NewMemMapFs()
	opts = append(opts, CustomFs(fs))

	cmd := NewRepoCommand(config, preRunE, opts...)
	stdout := new(bytes.Buffer)
	cmd.SetOut(stdout)
	cmd.SetErr(new(bytes.Buffer))
	return cmd, stdout, fs
}

func TestListRendersTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "GET")
		assert.Equal(t, r.URL.Path, "/api/github/user/repos")
		assert.Equal(t, r.URL.Query().Get("username"), "octocat")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username": "octocat", "total_repos": 1, "repositories": [
			{"name": "Hello-World", "full_name": "octocat/Hello-World", "language": "Go", "stars": 3, "forks": 1, "private": false, "default_branch": "main", "url": ""}
		]}`))
	}))
	defer server.Close()

	cmd, stdout, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"list", "octocat"})

	assert.NilError(t, cmd.Execute())
	assert.Check(t, strings.Contains(stdout.String(), "Hello-World"))
	assert.Check(t, strings.Contains(stdout.String(), "public"))
}

func TestListEmptyState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username": "ghost", "total_repos": 0, "repositories": []}`))
	}))
	defer server.Close()

	cmd, stdout, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"list", "ghost"})

	assert.NilError(t, cmd.Execute())
	// An explicit empty state, not an empty table.
	assert.Equal(t, stdout.String(), "No repositories found for ghost.\n")
}

func TestListShowsServerDetail(t *testing.T) {
	message := "User not found"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(fmt.Sprintf(`{"detail": "%s"}`, message)))
	}))
	defer server.Close()

	cmd, _, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"list", "nobody"})

	assert.Error(t, cmd.Execute(), message)
}

func TestListFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cmd, _, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"list", "octocat"})

	assert.Error(t, cmd.Execute(), "could not list repositories")
}

func TestListJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"username": "octocat", "total_repos": 1, "repositories": [
			{"name": "Hello-World", "full_name": "octocat/Hello-World", "stars": 3}
		]}`))
	}))
	defer server.Close()

	cmd, stdout, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"list", "octocat", "--json"})

	assert.NilError(t, cmd.Execute())

	var decoded []map[string]interface{}
	assert.NilError(t, json.Unmarshal(stdout.Bytes(), &decoded))
	assert.Equal(t, len(decoded), 1)
	assert.Equal(t, decoded[0]["full_name"], "octocat/Hello-World")
}

func TestFailedValidator(t *testing.T) {
	cmd, _, _ := scaffoldCMD("http://127.0.0.1:0", func(_ *cobra.Command, _ []string) error {
		return fmt.Errorf("no API key configured")
	})
	cmd.SetArgs([]string{"list", "octocat"})

	assert.Error(t, cmd.Execute(), "no API key configured")
}

func TestDocsSplitsFullName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, "/api/documentation/generate-project-docs")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		var req map[string]interface{}
		assert.NilError(t, json.Unmarshal(body, &req))
		// The owner and repo come from splitting the full name on '/'.
		assert.Equal(t, req["owner"], "octocat")
		assert.Equal(t, req["repo"], "Hello-World")
		assert.Equal(t, req["branch"], "main")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pdf": "JVBERi0xLjQ=", "setup_instructions": "", "architecture_docs": "", "codebase_map": null, "repository_info": {}}`))
	}))
	defer server.Close()

	cmd, stdout, fs := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"docs", "octocat/Hello-World", "-o", "out.pdf"})

	assert.NilError(t, cmd.Execute())
	assert.Check(t, strings.Contains(stdout.String(), "out.pdf"))

	written, err := afero.ReadFile(fs, "out.pdf")
	assert.NilError(t, err)
	assert.Equal(t, string(written), "%PDF-1.4")
}

func TestDocsRejectsPartialNameBeforeAnyCall(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	cmd, _, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"docs", "not-a-full-name"})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "expected a full repository name")
	assert.Equal(t, calls, 0)
}

func TestFileWritesOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path": "main.go", "content": "package main\n", "size": 13, "language": "Go", "encoding": "base64"}`))
	}))
	defer server.Close()

	cmd, _, fs := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"file", "octocat", "Hello-World", "main.go", "-o", "main.go"})

	assert.NilError(t, cmd.Execute())
	written, err := afero.ReadFile(fs, "main.go")
	assert.NilError(t, err)
	assert.Equal(t, string(written), "package main\n")
}

func TestAskRejectsBlankQuestion(t *testing.T) {
	cmd, _, _ := scaffoldCMD("http://127.0.0.1:0", nil)
	cmd.SetArgs([]string{"ask", "--repo", "octocat/Hello-World", "   "})

	assert.Error(t, cmd.Execute(), "the question cannot be blank")
}

func TestAskPrintsAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.Path, "/api/documentation/chat-with-repo")
		assert.Equal(t, r.URL.Query().Get("repo_name"), "octocat/Hello-World")
		assert.Equal(t, r.URL.Query().Get("query"), "How do I run the tests?")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response": "Run go test ./...", "sources": [{"path": "README.md"}], "context": {}}`))
	}))
	defer server.Close()

	cmd, stdout, _ := scaffoldCMD(server.URL, nil)
	cmd.SetArgs([]string{"ask", "--repo", "octocat/Hello-World", "How", "do", "I", "run", "the", "tests?"})

	assert.NilError(t, cmd.Execute())
	assert.Check(t, strings.Contains(stdout.String(), "Run go test ./..."))
	assert.Check(t, strings.Contains(stdout.String(), "1 indexed snippets"))
}
