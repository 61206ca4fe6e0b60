package code

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/devsensei-ai/devsensei-cli/settings"
)

func testConfig(serverURL string) *settings.Config {
	return &settings.Config{
		Host:       serverURL,
		Token:      "fake-key",
		HTTPClient: http.DefaultClient,
	}
}

func TestExecute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "POST")
		assert.Equal(t, r.URL.String(), "/api/code/execute")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		var req map[string]interface{}
		assert.NilError(t, json.Unmarshal(body, &req))
		assert.Equal(t, req["language"], "python")
		assert.Equal(t, req["input_data"], "")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "success", "output": "hi\n", "error": "", "execution_time": 0.01}`))
	}))
	defer server.Close()

	client := NewCodeRestClient(testConfig(server.URL))
	result, err := client.Execute("print('hi')", "python", "")
	assert.NilError(t, err)
	assert.Check(t, cmp.DeepEqual(result, &ExecutionResult{
		Output:        "hi\n",
		Error:         "",
		ExecutionTime: 0.01,
		Status:        StatusSuccess,
	}))
}

func TestExecuteSyntaxError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "syntax_error", "output": "", "error": "Syntax error: invalid syntax", "execution_time": 0}`))
	}))
	defer server.Close()

	client := NewCodeRestClient(testConfig(server.URL))
	result, err := client.Execute("print(", "python", "")
	assert.NilError(t, err)
	assert.Equal(t, result.Status, StatusSyntaxError)
	assert.Equal(t, result.Error, "Syntax error: invalid syntax")
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.String(), "/api/code/generate")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		assert.Equal(t, string(body), `{"prompt":"fizzbuzz","language":"go"}`+"\n")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code": "package main", "language": "go", "description": "Generated go code for: fizzbuzz"}`))
	}))
	defer server.Close()

	client := NewCodeRestClient(testConfig(server.URL))
	result, err := client.Generate(GenerateRequest{Prompt: "fizzbuzz", Language: "go"})
	assert.NilError(t, err)
	assert.Equal(t, result.Code, "package main")
	assert.Equal(t, result.Description, "Generated go code for: fizzbuzz")
}

func TestDebug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.String(), "/api/code/debug")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"original_code": "x = 1/0",
			"fixed_code": "x = 1",
			"explanation": "Division by zero removed.",
			"bugs_found": true,
			"test_result": {"status": "success", "output": "", "error": "", "execution_time": 0.002}
		}`))
	}))
	defer server.Close()

	client := NewCodeRestClient(testConfig(server.URL))
	result, err := client.Debug(DebugRequest{Code: "x = 1/0", Language: "python", ErrorMessage: "ZeroDivisionError"})
	assert.NilError(t, err)
	assert.Equal(t, result.FixedCode, "x = 1")
	assert.Equal(t, result.BugsFound, true)
	assert.Equal(t, result.TestResult.Status, StatusSuccess)
}

func TestExplainUsesQueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "POST")
		assert.Equal(t, r.URL.Path, "/api/code/explain")
		assert.Equal(t, r.URL.Query().Get("code"), "print('hi')")
		assert.Equal(t, r.URL.Query().Get("language"), "python")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		assert.Equal(t, string(body), "")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"explanation": "Prints hi.", "language": "python"}`))
	}))
	defer server.Close()

	client := NewCodeRestClient(testConfig(server.URL))
	result, err := client.Explain("print('hi')", "python")
	assert.NilError(t, err)
	assert.Equal(t, result.Explanation, "Prints hi.")
}

func TestSupportedLanguagesNotCached(t *testing.T) {
	var calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, r.URL.String(), "/api/code/supported-languages")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"languages": ["python", "javascript", "go"], "frontend_frameworks": ["vanilla", "react", "vue", "angular"]}`))
	}))
	defer server.Close()

	client := NewCodeRestClient(testConfig(server.URL))

	first, err := client.SupportedLanguages()
	assert.NilError(t, err)
	second, err := client.SupportedLanguages()
	assert.NilError(t, err)

	// Two identical results, two round trips: the facade never caches.
	assert.Check(t, cmp.DeepEqual(first, second))
	assert.Equal(t, atomic.LoadInt32(&calls), int32(2))
	assert.Check(t, cmp.DeepEqual(first.Languages, []string{"python", "javascript", "go"}))
}
