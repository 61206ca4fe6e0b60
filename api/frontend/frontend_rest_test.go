package frontend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
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

func TestGenerateProject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.Method, "POST")
		assert.Equal(t, r.URL.String(), "/api/ui/generate-ui")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		var req map[string]interface{}
		assert.NilError(t, json.Unmarshal(body, &req))
		assert.Equal(t, req["project_name"], "todo-app")
		assert.Equal(t, req["framework"], "react")
		assert.Equal(t, req["styling"], "tailwind")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"project_name": "todo-app",
			"framework": "react",
			"styling": "tailwind",
			"structure": "src/\n  components/",
			"components": ["TodoList", "TodoItem"],
			"download_url": "/api/ui/download/todo-app",
			"setup_instructions": ["1. Extract todo-app.zip", "2. cd todo-app", "3. npm install", "4. npm run dev"]
		}`))
	}))
	defer server.Close()

	client := NewFrontendRestClient(testConfig(server.URL))
	result, err := client.GenerateProject(ProjectRequest{
		ProjectName: "todo-app",
		Description: "A todo list",
		Framework:   "react",
		Styling:     "tailwind",
	})
	assert.NilError(t, err)
	assert.Check(t, cmp.DeepEqual(result.Components, []string{"TodoList", "TodoItem"}))
	assert.Equal(t, result.DownloadURL, "/api/ui/download/todo-app")
	assert.Equal(t, len(result.SetupInstructions), 4)
}

func TestGenerateComponent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.String(), "/api/ui/generate-component")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		var req map[string]interface{}
		assert.NilError(t, json.Unmarshal(body, &req))
		assert.Equal(t, req["component_name"], "Navbar")
		props, ok := req["props"].(map[string]interface{})
		assert.Check(t, ok)
		assert.Equal(t, props["title"], "string")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"component_name": "Navbar",
			"code": "export const Navbar = () => null",
			"framework": "react",
			"styling": "tailwind",
			"usage_example": "<Navbar title=\"Home\" />",
			"explanation": "A responsive navbar."
		}`))
	}))
	defer server.Close()

	client := NewFrontendRestClient(testConfig(server.URL))
	result, err := client.GenerateComponent(ComponentRequest{
		ComponentName: "Navbar",
		Description:   "Top navigation",
		Framework:     "react",
		Styling:       "tailwind",
		Props:         map[string]interface{}{"title": "string"},
	})
	assert.NilError(t, err)
	assert.Equal(t, result.Code, "export const Navbar = () => null")
	assert.Equal(t, result.UsageExample, `<Navbar title="Home" />`)
}

func TestPreview(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, r.URL.String(), "/api/ui/preview")

		body, err := io.ReadAll(r.Body)
		assert.NilError(t, err)
		assert.Equal(t, string(body), `{"html":"<h1>hi</h1>","css":"h1 { color: red }"}`+"\n")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"preview_url": "/api/ui/preview-file?path=/tmp/x.html", "html_size": 512, "preview_available": true}`))
	}))
	defer server.Close()

	client := NewFrontendRestClient(testConfig(server.URL))
	result, err := client.Preview(PreviewRequest{HTML: "<h1>hi</h1>", CSS: "h1 { color: red }"})
	assert.NilError(t, err)
	assert.Equal(t, result.PreviewAvailable, true)
	assert.Equal(t, result.PreviewURL, "/api/ui/preview-file?path=/tmp/x.html")
}
