package frontend

// Frameworks the server's UI builder accepts. Enumerated here for prompting
// only; the server validates the actual value.
var Frameworks = []string{"react", "vue", "angular", "vanilla"}

// Styling approaches the server's UI builder accepts.
var Stylings = []string{"tailwind", "css", "scss", "styled-components"}

// ProjectRequest asks the server to scaffold a whole UI project.
type ProjectRequest struct {
	ProjectName string   `json:"project_name"`
	Description string   `json:"description"`
	Framework   string   `json:"framework"`
	Styling     string   `json:"styling"`
	Components  []string `json:"components,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// ProjectResult describes the generated project and where to fetch its
// archive from.
type ProjectResult struct {
	ProjectName       string   `json:"project_name"`
	Framework         string   `json:"framework"`
	Styling           string   `json:"styling"`
	Structure         string   `json:"structure"`
	Components        []string `json:"components"`
	DownloadURL       string   `json:"download_url"`
	SetupInstructions []string `json:"setup_instructions"`
}

// ComponentRequest asks for a single UI component.
type ComponentRequest struct {
	ComponentName string                 `json:"component_name"`
	Description   string                 `json:"description"`
	Framework     string                 `json:"framework"`
	Props         map[string]interface{} `json:"props,omitempty"`
	Styling       string                 `json:"styling"`
}

// ComponentResult is the generated component with a usage example.
type ComponentResult struct {
	ComponentName string `json:"component_name"`
	Code          string `json:"code"`
	Framework     string `json:"framework"`
	Styling       string `json:"styling"`
	UsageExample  string `json:"usage_example"`
	Explanation   string `json:"explanation"`
}

// PreviewRequest bundles raw HTML/CSS/JS for server-side preview assembly.
type PreviewRequest struct {
	HTML       string `json:"html"`
	CSS        string `json:"css"`
	JavaScript string `json:"javascript,omitempty"`
}

// PreviewResult points at the assembled preview page.
type PreviewResult struct {
	PreviewURL       string `json:"preview_url"`
	HTMLSize         int    `json:"html_size"`
	PreviewAvailable bool   `json:"preview_available"`
}

// FrontendClient is the interface to the UI builder endpoints.
type FrontendClient interface {
	GenerateProject(req ProjectRequest) (*ProjectResult, error)
	GenerateComponent(req ComponentRequest) (*ComponentResult, error)
	Preview(req PreviewRequest) (*PreviewResult, error)
}
