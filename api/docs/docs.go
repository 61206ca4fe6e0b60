package docs

// ProjectDocsRequest selects which sections of the generated documentation to
// include. Branch defaults to "main" server-side when empty, but callers
// normally fill it from the repository's default branch.
type ProjectDocsRequest struct {
	Owner               string `json:"owner"`
	Repo                string `json:"repo"`
	Branch              string `json:"branch"`
	IncludeSetup        bool   `json:"include_setup"`
	IncludeArchitecture bool   `json:"include_architecture"`
	IncludeAPIDocs      bool   `json:"include_api_docs"`
	IncludeCodebaseMap  bool   `json:"include_codebase_map"`
}

// CodebaseMap is the visualization the server renders for a repository.
// Image is base64-encoded PNG data; the rest of the payload is opaque.
type CodebaseMap struct {
	Image string                 `json:"image"`
	Stats map[string]interface{} `json:"stats"`
}

// ProjectDocsResult is the generated documentation bundle. PDF is the
// base64-encoded document; it is decoded exactly once, when written to disk.
type ProjectDocsResult struct {
	PDF               string                 `json:"pdf"`
	SetupInstructions string                 `json:"setup_instructions"`
	ArchitectureDocs  string                 `json:"architecture_docs"`
	CodebaseMap       *CodebaseMap           `json:"codebase_map"`
	RepositoryInfo    map[string]interface{} `json:"repository_info"`
}

// RepoChatResult is the assistant's answer about a repository, with the RAG
// sources it drew from when the repository is indexed.
type RepoChatResult struct {
	Response string                   `json:"response"`
	Sources  []map[string]interface{} `json:"sources"`
	Context  map[string]interface{}   `json:"context"`
}

// DocsClient is the interface to interact with the documentation endpoints.
type DocsClient interface {
	GenerateProjectDocs(req ProjectDocsRequest) (*ProjectDocsResult, error)
	GenerateCodebaseMap(owner, repo, branch string) (*CodebaseMap, error)
	ChatWithRepo(repoName, query string) (*RepoChatResult, error)
}
