package repository

// RepositorySummary is one entry of a user's repository listing.
type RepositorySummary struct {
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Description   string `json:"description"`
	Language      string `json:"language"`
	Stars         int    `json:"stars"`
	Forks         int    `json:"forks"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
	URL           string `json:"url"`
}

// FileContent is the content of a single file fetched from a repository.
type FileContent struct {
	Path     string `json:"path"`
	Content  string `json:"content"`
	Size     int    `json:"size"`
	Language string `json:"language"`
	Encoding string `json:"encoding"`
}

// Analysis holds per-repository code statistics. RepoInfo is left opaque and
// decoded by the caller; the server owns its shape.
type Analysis struct {
	TotalFiles int                    `json:"total_files"`
	Languages  map[string]int         `json:"languages"`
	FileTypes  map[string]int         `json:"file_types"`
	TotalLines int                    `json:"total_lines"`
	RepoInfo   map[string]interface{} `json:"repo_info"`
}

// FileInfo describes one file of a scraped repository.
type FileInfo struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Type     string `json:"type"`
	Language string `json:"language"`
	Content  string `json:"content,omitempty"`
}

// Structure is the full scraped view of a repository.
type Structure struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Stars       int                    `json:"stars"`
	Language    string                 `json:"language"`
	Files       []FileInfo             `json:"files"`
	Structure   map[string]interface{} `json:"structure"`
}

// RepositoryClient is the interface to interact with the repository
// endpoints of the DevSensei server.
type RepositoryClient interface {
	ListRepositories(username string) ([]RepositorySummary, error)
	FileContent(username, repo, path string) (*FileContent, error)
	Analyze(username string, repositories []string) ([]Analysis, error)
	Scrape(username string, repositories []string) ([]Structure, error)
}
