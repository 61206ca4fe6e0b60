package repository

import (
	"net/url"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type repositoryRestClient struct {
	githubToken string
	client      *rest.Client
}

var _ RepositoryClient = &repositoryRestClient{}

// NewRepositoryRestClient returns a new repositoryRestClient satisfying the
// RepositoryClient interface via the `/api/github` route group.
func NewRepositoryRestClient(config *settings.Config) RepositoryClient {
	return &repositoryRestClient{
		githubToken: config.GitHubToken,
		client:      rest.New(config.Host, "api/github", config),
	}
}

type listRepositoriesResponse struct {
	Username     string              `json:"username"`
	TotalRepos   int                 `json:"total_repos"`
	Repositories []RepositorySummary `json:"repositories"`
}

// ListRepositories returns every repository of the given GitHub user, in the
// order the server sends them.
func (c *repositoryRestClient) ListRepositories(username string) ([]RepositorySummary, error) {
	urlParams := url.Values{}
	urlParams.Add("username", username)

	req, err := c.client.NewRequest("GET", &url.URL{Path: "user/repos", RawQuery: urlParams.Encode()}, nil)
	if err != nil {
		return nil, err
	}

	var resp listRepositoriesResponse
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return resp.Repositories, nil
}

// FileContent fetches one file of a repository as decoded text.
func (c *repositoryRestClient) FileContent(username, repo, path string) (*FileContent, error) {
	urlParams := url.Values{}
	urlParams.Add("username", username)
	urlParams.Add("repo", repo)
	urlParams.Add("file_path", path)

	req, err := c.client.NewRequest("GET", &url.URL{Path: "file-content", RawQuery: urlParams.Encode()}, nil)
	if err != nil {
		return nil, err
	}

	var resp FileContent
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type repositoriesRequest struct {
	Username     string   `json:"username"`
	Repositories []string `json:"repositories"`
	GitHubToken  string   `json:"github_token,omitempty"`
}

// Analyze runs code statistics over the named repositories.
func (c *repositoryRestClient) Analyze(username string, repositories []string) ([]Analysis, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "analyze"}, &repositoriesRequest{
		Username:     username,
		Repositories: repositories,
		GitHubToken:  c.githubToken,
	})
	if err != nil {
		return nil, err
	}

	var resp []Analysis
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Scrape fetches the file inventory and tree structure of the named
// repositories.
func (c *repositoryRestClient) Scrape(username string, repositories []string) ([]Structure, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "scrape"}, &repositoriesRequest{
		Username:     username,
		Repositories: repositories,
		GitHubToken:  c.githubToken,
	})
	if err != nil {
		return nil, err
	}

	var resp []Structure
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
