package docs

import (
	"net/url"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type docsRestClient struct {
	client *rest.Client
}

var _ DocsClient = &docsRestClient{}

// NewDocsRestClient returns a new docsRestClient satisfying the DocsClient
// interface via the `/api/documentation` route group.
func NewDocsRestClient(config *settings.Config) DocsClient {
	return &docsRestClient{
		client: rest.New(config.Host, "api/documentation", config),
	}
}

func (c *docsRestClient) GenerateProjectDocs(request ProjectDocsRequest) (*ProjectDocsResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "generate-project-docs"}, &request)
	if err != nil {
		return nil, err
	}

	var resp ProjectDocsResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type codebaseMapRequest struct {
	Owner  string `json:"owner"`
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

func (c *docsRestClient) GenerateCodebaseMap(owner, repo, branch string) (*CodebaseMap, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "generate-codebase-map"}, &codebaseMapRequest{
		Owner:  owner,
		Repo:   repo,
		Branch: branch,
	})
	if err != nil {
		return nil, err
	}

	var resp CodebaseMap
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChatWithRepo asks a one-shot question about a repository. The endpoint
// takes its parameters in the query string, not the body.
func (c *docsRestClient) ChatWithRepo(repoName, query string) (*RepoChatResult, error) {
	urlParams := url.Values{}
	urlParams.Add("repo_name", repoName)
	urlParams.Add("query", query)

	req, err := c.client.NewRequest("POST", &url.URL{Path: "chat-with-repo", RawQuery: urlParams.Encode()}, nil)
	if err != nil {
		return nil, err
	}

	var resp RepoChatResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
