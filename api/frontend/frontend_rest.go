package frontend

import (
	"net/url"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type frontendRestClient struct {
	client *rest.Client
}

var _ FrontendClient = &frontendRestClient{}

// NewFrontendRestClient returns a new frontendRestClient satisfying the
// FrontendClient interface via the `/api/ui` route group.
func NewFrontendRestClient(config *settings.Config) FrontendClient {
	return &frontendRestClient{
		client: rest.New(config.Host, "api/ui", config),
	}
}

func (c *frontendRestClient) GenerateProject(request ProjectRequest) (*ProjectResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "generate-ui"}, &request)
	if err != nil {
		return nil, err
	}

	var resp ProjectResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *frontendRestClient) GenerateComponent(request ComponentRequest) (*ComponentResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "generate-component"}, &request)
	if err != nil {
		return nil, err
	}

	var resp ComponentResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *frontendRestClient) Preview(request PreviewRequest) (*PreviewResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "preview"}, &request)
	if err != nil {
		return nil, err
	}

	var resp PreviewResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
