package code

import (
	"net/url"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type codeRestClient struct {
	client *rest.Client
}

var _ CodeClient = &codeRestClient{}

// NewCodeRestClient returns a new codeRestClient satisfying the CodeClient
// interface via the `/api/code` route group.
func NewCodeRestClient(config *settings.Config) CodeClient {
	return &codeRestClient{
		client: rest.New(config.Host, "api/code", config),
	}
}

type executeRequest struct {
	Code      string `json:"code"`
	Language  string `json:"language"`
	InputData string `json:"input_data"`
}

// Execute runs code remotely and returns its captured output. Long runs are
// bounded only by the shared client's transport timeout.
func (c *codeRestClient) Execute(code, language, input string) (*ExecutionResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "execute"}, &executeRequest{
		Code:      code,
		Language:  language,
		InputData: input,
	})
	if err != nil {
		return nil, err
	}

	var resp ExecutionResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *codeRestClient) Generate(request GenerateRequest) (*GenerateResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "generate"}, &request)
	if err != nil {
		return nil, err
	}

	var resp GenerateResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *codeRestClient) Optimize(request OptimizeRequest) (*OptimizeResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "optimize"}, &request)
	if err != nil {
		return nil, err
	}

	var resp OptimizeResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *codeRestClient) Debug(request DebugRequest) (*DebugResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "debug"}, &request)
	if err != nil {
		return nil, err
	}

	var resp DebugResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Explain sends code and language as query parameters; the endpoint takes no
// body.
func (c *codeRestClient) Explain(code, language string) (*ExplainResult, error) {
	urlParams := url.Values{}
	urlParams.Add("code", code)
	urlParams.Add("language", language)

	req, err := c.client.NewRequest("POST", &url.URL{Path: "explain", RawQuery: urlParams.Encode()}, nil)
	if err != nil {
		return nil, err
	}

	var resp ExplainResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SupportedLanguages fetches the server's language list. Every call is a
// fresh round trip; nothing is cached client-side.
func (c *codeRestClient) SupportedLanguages() (*Languages, error) {
	req, err := c.client.NewRequest("GET", &url.URL{Path: "supported-languages"}, nil)
	if err != nil {
		return nil, err
	}

	var resp Languages
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
