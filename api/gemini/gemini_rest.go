package gemini

import (
	"net/url"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type geminiRestClient struct {
	geminiKey string
	client    *rest.Client
}

var _ GeminiClient = &geminiRestClient{}

// NewGeminiRestClient returns a new geminiRestClient satisfying the
// GeminiClient interface via the `/api/gemini` route group. A user-supplied
// Gemini key from settings rides along in the request body; when absent the
// server falls back to its own key.
func NewGeminiRestClient(config *settings.Config) GeminiClient {
	return &geminiRestClient{
		geminiKey: config.GeminiKey,
		client:    rest.New(config.Host, "api/gemini", config),
	}
}

type reviewRequest struct {
	Code      string `json:"code"`
	Language  string `json:"language,omitempty"`
	Context   string `json:"context,omitempty"`
	GeminiKey string `json:"gemini_api_key,omitempty"`
}

func (c *geminiRestClient) CodeReview(code, language, context string) (*ReviewResult, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "code-review"}, &reviewRequest{
		Code:      code,
		Language:  language,
		Context:   context,
		GeminiKey: c.geminiKey,
	})
	if err != nil {
		return nil, err
	}

	var resp ReviewResult
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

type queryRequest struct {
	Query         string `json:"query"`
	DBType        string `json:"db_type"`
	SchemaContext string `json:"schema_context,omitempty"`
	GeminiKey     string `json:"gemini_api_key,omitempty"`
}

func (c *geminiRestClient) ExplainQuery(query, dbType, schemaContext string) (*QueryExplanation, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "explain-database-query"}, &queryRequest{
		Query:         query,
		DBType:        dbType,
		SchemaContext: schemaContext,
		GeminiKey:     c.geminiKey,
	})
	if err != nil {
		return nil, err
	}

	var resp QueryExplanation
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
