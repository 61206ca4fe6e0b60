package chat

import (
	"net/url"

	"github.com/devsensei-ai/devsensei-cli/api/rest"
	"github.com/devsensei-ai/devsensei-cli/settings"
)

type chatRestClient struct {
	client *rest.Client
}

var _ ChatClient = &chatRestClient{}

// NewChatRestClient returns a new chatRestClient satisfying the ChatClient
// interface via the `/api/ai` route group.
func NewChatRestClient(config *settings.Config) ChatClient {
	return &chatRestClient{
		client: rest.New(config.Host, "api/ai", config),
	}
}

func (c *chatRestClient) Chat(request Request) (*Response, error) {
	req, err := c.client.NewRequest("POST", &url.URL{Path: "chat"}, &request)
	if err != nil {
		return nil, err
	}

	var resp Response
	if _, err := c.client.DoRequest(req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
