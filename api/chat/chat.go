package chat

// Message roles. The server only knows these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the full ordered history of a session plus its repository
// context. The whole history is sent on every turn; the server keeps no
// session state.
type Request struct {
	Messages []Message `json:"messages"`
	RepoName string    `json:"repo_name,omitempty"`
	UseRAG   bool      `json:"use_rag"`
}

// Response is the assistant's reply. Sources lists the RAG snippets the
// answer was grounded on, when a repository context was given.
type Response struct {
	Response string                   `json:"response"`
	Sources  []map[string]interface{} `json:"sources"`
}

// ChatClient is the interface to the multi-turn AI chat endpoint.
type ChatClient interface {
	Chat(req Request) (*Response, error)
}
