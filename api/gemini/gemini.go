package gemini

// ReviewResult is an AI code review of a snippet.
type ReviewResult struct {
	Review          string `json:"review"`
	HighlightedCode string `json:"highlighted_code"`
	Timestamp       string `json:"timestamp"`
}

// QueryExplanation explains a database query in plain language.
type QueryExplanation struct {
	Explanation      string `json:"explanation"`
	QueryType        string `json:"query_type"`
	HighlightedQuery string `json:"highlighted_query"`
}

// GeminiClient is the interface to the direct Gemini helper endpoints.
type GeminiClient interface {
	CodeReview(code, language, context string) (*ReviewResult, error)
	ExplainQuery(query, dbType, schemaContext string) (*QueryExplanation, error)
}
