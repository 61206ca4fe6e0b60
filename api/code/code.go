package code

// Execution statuses reported by the server.
const (
	StatusSuccess     = "success"
	StatusError       = "error"
	StatusTimeout     = "timeout"
	StatusSyntaxError = "syntax_error"
)

// ExecutionResult is the outcome of one code execution request.
type ExecutionResult struct {
	Output        string  `json:"output"`
	Error         string  `json:"error"`
	ExecutionTime float64 `json:"execution_time"`
	Status        string  `json:"status"`
}

// GenerateRequest asks the server to write code from a natural-language prompt.
type GenerateRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
	Context  string `json:"context,omitempty"`
}

// GenerateResult carries the generated code and a short description of it.
type GenerateResult struct {
	Code        string `json:"code"`
	Language    string `json:"language"`
	Description string `json:"description"`
}

// OptimizeRequest asks for a rewrite of existing code toward a goal.
// OptimizationType is one of "performance", "memory" or "readability"; the
// server owns validation of the value.
type OptimizeRequest struct {
	Code             string `json:"code"`
	Language         string `json:"language"`
	OptimizationType string `json:"optimization_type"`
}

// OptimizeResult pairs the rewritten code with the server's explanation.
type OptimizeResult struct {
	OriginalCode     string `json:"original_code"`
	OptimizedCode    string `json:"optimized_code"`
	Explanation      string `json:"explanation"`
	OptimizationType string `json:"optimization_type"`
}

// DebugRequest asks the server to fix broken code.
type DebugRequest struct {
	Code           string `json:"code"`
	Language       string `json:"language"`
	ErrorMessage   string `json:"error_message,omitempty"`
	ExpectedOutput string `json:"expected_output,omitempty"`
}

// DebugResult carries the fixed code, the fix explanation and the result of
// the server's own test run of the fix.
type DebugResult struct {
	OriginalCode string           `json:"original_code"`
	FixedCode    string           `json:"fixed_code"`
	Explanation  string           `json:"explanation"`
	TestResult   *ExecutionResult `json:"test_result"`
	BugsFound    bool             `json:"bugs_found"`
}

// ExplainResult is the server's explanation of a piece of code.
type ExplainResult struct {
	Explanation string `json:"explanation"`
	Language    string `json:"language"`
}

// Languages lists what the playground can run and what the frontend builder
// can target.
type Languages struct {
	Languages          []string `json:"languages"`
	FrontendFrameworks []string `json:"frontend_frameworks"`
}

// CodeClient is the interface to interact with the code playground endpoints.
type CodeClient interface {
	Execute(code, language, input string) (*ExecutionResult, error)
	Generate(req GenerateRequest) (*GenerateResult, error)
	Optimize(req OptimizeRequest) (*OptimizeResult, error)
	Debug(req DebugRequest) (*DebugResult, error)
	Explain(code, language string) (*ExplainResult, error)
	SupportedLanguages() (*Languages, error)
}
