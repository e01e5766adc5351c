package llm

// Message represents a single message in a chat conversation.
// Ordering is significant: the slice is the conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Message roles understood by the chat completions API.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Params holds generation parameters for chat completion requests.
type Params struct {
	// MaxTokens specifies the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls the randomness of the output.
	Temperature float64
}
