// Package conversation builds the outgoing message sequence for enriched
// chat requests: extracting the user's question, composing the advisor
// system prompt, and splicing it into the transcript.
package conversation

import (
	"fmt"
	"strings"

	"routine-advisor/internal/llm"
	"routine-advisor/internal/search"
)

// Inject returns a new message sequence with injected as its sole system
// message.
//
// Splice policy: the injected message comes first, followed by every
// original non-system message in original order. Any pre-existing system
// messages are dropped. The input slice is never mutated.
func Inject(original []llm.Message, injected llm.Message) []llm.Message {
	out := make([]llm.Message, 0, len(original)+1)
	out = append(out, injected)
	for _, msg := range original {
		if msg.Role == llm.RoleSystem {
			continue
		}
		out = append(out, msg)
	}
	return out
}

// LastUserContent returns the content of the most recent user message, or
// the empty string when the transcript has none.
func LastUserContent(messages []llm.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == llm.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// BuildSystemPrompt composes the advisor instruction that embeds the
// aggregated search context. When the context carries source URLs, an
// enumerated citation list is appended so the model can cite [1], [2], ...
// against it.
func BuildSystemPrompt(sc search.Context) string {
	var b strings.Builder

	b.WriteString("You are a professional beauty advisor. I've searched the web for current information related to the user's question. Use this information to provide an up-to-date response. Include relevant links and cite your sources with [1], [2], etc.\n\n")
	b.WriteString("Current Web Search Results:\n")
	b.WriteString(sc.Text)
	b.WriteString("\n")

	if len(sc.SourceURLs) > 0 {
		b.WriteString("\nSource URLs:\n")
		for i, url := range sc.SourceURLs {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, url)
		}
	}

	b.WriteString("\nPlease provide a helpful response based on both this current information and your knowledge of beauty products and routines.")
	return b.String()
}
