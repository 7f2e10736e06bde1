// Package dictionary implements the lookup service: it extracts a candidate
// word from free-form chat text, queries the Free Dictionary API, and
// renders the result as human-readable text. Lookup failures are
// conversational outcomes, never errors.
package dictionary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// DefaultAgentName is the display name reported to the platform.
const DefaultAgentName = "SmartDict Bot"

// wordPrefixes are checked in order against the lowered text; the first
// match wins, so "meaning of grace" extracts "of" (matching "meaning "),
// while "definition of grace" extracts "grace".
var wordPrefixes = []string{
	"define ", "meaning ", "what is ", "whats ",
	"definition of ", "meaning of ", "define: ", "meaning: ",
}

const helpMessage = "**SmartDict Bot - How to Use**\n\n" +
	"I can help you look up word definitions! Here's how:\n\n" +
	"- `define [word]` - Get full definition\n" +
	"- `meaning [word]` - Get meaning\n" +
	"- `[word]` - Just type any word\n" +
	"- `help` - Show this message\n\n" +
	"Examples:\n" +
	"- define ephemeral\n" +
	"- meaning serendipity\n" +
	"- eloquent"

const noWordPrompt = "Please provide a word to look up. Type 'help' for usage instructions."

// Agent turns free-form chat text into dictionary lookups. It holds no
// per-request state; one instance serves the whole process.
type Agent struct {
	name   string
	client *Client
}

// AgentOption customizes the agent.
type AgentOption func(*Agent)

// WithName overrides the display name.
func WithName(name string) AgentOption {
	return func(a *Agent) {
		name = strings.TrimSpace(name)
		if name != "" {
			a.name = name
		}
	}
}

// WithClient overrides the dictionary API client.
func WithClient(client *Client) AgentOption {
	return func(a *Agent) {
		if client != nil {
			a.client = client
		}
	}
}

// NewAgent constructs the dictionary agent.
func NewAgent(opts ...AgentOption) *Agent {
	a := &Agent{
		name:   DefaultAgentName,
		client: NewClient(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// Process handles one chat message and always returns readable text.
func (a *Agent) Process(ctx context.Context, message string) string {
	trimmed := strings.TrimSpace(message)
	lower := strings.ToLower(trimmed)

	switch lower {
	case "help", "/help", "how to use":
		return helpMessage
	}

	switch lower {
	case "hello", "hi", "hey", "greetings":
		return fmt.Sprintf("Hello! I'm %s. Send me any word or type 'help' to learn how to use me!", a.name)
	}

	word := extractWord(trimmed)
	if word == "" {
		return noWordPrompt
	}
	return a.lookup(ctx, word)
}

// extractWord pulls the lookup candidate out of the trimmed message. The
// prefix match is case-insensitive; the returned token keeps its case.
func extractWord(message string) string {
	lower := strings.ToLower(message)

	for _, prefix := range wordPrefixes {
		// A bare command ("define") is a prefix with an empty remainder,
		// not a lookup of the command word itself.
		if lower == strings.TrimRight(prefix, " ") {
			return ""
		}
		if strings.HasPrefix(lower, prefix) {
			fields := strings.Fields(message[len(prefix):])
			if len(fields) == 0 {
				return ""
			}
			return fields[0]
		}
	}

	fields := strings.Fields(message)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// lookup queries the dictionary API and maps every failure to a fixed
// user-facing message.
func (a *Agent) lookup(ctx context.Context, word string) string {
	log.Printf("[Dict] Looking up: %s", word)

	entries, err := a.client.Entries(ctx, word)
	var statusErr *StatusError
	switch {
	case errors.Is(err, ErrNotFound):
		return fmt.Sprintf("Sorry, I couldn't find '%s' in my dictionary. Please check the spelling.", word)
	case errors.As(err, &statusErr):
		return fmt.Sprintf("I had trouble looking up '%s'. Please try again later.", word)
	case isTimeout(err):
		return fmt.Sprintf("Request timed out while looking up '%s'. Please try again.", word)
	case err != nil:
		log.Printf("[Dict] Lookup error: %v", err)
		return "An unexpected error occurred. Please try again."
	}

	if len(entries) == 0 {
		return fmt.Sprintf("No definition found for '%s'.", word)
	}
	return formatDefinition(word, entries[0])
}
