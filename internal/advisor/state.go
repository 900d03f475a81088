// Package advisor implements the question-answering workflow: a state
// machine that turns a natural-language question into SQL via a model
// call, executes it against the phone catalog, and summarizes the rows
// in prose, keeping per-conversation history across turns.
package advisor

import "github.com/JonMunkholm/PhoneAdvisor/internal/store"

// Message roles. System messages are accepted in history but the
// workflow only ever appends user and assistant messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one role-tagged utterance in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State carries one turn through the workflow. Messages is append-only
// in conversation order; exactly one of FinalAnswer (always) or Err
// (on failed turns, alongside the synthesized error answer) describes
// the outcome at the end of a turn.
type State struct {
	Messages    []Message
	Question    string
	SQLQuery    string
	Rows        []store.Row
	FinalAnswer string
	Err         error
}

func (s *State) appendAssistant(content string) {
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: content})
}

// Result is the caller-facing outcome of one turn.
type Result struct {
	Answer         string      `json:"answer"`
	SQLQuery       string      `json:"sql_query"`
	Rows           []store.Row `json:"results"`
	ConversationID string      `json:"conversation_id"`
}
