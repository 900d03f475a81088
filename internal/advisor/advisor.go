package advisor

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/JonMunkholm/PhoneAdvisor/internal/llm"
	"github.com/JonMunkholm/PhoneAdvisor/internal/registry"
	"github.com/JonMunkholm/PhoneAdvisor/internal/store"
)

// Executor runs SQL against the phone catalog. *store.Store satisfies
// it; tests substitute stubs.
type Executor interface {
	Query(ctx context.Context, sql string) ([]store.Row, error)
}

// Advisor answers questions about the phone catalog, keeping
// per-conversation history across turns.
type Advisor struct {
	provider      llm.Provider
	db            Executor
	examples      []registry.Example
	conversations *ConversationStore
	log           *zap.Logger
}

// New creates an Advisor. conversations may be shared with other
// consumers of the same history (e.g. the HTTP layer's thread view).
func New(provider llm.Provider, db Executor, examples []registry.Example, conversations *ConversationStore, log *zap.Logger) *Advisor {
	if conversations == nil {
		conversations = NewConversationStore()
	}
	return &Advisor{
		provider:      provider,
		db:            db,
		examples:      examples,
		conversations: conversations,
		log:           log,
	}
}

// Ask runs one turn: the question is appended to the conversation, the
// workflow traversed once, and the resulting assistant answer appended.
// An empty conversationID starts a fresh conversation under a generated
// id. Ask never fails past its boundary; error turns yield an
// explanatory answer.
func (a *Advisor) Ask(ctx context.Context, question, conversationID string) Result {
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	conv := a.conversations.getOrCreate(conversationID)
	conv.mu.Lock()
	defer conv.mu.Unlock()

	st := &State{
		Messages: append(append([]Message{}, conv.messages...), Message{Role: RoleUser, Content: question}),
	}
	a.runTurn(ctx, st)

	conv.messages = st.Messages
	conv.last = st

	a.log.Info("turn completed",
		zap.String("conversation_id", conversationID),
		zap.Bool("errored", st.Err != nil),
		zap.Int("rows", len(st.Rows)))

	rows := st.Rows
	if rows == nil {
		rows = []store.Row{}
	}
	return Result{
		Answer:         st.FinalAnswer,
		SQLQuery:       st.SQLQuery,
		Rows:           rows,
		ConversationID: conversationID,
	}
}

// History returns the message history for a conversation id.
func (a *Advisor) History(conversationID string) []Message {
	return a.conversations.History(conversationID)
}
