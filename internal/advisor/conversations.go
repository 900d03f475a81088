package advisor

import "sync"

// conversation owns the accumulated messages and the last turn's state
// for one conversation id. Its mutex serializes turns on the same id;
// turns on different ids run independently.
type conversation struct {
	mu       sync.Mutex
	messages []Message
	last     *State
}

// ConversationStore is process-wide keyed conversation memory. It is an
// injected component with a lifecycle spanning the service, not a
// package-level singleton. Conversations are created on first use and
// never evicted.
type ConversationStore struct {
	mu            sync.Mutex
	conversations map[string]*conversation
}

// NewConversationStore creates an empty conversation store.
func NewConversationStore() *ConversationStore {
	return &ConversationStore{conversations: make(map[string]*conversation)}
}

func (s *ConversationStore) getOrCreate(id string) *conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[id]
	if !ok {
		conv = &conversation{}
		s.conversations[id] = conv
	}
	return conv
}

// History returns a copy of the message history for id, oldest first.
// An unknown id yields an empty history.
func (s *ConversationStore) History(id string) []Message {
	s.mu.Lock()
	conv, ok := s.conversations[id]
	s.mu.Unlock()
	if !ok {
		return []Message{}
	}

	conv.mu.Lock()
	defer conv.mu.Unlock()
	out := make([]Message, len(conv.messages))
	copy(out, conv.messages)
	return out
}

// Len returns the number of conversations held.
func (s *ConversationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}
