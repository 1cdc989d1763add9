// Package conversation holds the chat window state independent of any UI.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/littlemoneyschool/tutor/backend/internal/model/chat"
)

// DefaultHistoryCap bounds the turns sent back to the server.
const DefaultHistoryCap = 20

// Apology is shown when the server could not be reached.
const Apology = "عذراً، حدث خطأ تقني! 😅 هل يمكنك المحاولة مرة أخرى؟ أنا هنا لأعلمك عن الأموال والأسهم! 💰📚"

// Resolver answers one message given the conversation so far.
type Resolver interface {
	Resolve(ctx context.Context, message string, history []chat.Turn) (string, error)
}

// userReplier is implemented by errors that carry a server-provided text.
type userReplier interface {
	UserReply() string
}

// Option customises a Manager.
type Option func(*Manager)

// WithHistoryCap overrides DefaultHistoryCap. Values below 2 are ignored.
func WithHistoryCap(n int) Option {
	return func(m *Manager) {
		if n >= 2 {
			m.historyCap = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// Manager owns the message list and rolling history. At most one request is in
// flight at a time.
type Manager struct {
	resolver   Resolver
	historyCap int
	now        func() time.Time

	mu        sync.RWMutex
	messages  []chat.Message
	history   []chat.Turn
	awaiting  bool
	listeners []func(count int)
}

// New creates a manager seeded with the welcome bot message.
func New(resolver Resolver, welcome string, opts ...Option) *Manager {
	m := &Manager{
		resolver:   resolver,
		historyCap: DefaultHistoryCap,
		now:        time.Now,
		messages:   make([]chat.Message, 0, 16),
	}
	for _, opt := range opts {
		opt(m)
	}
	if strings.TrimSpace(welcome) != "" {
		m.messages = append(m.messages, m.newMessage(welcome, chat.SenderBot))
	}
	return m
}

// OnChange registers fn to run, outside the lock, whenever the message list grows
// or the awaiting flag flips. count is the new message count.
func (m *Manager) OnChange(fn func(count int)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

// Submit sends text. It returns false, doing nothing, when text is blank or a
// request is already in flight. Otherwise the returned channel yields the bot
// message once and is closed.
func (m *Manager) Submit(ctx context.Context, text string) (<-chan chat.Message, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}

	m.mu.Lock()
	if m.awaiting {
		m.mu.Unlock()
		return nil, false
	}
	m.awaiting = true
	m.messages = append(m.messages, m.newMessage(text, chat.SenderUser))
	history := append([]chat.Turn(nil), m.history...)
	m.mu.Unlock()
	m.notify()

	out := make(chan chat.Message, 1)
	go m.exchange(ctx, text, history, out)
	return out, true
}

func (m *Manager) exchange(ctx context.Context, text string, history []chat.Turn, out chan<- chat.Message) {
	var bot chat.Message
	defer func() {
		m.mu.Lock()
		m.awaiting = false
		m.mu.Unlock()
		m.notify()

		out <- bot
		close(out)
	}()

	reply, err := m.resolve(ctx, text, history)

	m.mu.Lock()
	if err != nil {
		log.Printf("[conversation] resolve failed: %v", err)
		bot = m.newMessage(apologyFor(err), chat.SenderBot)
	} else {
		bot = m.newMessage(reply, chat.SenderBot)
		m.history = append(m.history,
			chat.Turn{Role: chat.RoleUser, Content: text},
			chat.Turn{Role: chat.RoleAssistant, Content: reply},
		)
		if len(m.history) > m.historyCap {
			m.history = append([]chat.Turn(nil), m.history[len(m.history)-m.historyCap:]...)
		}
	}
	m.messages = append(m.messages, bot)
	m.mu.Unlock()
}

func (m *Manager) resolve(ctx context.Context, text string, history []chat.Turn) (reply string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("conversation: resolver panicked: %v", rec)
		}
	}()

	reply, err = m.resolver.Resolve(ctx, text, history)
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("conversation: empty reply")
	}
	return reply, err
}

func apologyFor(err error) string {
	var ur userReplier
	if errors.As(err, &ur) {
		if text := strings.TrimSpace(ur.UserReply()); text != "" {
			return text
		}
	}
	return Apology
}

// Messages returns a copy of the message list in display order.
func (m *Manager) Messages() []chat.Message {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]chat.Message(nil), m.messages...)
}

// History returns a copy of the turns that will accompany the next request.
func (m *Manager) History() []chat.Turn {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]chat.Turn(nil), m.history...)
}

// Awaiting reports whether a request is in flight.
func (m *Manager) Awaiting() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.awaiting
}

func (m *Manager) notify() {
	m.mu.RLock()
	count := len(m.messages)
	listeners := slices.Clone(m.listeners)
	m.mu.RUnlock()

	for _, fn := range listeners {
		fn(count)
	}
}

// newMessage stamps a message. IDs are UUIDv7 so they sort by creation time.
func (m *Manager) newMessage(text string, sender chat.Sender) chat.Message {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return chat.Message{
		ID:        id.String(),
		Text:      text,
		Sender:    sender,
		Timestamp: m.now(),
	}
}
