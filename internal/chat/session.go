// Package chat holds the client side of a support conversation: an
// append-only transcript and at most one outstanding request.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

const (
	GreetingText = "Hello! I'm here to help you with information about Iron Lady's leadership programs. You can ask me about program details, duration, certification, mentors, and more!"

	// NoReplyText is shown when the server answered without any reply text.
	NoReplyText = "I apologize, but I'm having trouble connecting to our services right now. Please try again later."

	// OfflineText is shown when the request could not be completed at all.
	OfflineText = "I'm currently offline. Here are some quick facts: Our flagship program is a 12-week comprehensive leadership course with industry mentors, available online and hybrid. We offer certifications in Strategic Leadership, Team Management, and Executive Communication."
)

// QuickQuestions are suggested prompts for a fresh conversation.
var QuickQuestions = []string{
	"What programs do you offer?",
	"How long are the courses?",
	"Do you provide certifications?",
	"Who are the mentors?",
	"What's the mode of delivery?",
}

var (
	ErrBusy       = errors.New("a message is already being sent")
	ErrEmptyInput = errors.New("message is empty")
)

type Message struct {
	ID        int
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Clock formats the timestamp the way the widget shows it.
func (m Message) Clock() string {
	return m.Timestamp.Format("15:04")
}

// Transport delivers one user message and returns the reply text. A returned
// error means the call itself could not be completed. An empty reply with a
// nil error means the server answered without reply text.
type Transport interface {
	Send(ctx context.Context, text string) (string, error)
}

// State is the request lifecycle of a session: Idle, Pending, Succeeded or Failed.
type State interface {
	isState()
}

type Idle struct{}

type Pending struct {
	Since time.Time
}

type Succeeded struct {
	Reply Message
}

type Failed struct {
	Err   error
	Reply Message
}

func (Idle) isState()      {}
func (Pending) isState()   {}
func (Succeeded) isState() {}
func (Failed) isState()    {}

type Session struct {
	transport Transport
	now       func() time.Time

	mu       sync.Mutex
	messages []Message
	nextID   int
	state    State
}

func NewSession(transport Transport) *Session {
	s := &Session{
		transport: transport,
		now:       time.Now,
		nextID:    1,
		state:     Idle{},
	}
	s.appendLocked(GreetingText, SenderBot)
	return s
}

// Messages returns a copy of the transcript in order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Message(nil), s.messages...)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy reports whether a submission is outstanding.
func (s *Session) Busy() bool {
	_, pending := s.State().(Pending)
	return pending
}

// Submit sends text and appends exactly one bot reply. It is a no-op returning
// ErrEmptyInput for blank text and ErrBusy while another submission is pending.
// Transport failures are not returned; they become the offline reply.
func (s *Session) Submit(ctx context.Context, text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyInput
	}

	s.mu.Lock()
	if _, pending := s.state.(Pending); pending {
		s.mu.Unlock()
		return Message{}, ErrBusy
	}
	s.appendLocked(text, SenderUser)
	s.state = Pending{Since: s.now()}
	s.mu.Unlock()

	replyText, err := s.transport.Send(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		reply := s.appendLocked(OfflineText, SenderBot)
		s.state = Failed{Err: err, Reply: reply}
		return reply, nil
	}

	if replyText == "" {
		replyText = NoReplyText
	}
	reply := s.appendLocked(replyText, SenderBot)
	s.state = Succeeded{Reply: reply}
	return reply, nil
}

func (s *Session) appendLocked(text string, sender Sender) Message {
	msg := Message{
		ID:        s.nextID,
		Text:      text,
		Sender:    sender,
		Timestamp: s.now(),
	}
	s.nextID++
	s.messages = append(s.messages, msg)
	return msg
}
