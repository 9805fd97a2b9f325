package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTransport struct {
	reply   string
	err     error
	entered chan struct{}
	release chan struct{}
}

func (s *stubTransport) Send(ctx context.Context, _ string) (string, error) {
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	return s.reply, s.err
}

func TestNewSession_Greeting(t *testing.T) {
	s := NewSession(&stubTransport{})

	msgs := s.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, 1, msgs[0].ID)
	assert.Equal(t, SenderBot, msgs[0].Sender)
	assert.Equal(t, GreetingText, msgs[0].Text)
	assert.IsType(t, Idle{}, s.State())
}

func TestSubmit_AppendsUserThenBot(t *testing.T) {
	s := NewSession(&stubTransport{reply: "We offer 4 flagship programs"})

	reply, err := s.Submit(context.Background(), "What programs do you offer?")
	require.NoError(t, err)
	assert.Equal(t, "We offer 4 flagship programs", reply.Text)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{msgs[0].ID, msgs[1].ID, msgs[2].ID})
	assert.Equal(t, SenderUser, msgs[1].Sender)
	assert.Equal(t, "What programs do you offer?", msgs[1].Text)
	assert.Equal(t, SenderBot, msgs[2].Sender)

	state, ok := s.State().(Succeeded)
	require.True(t, ok)
	assert.Equal(t, reply, state.Reply)
}

func TestSubmit_EmptyInputIsNoop(t *testing.T) {
	s := NewSession(&stubTransport{reply: "x"})

	_, err := s.Submit(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Len(t, s.Messages(), 1)
}

func TestSubmit_TransportFailureUsesOfflineText(t *testing.T) {
	s := NewSession(&stubTransport{err: errors.New("connection refused")})

	reply, err := s.Submit(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, OfflineText, reply.Text)

	state, ok := s.State().(Failed)
	require.True(t, ok)
	assert.EqualError(t, state.Err, "connection refused")
	assert.False(t, s.Busy())
}

func TestSubmit_EmptyReplyUsesNoReplyText(t *testing.T) {
	s := NewSession(&stubTransport{reply: ""})

	reply, err := s.Submit(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, NoReplyText, reply.Text)
}

func TestSubmit_BusyWhileOutstanding(t *testing.T) {
	transport := &stubTransport{
		reply:   "done",
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	s := NewSession(transport)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background(), "first")
		done <- err
	}()

	<-transport.entered
	assert.True(t, s.Busy())
	assert.IsType(t, Pending{}, s.State())

	_, err := s.Submit(context.Background(), "second")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Len(t, s.Messages(), 2)

	close(transport.release)
	require.NoError(t, <-done)

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "done", msgs[2].Text)
	assert.False(t, s.Busy())

	transport.entered = nil
	_, err = s.Submit(context.Background(), "third")
	require.NoError(t, err)
	assert.Len(t, s.Messages(), 5)
}

func TestMessageClock(t *testing.T) {
	m := Message{Timestamp: time.Date(2026, 1, 2, 9, 5, 0, 0, time.UTC)}
	assert.Equal(t, "09:05", m.Clock())
}

func TestHTTPTransport(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"ok", http.StatusOK, `{"response":"hi there"}`, "hi there"},
		{"server error with text", http.StatusInternalServerError, `{"error":"Internal server error","response":"sorry"}`, "sorry"},
		{"validation error", http.StatusBadRequest, `{"error":"Message is required"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/chat", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewHTTPTransport(srv.URL, time.Second).Send(context.Background(), "hello")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPTransport(url, time.Second).Send(context.Background(), "hello")
	assert.Error(t, err)
}
