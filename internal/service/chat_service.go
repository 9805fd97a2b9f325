package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ironlady-chat/internal/models"

	"go.uber.org/zap"
)

var ErrMessageRequired = errors.New("message is required")

// emptyCompletionText stands in when the provider answers with no text.
const emptyCompletionText = "I'd be happy to help you learn about our leadership programs. What specific information are you looking for?"

// ChatLogRecorder persists finished exchanges. Implementations must not block
// for long; the reply is already decided when Record is called.
type ChatLogRecorder interface {
	Create(ctx context.Context, log *models.ChatLog) error
}

type Reply struct {
	Text   string
	Source models.ReplySource
}

type ChatService struct {
	resolver  *Resolver
	completer Completer
	recorder  ChatLogRecorder
	timeout   time.Duration
	logger    *zap.Logger
}

// NewChatService wires the resolver with an optional completer and recorder;
// either may be nil.
func NewChatService(resolver *Resolver, completer Completer, recorder ChatLogRecorder, timeout time.Duration, logger *zap.Logger) *ChatService {
	return &ChatService{
		resolver:  resolver,
		completer: completer,
		recorder:  recorder,
		timeout:   timeout,
		logger:    logger,
	}
}

// DelegationEnabled reports whether unmatched questions reach a completion provider.
func (s *ChatService) DelegationEnabled() bool {
	return s.completer != nil
}

// Reply answers one message: FAQ rules first, then the completion provider,
// then the static fallback text. Only an empty message is an error.
func (s *ChatService) Reply(ctx context.Context, message string) (*Reply, error) {
	if message == "" {
		return nil, ErrMessageRequired
	}

	outcome := s.resolver.Resolve(message)

	var reply *Reply
	switch outcome.Kind {
	case OutcomeFAQAnswer:
		s.logger.Debug("FAQ rule matched", zap.String("rule", outcome.Rule))
		reply = &Reply{Text: outcome.Text, Source: models.SourceFAQ}
	case OutcomeDelegation:
		reply = s.delegate(ctx, message)
	default:
		return nil, ErrMessageRequired
	}

	s.record(ctx, message, reply)
	return reply, nil
}

func (s *ChatService) delegate(ctx context.Context, message string) *Reply {
	if s.completer == nil {
		return &Reply{Text: s.resolver.FallbackText(message), Source: models.SourceFallback}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.completer.Complete(ctx, message)
	if err != nil {
		s.logger.Error("LLM delegation failed, using fallback text",
			zap.String("provider", s.completer.Name()),
			zap.Error(err),
		)
		return &Reply{Text: s.resolver.FallbackText(message), Source: models.SourceFallback}
	}

	if strings.TrimSpace(text) == "" {
		text = emptyCompletionText
	}
	return &Reply{Text: text, Source: models.SourceLLM}
}

func (s *ChatService) record(ctx context.Context, message string, reply *Reply) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Create(ctx, models.NewChatLog(message, reply.Text, reply.Source)); err != nil {
		s.logger.Warn("Failed to record chat log", zap.Error(err))
	}
}
