package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ironlady-chat/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// delegationTemperature is the sampling temperature for every delegated question.
const delegationTemperature = 0.7

// Completer answers a single user turn under a fixed system instruction.
type Completer interface {
	Complete(ctx context.Context, userText string) (string, error)
	Name() string
	Close() error
}

// NewCompleter builds the completer for the configured provider. It returns a
// nil Completer and no error when the provider has no credential, which
// disables delegation without failing startup.
func NewCompleter(ctx context.Context, cfg *config.Config, systemPrompt string, logger *zap.Logger) (Completer, error) {
	if !cfg.CredentialConfigured() {
		logger.Warn("LLM delegation disabled: no credential configured",
			zap.String("provider", cfg.LLM.Provider),
		)
		return nil, nil
	}

	switch cfg.LLM.Provider {
	case config.ProviderGigaChat:
		completer, err := NewGigaChatCompleter(ctx, &cfg.GigaChat, systemPrompt, logger)
		if err != nil {
			return nil, err
		}
		return completer, nil
	case config.ProviderGroq, "":
		return NewGroqCompleter(&cfg.Groq, cfg.LLM.MaxTokens, cfg.LLM.Timeout, systemPrompt, logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}
}

// NewOptionalCompleter is NewCompleter for startup. A provider that fails to
// initialise disables delegation instead of stopping the server.
func NewOptionalCompleter(ctx context.Context, cfg *config.Config, systemPrompt string, logger *zap.Logger) Completer {
	completer, err := NewCompleter(ctx, cfg, systemPrompt, logger)
	if err != nil {
		logger.Warn("LLM delegation disabled: provider failed to initialize",
			zap.String("provider", cfg.LLM.Provider),
			zap.Error(err),
		)
		return nil
	}
	return completer
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GroqCompleter talks to Groq's OpenAI-compatible chat completions endpoint.
type GroqCompleter struct {
	apiKey       string
	baseURL      string
	model        string
	maxTokens    int
	systemPrompt string
	httpClient   *http.Client
	logger       *zap.Logger
}

func NewGroqCompleter(cfg *config.GroqConfig, maxTokens int, timeout time.Duration, systemPrompt string, logger *zap.Logger) *GroqCompleter {
	return &GroqCompleter{
		apiKey:       cfg.APIKey,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		model:        cfg.Model,
		maxTokens:    maxTokens,
		systemPrompt: systemPrompt,
		httpClient:   &http.Client{Timeout: timeout},
		logger:       logger,
	}
}

func (c *GroqCompleter) Name() string { return config.ProviderGroq }

// Complete makes exactly one request; failures are returned, never retried.
// A response without choices yields an empty string and no error.
func (c *GroqCompleter) Complete(ctx context.Context, userText string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: c.systemPrompt},
			{Role: "user", Content: userText},
		},
		Temperature: delegationTemperature,
		MaxTokens:   c.maxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("API error: %s", parsed.Error.Message)
	}

	c.logger.Debug("Groq completion received",
		zap.String("model", c.model),
		zap.Int("choices", len(parsed.Choices)),
		zap.Duration("elapsed", time.Since(start)),
	)

	// no choices is an empty answer, not a failure
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

func (c *GroqCompleter) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// GigaChatCompleter delegates through the GigaChat SDK.
type GigaChatCompleter struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewGigaChatCompleter(ctx context.Context, cfg *config.GigaChatConfig, systemPrompt string, logger *zap.Logger) (*GigaChatCompleter, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = systemPrompt
	model.Temperature = delegationTemperature

	logger.Info("GigaChat delegation enabled", zap.String("model", cfg.Model))

	return &GigaChatCompleter{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (c *GigaChatCompleter) Name() string { return config.ProviderGigaChat }

func (c *GigaChatCompleter) Complete(ctx context.Context, userText string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: userText},
	}

	resp, err := c.model.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

func (c *GigaChatCompleter) Close() error {
	if c.client != nil {
		c.client.Close()
	}
	return nil
}
