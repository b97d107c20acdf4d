package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"briefnote/internal/notes/config"
	servicesPorts "briefnote/internal/notes/ports/services"
)

// Параметры запроса суммаризации.
// Значения соответствуют проксируемому генеративному API.
const (
	summaryPromptPrefix = "Please summarize the following text concisely:\n\n"
	summaryTemperature  = 0.2
	summaryMaxTokens    = 1024
)

// Ошибки сервиса суммаризации.
var (
	ErrEmptyContent  = errors.New("no content provided")
	ErrEmptyResponse = errors.New("empty response from summarization service")
)

// OpenAISummarizer реализует services.Summarizer через OpenAI-совместимый
// chat-completion API.
type OpenAISummarizer struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewOpenAISummarizer создает новый клиент сервиса суммаризации.
func NewOpenAISummarizer(cfg *config.SummarizerConfig) servicesPorts.Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAISummarizer{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
}

// Summarize возвращает сжатое изложение переданного текста.
func (s *OpenAISummarizer) Summarize(ctx context.Context, content string) (string, error) {
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyContent
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model:       s.model,
		MaxTokens:   summaryMaxTokens,
		Temperature: summaryTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: summaryPromptPrefix + content,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", ErrEmptyResponse
	}

	return summary, nil
}
