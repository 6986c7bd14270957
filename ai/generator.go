//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=../mocks/mock_generator.go -package=mocks
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/abadojack/whatlanggo"

	apperrors "github.com/gguatit/Today-s-horoscope/errors"
)

type IFortuneGenerator interface {
	Fortune(ctx context.Context, userID, question string) (string, error)
}

// OpenAIGenerator draws a fortune from an OpenAI-compatible chat-completions
// endpoint. Only invoked for admitted requests; the guard never sees it.
type OpenAIGenerator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	log     *slog.Logger
}

func NewOpenAIGenerator(baseURL, apiKey, model string, timeout time.Duration, log *slog.Logger) *OpenAIGenerator {
	return &OpenAIGenerator{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		log:     log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const systemPromptKorean = "너는 따뜻하고 신비로운 운세 상담가야. 질문에 대한 오늘의 운세를 2~3문장으로 알려줘."

// Fortune asks the model for today's reading. The question's language picks
// the reply language: Korean questions get the Korean persona, anything else
// gets an instruction to answer in kind.
func (g *OpenAIGenerator) Fortune(ctx context.Context, userID, question string) (string, error) {
	system := systemPromptKorean
	if lang := whatlanggo.Detect(question).Lang; lang != whatlanggo.Kor {
		system += " Answer in the same language as the question."
	}

	payload, err := json.Marshal(chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: question},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fortune request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("fortune endpoint returned %d: %s", resp.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", apperrors.ErrEmptyGenerated
	}

	g.log.Debug("Fortune generated", "user", userID, "model", g.model, "in", time.Since(start))
	return parsed.Choices[0].Message.Content, nil
}
