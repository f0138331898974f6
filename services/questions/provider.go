package questions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	game_constants "Quizdom/constants/game"
	"Quizdom/models"

	"github.com/google/uuid"
)

// Result is the outcome of question generation. Provider failures are never
// propagated to room creation: when generation fails the questions come from
// the fixed fallback set and FromFallback is true, so the fallback path is a
// visible branch rather than a swallowed error.
type Result struct {
	Questions    []models.Question
	FromFallback bool
}

// Provider produces an ordered, validated question set for a topic
type Provider interface {
	Generate(ctx context.Context, topic string, count int) Result
}

// OpenRouterProvider generates questions through an OpenRouter-compatible
// chat-completions endpoint. The first attempt is bounded by Timeout; on any
// failure a single retry runs with RetryTimeout before falling back.
type OpenRouterProvider struct {
	APIKey       string
	Model        string
	URL          string
	Timeout      time.Duration
	RetryTimeout time.Duration

	client *http.Client
}

// NewOpenRouterProvider builds a provider with the default model and endpoint
func NewOpenRouterProvider(apiKey string) *OpenRouterProvider {
	return &OpenRouterProvider{
		APIKey:       apiKey,
		Model:        game_constants.DEFAULT_PROVIDER_MODEL,
		URL:          game_constants.DEFAULT_PROVIDER_URL,
		Timeout:      game_constants.PROVIDER_TIMEOUT,
		RetryTimeout: game_constants.PROVIDER_RETRY_TIMEOUT,
		client:       &http.Client{},
	}
}

// Generate asks the model for questions, retrying once before serving the
// fallback set. It never returns an error.
func (p *OpenRouterProvider) Generate(ctx context.Context, topic string, count int) Result {
	qs, err := p.generate(ctx, topic, count, p.Timeout)
	if err != nil {
		log.Printf("Error generating questions (will retry): %v", err)
		qs, err = p.generate(ctx, topic, count, p.RetryTimeout)
	}
	if err != nil {
		log.Printf("Error generating questions, using fallback set: %v", err)
		return Result{Questions: Fallback(topic, count), FromFallback: true}
	}
	return Result{Questions: qs}
}

func (p *OpenRouterProvider) httpClient() *http.Client {
	if p.client != nil {
		return p.client
	}
	return http.DefaultClient
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *OpenRouterProvider) generate(ctx context.Context, topic string, count int, timeout time.Duration) ([]models.Question, error) {
	prompt := fmt.Sprintf(`Generate %d quiz questions about the topic "%s".
Format the output as a JSON array where every element has:
- id (string)
- text (the question)
- options (array of 4 strings)
- correct_answer (string, must be one of the options)`, count, topic)

	reqBody := chatRequest{
		Model: p.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful quiz generator that always outputs valid JSON."},
			{Role: "user", Content: prompt},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("error marshaling provider request: %v", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, p.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error building provider request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling question provider: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("question provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading provider response: %v", err)
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return nil, fmt.Errorf("error unmarshaling provider response: %v", err)
	}
	if len(chat.Choices) == 0 {
		return nil, fmt.Errorf("provider response contains no choices")
	}

	questions, err := parseQuestions(chat.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	questions = validateQuestions(questions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("provider returned no usable questions")
	}
	if len(questions) > count {
		questions = questions[:count]
	}
	return questions, nil
}

// parseQuestions accepts either a bare JSON array or a {"questions": [...]}
// wrapper, since models emit both shapes.
func parseQuestions(content string) ([]models.Question, error) {
	var questions []models.Question
	if err := json.Unmarshal([]byte(content), &questions); err == nil {
		return questions, nil
	}

	var wrapper struct {
		Questions []models.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &wrapper); err != nil {
		return nil, fmt.Errorf("error parsing generated questions: %v", err)
	}
	return wrapper.Questions, nil
}

// validateQuestions drops malformed questions and normalizes the rest:
// options are deduplicated preserving order, the correct answer must be one
// of the options, and missing ids are filled in.
func validateQuestions(questions []models.Question) []models.Question {
	valid := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
			continue
		}

		options := dedupeOptions(q.Options)
		if len(options) < 2 {
			continue
		}

		correctIncluded := false
		for _, opt := range options {
			if strings.EqualFold(opt, q.CorrectAnswer) {
				correctIncluded = true
				break
			}
		}
		if !correctIncluded {
			continue
		}

		q.Options = options
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		valid = append(valid, q)
	}
	return valid
}

func dedupeOptions(options []string) []string {
	seen := make(map[string]struct{}, len(options))
	out := make([]string, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		if _, ok := seen[opt]; ok {
			continue
		}
		seen[opt] = struct{}{}
		out = append(out, opt)
	}
	return out
}
