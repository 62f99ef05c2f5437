package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/schedule"
)

// OpenAIAPI is the HTTP-backed provider. The schema is embedded in the
// system prompt and the reply is scanned for its JSON body, since not every
// model honors a strict response format.
type OpenAIAPI struct {
	client openai.Client
	model  string
	logger *slog.Logger
}

func NewOpenAIAPI(apiKey, model string, logger *slog.Logger) *OpenAIAPI {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &OpenAIAPI{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		logger: logger,
	}
}

func (o *OpenAIAPI) ExtractSchedule(ctx context.Context, text string) ([]schedule.Session, error) {
	result, err := o.complete(ctx, extractSystemPrompt+schemaSuffix(extractSchema), buildExtractUserPrompt(text))
	if err != nil {
		return nil, err
	}

	var resp extractResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return nil, fmt.Errorf("parsing extracted schedule: %w", err)
	}
	o.logger.Debug("extracted schedule", "courses", len(resp.Courses))
	return sessionsFromExtracted(resp.Courses), nil
}

func (o *OpenAIAPI) RankCourses(ctx context.Context, interests string, candidates []catalog.Course) ([]Recommendation, error) {
	result, err := o.complete(ctx, buildRankSystemPrompt(candidates)+schemaSuffix(rankSchema), buildRankUserPrompt(interests))
	if err != nil {
		return nil, err
	}

	var resp rankResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return nil, fmt.Errorf("parsing ranking: %w", err)
	}
	o.logger.Debug("ranked courses", "recommendations", len(resp.Recommendations))
	return resp.Recommendations, nil
}

func (o *OpenAIAPI) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	o.logger.Debug("openai request",
		"model", o.model,
		"system_prompt_len", len(systemPrompt),
		"user_prompt_len", len(userPrompt),
	)

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty response")
	}

	content := resp.Choices[0].Message.Content
	o.logger.Debug("openai response", "content_len", len(content))

	body, ok := extractJSON(content)
	if !ok {
		return "", fmt.Errorf("openai completion: no JSON object in response")
	}
	return body, nil
}

func schemaSuffix(schema string) string {
	return "\n\nRespond with a single JSON object matching this schema:\n" + schema
}

// extractJSON pulls the outermost JSON object out of a reply that may be
// wrapped in prose or code fences.
func extractJSON(content string) (string, bool) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return content[start : end+1], true
}
