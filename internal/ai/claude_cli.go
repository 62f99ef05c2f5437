package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/mopben/coursematch/internal/catalog"
	"github.com/mopben/coursematch/internal/schedule"
)

// cleanEnv returns os.Environ() with Claude Code session vars removed
// so the subprocess doesn't get blocked by the nested-session check.
func cleanEnv() []string {
	blocked := map[string]bool{
		"CLAUDECODE":             true,
		"CLAUDE_CODE_ENTRYPOINT": true,
	}
	var env []string
	for _, e := range os.Environ() {
		key, _, _ := strings.Cut(e, "=")
		if !blocked[key] {
			env = append(env, e)
		}
	}
	return env
}

// ClaudeCLI is the subprocess-backed provider. It shells out to the claude
// CLI with a JSON schema so responses come back typed.
type ClaudeCLI struct {
	Model  string
	logger *slog.Logger
}

func NewClaudeCLI(model string, logger *slog.Logger) *ClaudeCLI {
	if model == "" {
		model = "sonnet"
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ClaudeCLI{Model: model, logger: logger}
}

func (c *ClaudeCLI) ExtractSchedule(ctx context.Context, text string) ([]schedule.Session, error) {
	result, err := c.invoke(ctx, extractSystemPrompt, buildExtractUserPrompt(text), extractSchema)
	if err != nil {
		return nil, err
	}

	var resp extractResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return nil, fmt.Errorf("parsing extracted schedule: %w (raw: %s)", err, truncateStr(result, 500))
	}
	c.logger.Debug("extracted schedule", "courses", len(resp.Courses))
	return sessionsFromExtracted(resp.Courses), nil
}

func (c *ClaudeCLI) RankCourses(ctx context.Context, interests string, candidates []catalog.Course) ([]Recommendation, error) {
	result, err := c.invoke(ctx, buildRankSystemPrompt(candidates), buildRankUserPrompt(interests), rankSchema)
	if err != nil {
		return nil, err
	}

	var resp rankResponse
	if err := json.Unmarshal([]byte(result), &resp); err != nil {
		return nil, fmt.Errorf("parsing ranking: %w (raw: %s)", err, truncateStr(result, 500))
	}
	c.logger.Debug("ranked courses", "recommendations", len(resp.Recommendations))
	return resp.Recommendations, nil
}

func (c *ClaudeCLI) invoke(ctx context.Context, systemPrompt, userPrompt, jsonSchema string) (string, error) {
	args := []string{
		"-p", userPrompt,
		"--output-format", "json",
		"--model", c.Model,
		"--system-prompt", systemPrompt,
		"--json-schema", jsonSchema,
		"--no-session-persistence",
	}

	c.logger.Debug("invoking claude CLI",
		"model", c.Model,
		"system_prompt_len", len(systemPrompt),
		"user_prompt_len", len(userPrompt),
	)

	cmd := exec.CommandContext(ctx, "claude", args...)
	cmd.Env = cleanEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	startTime := time.Now()
	err := cmd.Run()
	elapsed := time.Since(startTime)

	if err != nil {
		c.logger.Error("claude CLI failed",
			"error", err,
			"elapsed", elapsed,
			"stderr", stderr.String(),
		)
		if ctx.Err() != nil {
			return "", fmt.Errorf("claude CLI timed out after %s", elapsed.Truncate(time.Second))
		}
		return "", fmt.Errorf("running claude CLI: %w (stderr: %s)", err, stderr.String())
	}

	c.logger.Debug("claude CLI finished", "elapsed", elapsed, "stdout_bytes", stdout.Len())

	// Unwrap the claude --output-format json envelope. structured_output is
	// the typed JSON from --json-schema; result is the readable fallback.
	var wrapper struct {
		Result           json.RawMessage `json:"result"`
		StructuredOutput json.RawMessage `json:"structured_output"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &wrapper); err == nil {
		if len(wrapper.StructuredOutput) > 0 && wrapper.StructuredOutput[0] == '{' {
			return string(wrapper.StructuredOutput), nil
		}
		if len(wrapper.Result) > 0 {
			var s string
			if err := json.Unmarshal(wrapper.Result, &s); err == nil && s != "" {
				return s, nil
			}
			if wrapper.Result[0] == '{' || wrapper.Result[0] == '[' {
				return string(wrapper.Result), nil
			}
		}
	}

	return stdout.String(), nil
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
