package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Dhruv40689/resume-builder/internal/profile"
	"github.com/Dhruv40689/resume-builder/internal/shared/telemetry"
)

const apiURL = "https://api.openai.com/v1/chat/completions"

// OpenAI rewrites summary and bullets via the Chat Completions API. Wrap it
// with WithFallback so quota or network failures degrade to the rule-based
// rewriter instead of surfacing to the caller.
type OpenAI struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewOpenAI constructs an OpenAI enhancer.
func NewOpenAI(apiKey, model string) (*OpenAI, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

const systemPrompt = "Expert resume writer and ATS specialist. " +
	"Return only the requested content, no preamble, no commentary."

// Enhance rewrites the summary and each experience entry's bullets.
func (c *OpenAI) Enhance(ctx context.Context, p *profile.Profile, opts Options) error {
	contextBlock := promptContext(opts)

	summary, err := c.complete(ctx, summaryPrompt(p.Summary, contextBlock))
	if err != nil {
		return err
	}
	if summary != "" {
		p.Summary = summary
	}

	for i := range p.Experience {
		if len(p.Experience[i].Bullets) == 0 {
			continue
		}
		rewritten, err := c.complete(ctx, bulletsPrompt(p.Experience[i].Bullets, contextBlock))
		if err != nil {
			return err
		}
		if lines := splitLines(rewritten); len(lines) > 0 {
			p.Experience[i].Bullets = lines
		}
	}
	return nil
}

func promptContext(opts Options) string {
	var parts []string
	if opts.TargetRole != "" {
		parts = append(parts, "Target Role: "+opts.TargetRole)
	}
	if opts.JobDescription != "" {
		jd := opts.JobDescription
		if len(jd) > 400 {
			jd = jd[:400]
		}
		parts = append(parts, "Job Description excerpt: "+jd)
	}
	return strings.Join(parts, "\n")
}

func summaryPrompt(summary, contextBlock string) string {
	if summary == "" {
		summary = "(none; create one from context)"
	}
	return fmt.Sprintf(`%s

Rewrite this professional summary to be ATS-optimized and impactful.

Original: %s

Rules:
- 3-4 sentences, 60-100 words
- No first person
- Highlight key skills and value proposition

Return ONLY the rewritten summary.`, contextBlock, summary)
}

func bulletsPrompt(bullets []string, contextBlock string) string {
	return fmt.Sprintf(`%s

Rewrite these bullets to start with strong action verbs and show measurable impact:

%s

Return ONLY the improved bullets, one per line.`, contextBlock, strings.Join(bullets, "\n"))
}

func (c *OpenAI) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("openai read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		telemetry.Error("enhance.openai_error", map[string]any{
			"status": resp.StatusCode,
			"model":  c.model,
		})
		return "", fmt.Errorf("openai status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("openai decode response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("openai: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "•-* "))
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
