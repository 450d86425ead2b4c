// Package llm implements the model oracle on top of a chat completion API.
// The same prompts drive every provider; only the completer differs.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ranajunaid001/second-braind-junaid/internal/config"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// completer sends one user prompt and returns the raw model text.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Oracle classifies notes, extracts fields and writes digest focus bullets.
type Oracle struct {
	llm completer
	log *slog.Logger
}

// New builds the oracle for the configured provider.
func New(log *slog.Logger, cfg config.LLMConfig) (*Oracle, error) {
	var c completer
	switch cfg.Provider {
	case config.ProviderOpenAI:
		c = newOpenAI(cfg)
	case config.ProviderAnthropic:
		c = newAnthropic(cfg)
	default:
		return nil, fmt.Errorf("llm: unsupported provider %q", cfg.Provider)
	}
	return newOracle(log, c, cfg.Provider), nil
}

func newOracle(log *slog.Logger, c completer, provider string) *Oracle {
	return &Oracle{
		llm: c,
		log: log.With("adapter", "llm", "provider", provider),
	}
}

type classifyResponse struct {
	Bucket     string         `json:"bucket"`
	Confidence any            `json:"confidence"`
	Fields     map[string]any `json:"fields"`
}

// Classify asks the model for a bucket, a confidence and the bucket's fields.
// The bucket is returned as given; validating it is the caller's concern.
func (o *Oracle) Classify(ctx context.Context, text string) (domain.OracleVerdict, error) {
	raw, err := o.llm.Complete(ctx, classifyPrompt(text))
	if err != nil {
		return domain.OracleVerdict{}, fmt.Errorf("classify: %w", err)
	}

	var resp classifyResponse
	if err := decodeObject(raw, &resp); err != nil {
		o.log.DebugContext(ctx, "unparseable classify response", slog.String("response", domain.Truncate(raw, 200)))
		return domain.OracleVerdict{}, fmt.Errorf("classify: %w", err)
	}

	confidence, err := toFloat(resp.Confidence)
	if err != nil {
		return domain.OracleVerdict{}, fmt.Errorf("classify: confidence: %w", err)
	}

	return domain.OracleVerdict{
		Category:   strings.TrimSpace(resp.Bucket),
		Confidence: confidence,
		Fields:     toFields(resp.Fields),
	}, nil
}

// Extract asks the model for the fields of a known category.
func (o *Oracle) Extract(ctx context.Context, c domain.Category, text string) (domain.Fields, error) {
	raw, err := o.llm.Complete(ctx, extractPrompt(c, text))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", c, err)
	}

	var fields map[string]any
	if err := decodeObject(raw, &fields); err != nil {
		return nil, fmt.Errorf("extract %s: %w", c, err)
	}
	return toFields(fields), nil
}

// Summarize turns the rendered digest into at most three action lines.
func (o *Oracle) Summarize(ctx context.Context, digest string) ([]string, error) {
	raw, err := o.llm.Complete(ctx, summaryPrompt(digest))
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}

// extractJSON finds the outermost JSON object in a string. Models sometimes
// wrap the object in prose or a code fence.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

func decodeObject(raw string, v any) error {
	obj, err := extractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(obj), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case float64:
		return x, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", x)
		}
		return f, nil
	}
	return 0, fmt.Errorf("unexpected type %T", v)
}

// toFields flattens model output into strings. Nulls and nested values are
// dropped.
func toFields(in map[string]any) domain.Fields {
	out := make(domain.Fields, len(in))
	for k, v := range in {
		key := strings.ToLower(strings.TrimSpace(k))
		switch x := v.(type) {
		case string:
			out[key] = strings.TrimSpace(x)
		case float64:
			out[key] = strconv.FormatFloat(x, 'f', -1, 64)
		case bool:
			out[key] = strconv.FormatBool(x)
		}
	}
	return out
}
