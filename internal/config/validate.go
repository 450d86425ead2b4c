package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StorePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("store.backend must be one of postgres, memory (got %q)", c.Store.Backend)
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store.timeout must be > 0 (got %s)", c.Store.Timeout)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}

	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return fmt.Errorf("telegram.token is required when telegram is enabled")
	}

	if err := c.Digest.validate(); err != nil {
		return fmt.Errorf("digest: %w", err)
	}

	if err := c.Capture.validate(); err != nil {
		return fmt.Errorf("capture: %w", err)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	providers := []string{ProviderOpenAI, ProviderAnthropic, ProviderStub}
	if !slices.Contains(providers, l.Provider) {
		return fmt.Errorf("provider must be one of %s (got %q)", strings.Join(providers, ", "), l.Provider)
	}
	if l.Provider != ProviderStub && l.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", l.Provider)
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", l.Timeout)
	}
	if l.Temperature < 0 || l.Temperature > 2 {
		return fmt.Errorf("temperature must be in [0,2] (got %v)", l.Temperature)
	}
	return nil
}

// Location resolves the digest timezone.
func (d DigestConfig) Location() (*time.Location, error) {
	return time.LoadLocation(d.Timezone)
}

func (d *DigestConfig) validate() error {
	if _, err := cron.ParseStandard(d.Schedule); err != nil {
		return fmt.Errorf("schedule %q: %w", d.Schedule, err)
	}
	if _, err := d.Location(); err != nil {
		return fmt.Errorf("timezone %q: %w", d.Timezone, err)
	}
	if d.TopN < 1 || d.TopN > 50 {
		return fmt.Errorf("top_n must be in [1,50] (got %d)", d.TopN)
	}
	return nil
}

func (c *CaptureConfig) validate() error {
	if c.PendingTTL <= 0 {
		return fmt.Errorf("pending_ttl must be > 0 (got %s)", c.PendingTTL)
	}
	rules, err := ParseForceRules(c.ForceRulesRaw)
	if err != nil {
		return fmt.Errorf("force_rules: %w", err)
	}
	c.ForceRules = rules
	return nil
}

// ParseForceRules parses "category:kw1|kw2;category:kw" into keyword lists
// keyed by category name or alias. An empty string returns an empty map.
func ParseForceRules(raw string) (map[string][]string, error) {
	rules := make(map[string][]string)
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, list, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("rule %q: want category:keyword", part)
		}
		name = strings.TrimSpace(name)
		if _, err := domain.ParseCategory(name); err != nil {
			return nil, fmt.Errorf("rule %q: %w", part, err)
		}
		for _, kw := range strings.Split(list, "|") {
			if kw = strings.TrimSpace(kw); kw != "" {
				rules[name] = append(rules[name], kw)
			}
		}
		if len(rules[name]) == 0 {
			return nil, fmt.Errorf("rule %q: no keywords", part)
		}
	}
	return rules, nil
}
