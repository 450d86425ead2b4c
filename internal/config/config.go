package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Store    StoreConfig    `yaml:"store"`
	Log      LogConfig      `yaml:"log"`
	LLM      LLMConfig      `yaml:"llm"`
	Telegram TelegramConfig `yaml:"telegram"`
	Digest   DigestConfig   `yaml:"digest"`
	Capture  CaptureConfig  `yaml:"capture"`
	NATS     NATSConfig     `yaml:"nats"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// CaptureRateLimit caps POST /capture per client IP per minute. 0 disables.
	CaptureRateLimit int `yaml:"capture_rate_limit" env:"SERVER_CAPTURE_RATE_LIMIT" env-default:"30"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// Store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// StoreConfig selects the record store.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"postgres"`
	// Timeout bounds every single store call.
	Timeout time.Duration `yaml:"timeout" env:"STORE_TIMEOUT" env-default:"5s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Model oracle providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderStub      = "stub"
)

// LLMConfig configures the model oracle.
type LLMConfig struct {
	Provider    string        `yaml:"provider"    env:"LLM_PROVIDER"    env-default:"openai"`
	APIKey      string        `yaml:"api_key"     env:"LLM_API_KEY"`
	Model       string        `yaml:"model"       env:"LLM_MODEL"`
	BaseURL     string        `yaml:"base_url"    env:"LLM_BASE_URL"`
	Timeout     time.Duration `yaml:"timeout"     env:"LLM_TIMEOUT"     env-default:"15s"`
	Temperature float64       `yaml:"temperature" env:"LLM_TEMPERATURE" env-default:"0.3"`
	MaxTokens   int           `yaml:"max_tokens"  env:"LLM_MAX_TOKENS"  env-default:"500"`
}

// TelegramConfig configures the chat transport.
type TelegramConfig struct {
	Enabled bool   `yaml:"enabled" env:"TELEGRAM_ENABLED" env-default:"true"`
	Token   string `yaml:"token"   env:"TELEGRAM_TOKEN"`
	// ChatID receives the scheduled digest.
	ChatID int64 `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	// AllowedChatIDs restricts who may talk to the bot. Empty allows ChatID only.
	AllowedChatIDs []int64       `yaml:"allowed_chat_ids" env:"TELEGRAM_ALLOWED_CHAT_IDS" env-separator:","`
	PollTimeout    time.Duration `yaml:"poll_timeout"     env:"TELEGRAM_POLL_TIMEOUT"     env-default:"30s"`
	Debug          bool          `yaml:"debug"            env:"TELEGRAM_DEBUG"            env-default:"false"`
}

// DigestConfig configures digest generation.
type DigestConfig struct {
	Schedule string `yaml:"schedule" env:"DIGEST_SCHEDULE" env-default:"0 8 * * *"`
	Timezone string `yaml:"timezone" env:"DIGEST_TIMEZONE" env-default:"UTC"`
	TopN     int    `yaml:"top_n"    env:"DIGEST_TOP_N"    env-default:"5"`
	// Summary asks the model for up to three focus bullets.
	Summary bool `yaml:"summary" env:"DIGEST_SUMMARY" env-default:"true"`
	// TriggerToken guards the HTTP trigger. Empty leaves it open.
	TriggerToken string `yaml:"trigger_token" env:"DIGEST_TRIGGER_TOKEN"`
}

// CaptureConfig configures the capture pipeline.
type CaptureConfig struct {
	PendingTTL time.Duration `yaml:"pending_ttl" env:"CAPTURE_PENDING_TTL" env-default:"24h"`
	// ForceRulesRaw lists keywords per category: "linkedin:draft|post;admin:bill".
	ForceRulesRaw string `yaml:"force_rules" env:"CAPTURE_FORCE_RULES" env-default:"linkedin:draft"`

	// ForceRules is parsed from ForceRulesRaw during validation.
	ForceRules map[string][]string `yaml:"-" env:"-"`
}

// NATSConfig configures the optional event publisher.
type NATSConfig struct {
	URL           string `yaml:"url"            env:"NATS_URL"`
	SubjectPrefix string `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX" env-default:"secondbrain"`
}

// Enabled reports whether events are published.
func (c NATSConfig) Enabled() bool { return c.URL != "" }

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
