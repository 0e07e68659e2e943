package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Routing
	Routing   RoutingConfig
	Generator GeneratorConfig
	Intents   []IntentConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Data
	Deals DealsConfig

	// Channels
	WhatsApp  WhatsAppConfig
	Whatsmeow WhatsmeowConfig
	Telegram  TelegramConfig
	Webhook   WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RoutingConfig tunes the matcher and the fallback policy.
type RoutingConfig struct {
	Threshold         float64
	TieMargin         float64
	Saturation        float64
	NoMatchAction     string
	ApologyText       string
	Timezone          string
	GenerativeIntents bool // answer intents with the LLM, keeping canned text as fallback
}

type GeneratorConfig struct {
	Timeout             time.Duration
	GeneralSystemPrompt string
}

// IntentConfig overrides the built-in catalog when at least one is set.
type IntentConfig struct {
	ID       string          `mapstructure:"id"`
	Title    string          `mapstructure:"title"`
	Triggers []TriggerConfig `mapstructure:"triggers"`
	Handler  HandlerConfig   `mapstructure:"handler"`
}

type TriggerConfig struct {
	Phrase string  `mapstructure:"phrase"`
	Weight float64 `mapstructure:"weight"`
}

type HandlerConfig struct {
	Kind         string        `mapstructure:"kind"`
	Text         string        `mapstructure:"text"`
	Replies      []ReplyConfig `mapstructure:"replies"`
	Source       string        `mapstructure:"source"`
	Day          string        `mapstructure:"day"`
	Template     string        `mapstructure:"template"`
	SystemPrompt string        `mapstructure:"system_prompt"`
	MaxTokens    int           `mapstructure:"max_tokens"`
	Temperature  float64       `mapstructure:"temperature"`
	FallbackText string        `mapstructure:"fallback_text"`
}

type ReplyConfig struct {
	Keyword string `mapstructure:"keyword"`
	Text    string `mapstructure:"text"`
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// DealsConfig selects where deals are read from: memory, redis or postgres.
type DealsConfig struct {
	Source   string
	Seed     bool
	Redis    RedisConfig
	Postgres PostgresConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// WhatsAppConfig is the Meta WhatsApp Cloud API channel.
type WhatsAppConfig struct {
	AccessToken   string
	PhoneNumberID string
	VerifyToken   string
	AppSecret     string
	APIURL        string
}

// WhatsmeowConfig is the linked-device channel.
type WhatsmeowConfig struct {
	Enabled   bool
	StorePath string
	QRPath    string
}

type TelegramConfig struct {
	BotToken       string
	PollingTimeout int
}

type WebhookConfig struct {
	RateLimitPerMin int
	AllowedIPs      []string
	// NgrokAPIURL is the local ngrok API used to log the public webhook URL.
	NgrokAPIURL string
}

const (
	DealsSourceMemory   = "memory"
	DealsSourceRedis    = "redis"
	DealsSourcePostgres = "postgres"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Routing
	cfg.Routing.Threshold = v.GetFloat64("routing.threshold")
	cfg.Routing.TieMargin = v.GetFloat64("routing.tie_margin")
	cfg.Routing.Saturation = v.GetFloat64("routing.saturation")
	cfg.Routing.NoMatchAction = v.GetString("routing.no_match_action")
	cfg.Routing.ApologyText = v.GetString("routing.apology_text")
	cfg.Routing.Timezone = v.GetString("routing.timezone")
	cfg.Routing.GenerativeIntents = v.GetBool("routing.generative_intents")

	cfg.Generator.Timeout = v.GetDuration("generator.timeout")
	cfg.Generator.GeneralSystemPrompt = v.GetString("generator.general_system_prompt")

	if v.IsSet("intents") {
		if err := v.UnmarshalKey("intents", &cfg.Intents); err != nil {
			return nil, fmt.Errorf("error decoding intents: %w", err)
		}
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetDuration("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				timeout, err := getDurationFromMap(providerMap, "timeout")
				if err != nil {
					return nil, fmt.Errorf("provider %q: %w", getStringFromMap(providerMap, "name"), err)
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  timeout,
				})
			}
		}
	}

	// Deals
	cfg.Deals.Source = strings.ToLower(v.GetString("deals.source"))
	cfg.Deals.Seed = v.GetBool("deals.seed")
	cfg.Deals.Redis.Addr = v.GetString("deals.redis.addr")
	cfg.Deals.Redis.Password = v.GetString("deals.redis.password")
	cfg.Deals.Redis.DB = v.GetInt("deals.redis.db")
	cfg.Deals.Redis.Prefix = v.GetString("deals.redis.prefix")
	cfg.Deals.Postgres.Host = v.GetString("deals.postgres.host")
	cfg.Deals.Postgres.Port = v.GetInt("deals.postgres.port")
	cfg.Deals.Postgres.User = v.GetString("deals.postgres.user")
	cfg.Deals.Postgres.Password = v.GetString("deals.postgres.password")
	cfg.Deals.Postgres.DBName = v.GetString("deals.postgres.dbname")
	cfg.Deals.Postgres.SSLMode = v.GetString("deals.postgres.sslmode")
	if redisURL := v.GetString("redis_addr"); redisURL != "" {
		cfg.Deals.Redis.Addr = redisURL
	}
	if pgPassword := v.GetString("postgres_password"); pgPassword != "" {
		cfg.Deals.Postgres.Password = pgPassword
	}

	// WhatsApp Cloud API
	cfg.WhatsApp.AccessToken = v.GetString("whatsapp.access_token")
	cfg.WhatsApp.PhoneNumberID = v.GetString("whatsapp.phone_number_id")
	cfg.WhatsApp.VerifyToken = v.GetString("whatsapp.verify_token")
	cfg.WhatsApp.AppSecret = v.GetString("whatsapp.app_secret")
	cfg.WhatsApp.APIURL = v.GetString("whatsapp.api_url")
	if token := v.GetString("whatsapp_access_token"); token != "" {
		cfg.WhatsApp.AccessToken = token
	}
	if verify := v.GetString("webhook_verify_token"); verify != "" {
		cfg.WhatsApp.VerifyToken = verify
	}
	if secret := v.GetString("whatsapp_app_secret"); secret != "" {
		cfg.WhatsApp.AppSecret = secret
	}

	cfg.Whatsmeow.Enabled = v.GetBool("whatsmeow.enabled")
	cfg.Whatsmeow.StorePath = v.GetString("whatsmeow.store_path")
	cfg.Whatsmeow.QRPath = v.GetString("whatsmeow.qr_path")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.PollingTimeout = v.GetInt("telegram.polling_timeout")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// Webhooks
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := v.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips
	cfg.Webhook.NgrokAPIURL = v.GetString("webhook.ngrok_api_url")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	// Routing defaults
	v.SetDefault("routing.threshold", 0.5)
	v.SetDefault("routing.tie_margin", 0.1)
	v.SetDefault("routing.saturation", 2.0)
	v.SetDefault("routing.no_match_action", "ask_clarification")
	v.SetDefault("routing.apology_text", "Sorry, I couldn't find that — could you rephrase?")
	v.SetDefault("routing.timezone", "UTC")
	v.SetDefault("generator.timeout", "8s")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "8s")

	v.SetDefault("deals.source", DealsSourceMemory)
	v.SetDefault("deals.seed", true)
	v.SetDefault("deals.redis.addr", "localhost:6379")
	v.SetDefault("deals.redis.prefix", "faqbot")
	v.SetDefault("deals.postgres.host", "localhost")
	v.SetDefault("deals.postgres.port", 5432)
	v.SetDefault("deals.postgres.user", "postgres")
	v.SetDefault("deals.postgres.dbname", "faqbot")
	v.SetDefault("deals.postgres.sslmode", "disable")

	v.SetDefault("whatsapp.verify_token", "pneuma_verify_token_123")
	v.SetDefault("whatsmeow.store_path", "whatsmeow.db")
	v.SetDefault("whatsmeow.qr_path", "whatsmeow-qr.png")
	v.SetDefault("telegram.polling_timeout", 60)
	v.SetDefault("webhook.rate_limit_per_min", 60)
}

// validate rejects settings the service cannot start with.
func validate(cfg *Config) error {
	r := cfg.Routing
	if r.Threshold < 0 || r.Threshold > 1 {
		return fmt.Errorf("routing.threshold must be within [0,1], got %v", r.Threshold)
	}
	if r.TieMargin < 0 || r.TieMargin > 1 {
		return fmt.Errorf("routing.tie_margin must be within [0,1], got %v", r.TieMargin)
	}
	if r.Saturation <= 0 {
		return fmt.Errorf("routing.saturation must be positive, got %v", r.Saturation)
	}
	if r.NoMatchAction != "ask_clarification" && r.NoMatchAction != "delegate_to_generator" {
		return fmt.Errorf("routing.no_match_action must be ask_clarification or delegate_to_generator, got %q", r.NoMatchAction)
	}
	if strings.TrimSpace(r.ApologyText) == "" {
		return errors.New("routing.apology_text must not be empty")
	}
	if cfg.Generator.Timeout <= 0 {
		return fmt.Errorf("generator.timeout must be positive, got %v", cfg.Generator.Timeout)
	}

	switch cfg.Deals.Source {
	case DealsSourceMemory, DealsSourceRedis, DealsSourcePostgres:
	default:
		return fmt.Errorf("deals.source must be memory, redis or postgres, got %q", cfg.Deals.Source)
	}

	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return err
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			// Check priority is valid
			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			// Check for duplicate priorities
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getDurationFromMap(m map[string]interface{}, key string) (time.Duration, error) {
	raw := getStringFromMap(m, key)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}
