package config

import (
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

	// Smart Task Planner specifics
	GoogleCalendar GoogleCalendarConfig
	OAuth          OAuthConfig
	Planner        PlannerConfig
	Session        SessionConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string // Service Account or OAuth Desktop credentials used when the session has no token
	TokenPath       string
	CalendarID      string
	Timezone        string // IANA zone events are written in, e.g. "Africa/Lagos"
}

// OAuthConfig configures the browser login flow.
type OAuthConfig struct {
	ClientID         string
	ClientSecret     string
	RedirectURL      string
	ClientSecretFile string // credentials.json downloaded from Google Cloud console
	NgrokAPI         string // when set, the redirect URL is taken from the first ngrok tunnel
}

// PlannerConfig tunes extraction and scheduling.
type PlannerConfig struct {
	MaxInputLength   int
	DefaultDuration  time.Duration
	WorkdayStartHour int
	WorkdayEndHour   int
	SlotSearchDays   int
	DuplicateWindow  time.Duration
	HistoryContext   int // conversation turns sent to the oracle
	UpcomingLimit    int
}

type SessionConfig struct {
	CookieName  string
	TTL         time.Duration
	MaxSessions int
	Secure      bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// OAuth login flow
	cfg.OAuth.ClientID = viper.GetString("oauth.client_id")
	cfg.OAuth.ClientSecret = viper.GetString("oauth.client_secret")
	cfg.OAuth.RedirectURL = viper.GetString("oauth.redirect_url")
	cfg.OAuth.ClientSecretFile = viper.GetString("oauth.client_secret_file")
	cfg.OAuth.NgrokAPI = viper.GetString("oauth.ngrok_api")
	if id := viper.GetString("google_client_id"); id != "" {
		cfg.OAuth.ClientID = id
	}
	if secret := viper.GetString("google_client_secret"); secret != "" {
		cfg.OAuth.ClientSecret = secret
	}
	if redirect := viper.GetString("redirect_uri"); redirect != "" {
		cfg.OAuth.RedirectURL = redirect
	}

	// Planner
	cfg.Planner.MaxInputLength = viper.GetInt("planner.max_input_length")
	cfg.Planner.DefaultDuration = viper.GetDuration("planner.default_duration")
	cfg.Planner.WorkdayStartHour = viper.GetInt("planner.workday_start_hour")
	cfg.Planner.WorkdayEndHour = viper.GetInt("planner.workday_end_hour")
	cfg.Planner.SlotSearchDays = viper.GetInt("planner.slot_search_days")
	cfg.Planner.DuplicateWindow = viper.GetDuration("planner.duplicate_window")
	cfg.Planner.HistoryContext = viper.GetInt("planner.history_context")
	cfg.Planner.UpcomingLimit = viper.GetInt("planner.upcoming_limit")

	// Session
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.Secure = viper.GetBool("session.secure")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Single-provider shortcut: DEEPSEEK_API_KEY without a providers section
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("deepseek_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "deepseek",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    "deepseek-chat",
			})
		}
	}

	// The oracle is optional; only validate what is configured.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	if err := validatePlannerConfig(&cfg.Planner); err != nil {
		return nil, fmt.Errorf("invalid planner config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 30)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.timezone", "Africa/Lagos")
	viper.SetDefault("oauth.redirect_url", "http://localhost:8080/oauth2callback")
	viper.SetDefault("oauth.client_secret_file", "credentials.json")

	// Planner defaults
	viper.SetDefault("planner.max_input_length", 500)
	viper.SetDefault("planner.default_duration", "1h")
	viper.SetDefault("planner.workday_start_hour", 8)
	viper.SetDefault("planner.workday_end_hour", 20)
	viper.SetDefault("planner.slot_search_days", 7)
	viper.SetDefault("planner.duplicate_window", "168h")
	viper.SetDefault("planner.history_context", 3)
	viper.SetDefault("planner.upcoming_limit", 5)

	viper.SetDefault("session.cookie_name", "planner_session")
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.secure", false)

	// LLM defaults: a single attempt with a short timeout
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "10s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// validatePlannerConfig rejects windows and limits the scheduler cannot work with.
func validatePlannerConfig(cfg *PlannerConfig) error {
	if cfg.WorkdayStartHour < 0 || cfg.WorkdayEndHour > 24 || cfg.WorkdayStartHour >= cfg.WorkdayEndHour {
		return fmt.Errorf("workday hours %d-%d are not a valid window", cfg.WorkdayStartHour, cfg.WorkdayEndHour)
	}
	if cfg.DefaultDuration <= 0 {
		return fmt.Errorf("default_duration must be positive")
	}
	if cfg.SlotSearchDays <= 0 {
		return fmt.Errorf("slot_search_days must be positive")
	}
	if cfg.DuplicateWindow <= 0 {
		return fmt.Errorf("duplicate_window must be positive")
	}
	if cfg.MaxInputLength <= 0 {
		return fmt.Errorf("max_input_length must be positive")
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
