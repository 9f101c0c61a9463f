package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Priority classification
	Predictor PredictorConfig
	Policy    PolicyConfig

	// Browser-facing surface
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Static    StaticConfig
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

// PredictorConfig points at the optional external priority service.
type PredictorConfig struct {
	Enabled bool
	URL     string
	Timeout time.Duration
}

// PolicyConfig controls how the urgency flag overrides the rule score.
type PolicyConfig struct {
	EscalateOnUrgent       bool
	ForceCritical          bool
	ForceCriticalMaxEffort float64
	ForceCriticalKeywords  []string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// StaticConfig serves the browser UI from Dir when set.
type StaticConfig struct {
	Dir string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
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
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Predictor
	cfg.Predictor.Enabled = viper.GetBool("predictor.enabled")
	cfg.Predictor.URL = viper.GetString("predictor.url")
	cfg.Predictor.Timeout = viper.GetDuration("predictor.timeout")
	if predictorURL := viper.GetString("predictor_url"); predictorURL != "" {
		cfg.Predictor.URL = predictorURL
	}

	// Urgency policy
	cfg.Policy.EscalateOnUrgent = viper.GetBool("policy.escalate_on_urgent")
	cfg.Policy.ForceCritical = viper.GetBool("policy.force_critical")
	cfg.Policy.ForceCriticalMaxEffort = viper.GetFloat64("policy.force_critical_max_effort")
	cfg.Policy.ForceCriticalKeywords = getList("policy.force_critical_keywords")

	// Browser-facing surface
	cfg.CORS.AllowedOrigins = getList("cors.allowed_origins")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Static.Dir = viper.GetString("static.dir")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("predictor.enabled", false)
	viper.SetDefault("predictor.timeout", "2s")

	viper.SetDefault("policy.escalate_on_urgent", true)
	viper.SetDefault("policy.force_critical", true)
	viper.SetDefault("policy.force_critical_max_effort", 2.0)
	viper.SetDefault("policy.force_critical_keywords", "deadline,due,submit")

	viper.SetDefault("cors.allowed_origins", "*")
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("static.dir", "")
}

// getList reads a list given either as a YAML sequence or a comma-separated
// string, which is the only form env vars can carry.
func getList(key string) []string {
	var raw []string
	switch v := viper.Get(key).(type) {
	case string:
		raw = strings.Split(v, ",")
	default:
		raw = viper.GetStringSlice(key)
	}

	var out []string
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port: invalid port %d", cfg.HTTPServer.Port)
	}
	if cfg.Predictor.Enabled {
		if cfg.Predictor.URL == "" {
			return fmt.Errorf("predictor.url is required when predictor.enabled is true")
		}
		if cfg.Predictor.Timeout <= 0 {
			return fmt.Errorf("predictor.timeout must be positive")
		}
	}
	if cfg.Policy.ForceCriticalMaxEffort < 0 {
		return fmt.Errorf("policy.force_critical_max_effort must not be negative")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}
