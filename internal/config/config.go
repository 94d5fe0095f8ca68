package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	LLM        LLMConfig
	Search     SearchConfig
	Redis      RedisConfig
	Generation GenerationConfig
	Session    SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

type LLMConfig struct {
	Provider    string // "ollama" or "openai"
	ServerURL   string
	Model       string
	APIKey      string
	Temperature float64
	Timeout     time.Duration
}

type SearchConfig struct {
	TavilyAPIKey string
	Depth        string
	MaxResults   int
	Timeout      time.Duration
	CacheTTL     time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type GenerationConfig struct {
	MaxAttempts int
}

type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
}

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 120)
	v.SetDefault("server.write_timeout", 120)

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("llm.provider", ProviderOllama)
	v.SetDefault("llm.server", "http://localhost:11434")
	v.SetDefault("llm.model", "qwen3:8b")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.timeout", 90)

	v.SetDefault("search.depth", "advanced")
	v.SetDefault("search.max_results", 8)
	v.SetDefault("search.timeout", 15)
	v.SetDefault("search.cache_ttl", 3600)

	v.SetDefault("generation.max_attempts", 3)

	v.SetDefault("session.ttl", 1800)
	v.SetDefault("session.sweep_interval", 60)
}

// LoadConfig reads config.yaml from the working directory (or ./config) and
// applies environment overrides. A missing config file is not an error; a
// .env file, when present, is loaded into the environment first.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := fromViper(v)

	// Well-known variable names shared with other tooling
	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		config.Search.TavilyAPIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && config.LLM.APIKey == "" {
		config.LLM.APIKey = key
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		config.LLM.ServerURL = llmServer
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			ServerURL:   v.GetString("llm.server"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			Temperature: v.GetFloat64("llm.temperature"),
			Timeout:     v.GetDuration("llm.timeout") * time.Second,
		},
		Search: SearchConfig{
			TavilyAPIKey: v.GetString("search.tavily_api_key"),
			Depth:        v.GetString("search.depth"),
			MaxResults:   v.GetInt("search.max_results"),
			Timeout:      v.GetDuration("search.timeout") * time.Second,
			CacheTTL:     v.GetDuration("search.cache_ttl") * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Generation: GenerationConfig{
			MaxAttempts: v.GetInt("generation.max_attempts"),
		},
		Session: SessionConfig{
			TTL:           v.GetDuration("session.ttl") * time.Second,
			SweepInterval: v.GetDuration("session.sweep_interval") * time.Second,
		},
	}
}

// Validate checks values that would otherwise fail late at request time.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOllama:
		if c.LLM.ServerURL == "" {
			return fmt.Errorf("llm.server is required for the %s provider", ProviderOllama)
		}
	case ProviderOpenAI:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("llm.api_key (or OPENAI_API_KEY) is required for the %s provider", ProviderOpenAI)
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.Generation.MaxAttempts < 1 {
		return fmt.Errorf("generation.max_attempts must be at least 1, got %d", c.Generation.MaxAttempts)
	}
	return nil
}
