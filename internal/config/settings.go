package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/social-agent-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ConfigName = "config"
	ConfigType = "toml"
	ConfigFile = ConfigName + "." + ConfigType
	EnvPrefix  = "SAGENT"
)

const (
	keyAgentPath          = "state.agent_path"
	keyUsersPath          = "state.users_path"
	keyHistoryPath        = "state.history_path"
	keySocialBaseURL      = "social.base_url"
	keyProvider           = "completion.provider"
	keyCompletionBaseURL  = "completion.base_url"
	keyCompletionModel    = "completion.model"
	keyTemperature        = "completion.temperature"
	keyDryRun             = "run.dry_run"
	keyMaxUserAttempts    = "run.max_user_attempts"
	keyTopicalFailure     = "run.topical_failure"
	keyMentionsLimit      = "run.mentions_limit"
	keyTimelineLimit      = "run.timeline_limit"
	keyRequestTimeout     = "http.request_timeout"
	keyLogLevel           = "log.level"
	keyLogFormat          = "log.format"
	defaultSocialBaseURL  = "https://api.twitter.com"
	defaultOpenAIBaseURL  = "https://api.x.ai/v1"
	defaultOpenAIModel    = "grok-beta"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultRequestTimeout = 60 * time.Second
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

type Settings struct {
	State      StateSettings
	Social     SocialSettings
	Completion CompletionSettings
	Run        RunSettings
	HTTP       HTTPSettings
	Log        LogSettings
}

type StateSettings struct {
	AgentPath   string
	UsersPath   string
	HistoryPath string
}

type SocialSettings struct {
	BaseURL string
}

type CompletionSettings struct {
	Provider    Provider
	BaseURL     string
	Model       string
	Temperature float64
}

type RunSettings struct {
	DryRun          bool
	MaxUserAttempts int
	TopicalFailure  domain.FailurePolicy
	MentionsLimit   int
	TimelineLimit   int
}

type HTTPSettings struct {
	RequestTimeout time.Duration
}

type LogSettings struct {
	Level  string
	Format string
}

// Configure points cfg at dir/config.toml with SAGENT_ env overrides and
// installs the defaults. It does not read the file.
func Configure(cfg *viper.Viper, dir string) {
	cfg.SetConfigName(ConfigName)
	cfg.SetConfigType(ConfigType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	setDefaults(cfg)
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault(keyAgentPath, "agentConfig.json")
	cfg.SetDefault(keyUsersPath, "users.json")
	cfg.SetDefault(keyHistoryPath, "tweet-history.json")
	cfg.SetDefault(keySocialBaseURL, defaultSocialBaseURL)
	cfg.SetDefault(keyProvider, string(ProviderOpenAI))
	cfg.SetDefault(keyCompletionBaseURL, "")
	cfg.SetDefault(keyCompletionModel, "")
	cfg.SetDefault(keyTemperature, 1.0)
	cfg.SetDefault(keyDryRun, false)
	cfg.SetDefault(keyMaxUserAttempts, 5)
	cfg.SetDefault(keyTopicalFailure, string(domain.FailurePolicyFatal))
	cfg.SetDefault(keyMentionsLimit, 5)
	cfg.SetDefault(keyTimelineLimit, 5)
	cfg.SetDefault(keyRequestTimeout, defaultRequestTimeout.String())
	cfg.SetDefault(keyLogLevel, "info")
	cfg.SetDefault(keyLogFormat, "json")
}

// Load reads dir/config.toml into cfg, if present, and returns the validated settings.
func Load(cfg *viper.Viper, dir string) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}
	Configure(cfg, dir)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(cfg)
}

func fromViper(cfg *viper.Viper) (Settings, error) {
	settings := Settings{
		State: StateSettings{
			AgentPath:   cfg.GetString(keyAgentPath),
			UsersPath:   cfg.GetString(keyUsersPath),
			HistoryPath: cfg.GetString(keyHistoryPath),
		},
		Social: SocialSettings{BaseURL: cfg.GetString(keySocialBaseURL)},
		Completion: CompletionSettings{
			Provider:    Provider(strings.ToLower(strings.TrimSpace(cfg.GetString(keyProvider)))),
			BaseURL:     cfg.GetString(keyCompletionBaseURL),
			Model:       cfg.GetString(keyCompletionModel),
			Temperature: cfg.GetFloat64(keyTemperature),
		},
		Run: RunSettings{
			DryRun:          cfg.GetBool(keyDryRun),
			MaxUserAttempts: cfg.GetInt(keyMaxUserAttempts),
			MentionsLimit:   cfg.GetInt(keyMentionsLimit),
			TimelineLimit:   cfg.GetInt(keyTimelineLimit),
		},
		HTTP: HTTPSettings{RequestTimeout: cfg.GetDuration(keyRequestTimeout)},
		Log: LogSettings{
			Level:  strings.ToLower(cfg.GetString(keyLogLevel)),
			Format: strings.ToLower(cfg.GetString(keyLogFormat)),
		},
	}

	switch settings.Completion.Provider {
	case ProviderOpenAI:
		if settings.Completion.BaseURL == "" {
			settings.Completion.BaseURL = defaultOpenAIBaseURL
		}
		if settings.Completion.Model == "" {
			settings.Completion.Model = defaultOpenAIModel
		}
	case ProviderGemini:
		if settings.Completion.Model == "" {
			settings.Completion.Model = defaultGeminiModel
		}
	default:
		return Settings{}, fmt.Errorf("unsupported completion provider %q", settings.Completion.Provider)
	}

	policy, err := domain.ParseFailurePolicy(cfg.GetString(keyTopicalFailure))
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", keyTopicalFailure, err)
	}
	settings.Run.TopicalFailure = policy

	if settings.Run.MaxUserAttempts < 1 {
		return Settings{}, fmt.Errorf("%s must be at least 1", keyMaxUserAttempts)
	}
	if settings.Run.MentionsLimit < 1 || settings.Run.TimelineLimit < 1 {
		return Settings{}, errors.New("run limits must be at least 1")
	}
	if settings.HTTP.RequestTimeout <= 0 {
		return Settings{}, fmt.Errorf("%s must be positive", keyRequestTimeout)
	}
	if settings.Log.Format != "json" && settings.Log.Format != "console" {
		return Settings{}, fmt.Errorf("unsupported log format %q", settings.Log.Format)
	}

	return settings, nil
}

// Default returns the settings used when no config file or overrides exist.
func Default() Settings {
	cfg := viper.New()
	setDefaults(cfg)

	settings, err := fromViper(cfg)
	if err != nil {
		panic(err)
	}
	return settings
}

// Encode renders s as a config.toml document.
func Encode(s Settings) ([]byte, error) {
	doc := map[string]any{
		"state": map[string]any{
			"agent_path":   s.State.AgentPath,
			"users_path":   s.State.UsersPath,
			"history_path": s.State.HistoryPath,
		},
		"social": map[string]any{
			"base_url": s.Social.BaseURL,
		},
		"completion": map[string]any{
			"provider":    string(s.Completion.Provider),
			"base_url":    s.Completion.BaseURL,
			"model":       s.Completion.Model,
			"temperature": s.Completion.Temperature,
		},
		"run": map[string]any{
			"dry_run":           s.Run.DryRun,
			"max_user_attempts": s.Run.MaxUserAttempts,
			"topical_failure":   string(s.Run.TopicalFailure),
			"mentions_limit":    s.Run.MentionsLimit,
			"timeline_limit":    s.Run.TimelineLimit,
		},
		"http": map[string]any{
			"request_timeout": s.HTTP.RequestTimeout.String(),
		},
		"log": map[string]any{
			"level":  s.Log.Level,
			"format": s.Log.Format,
		},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	return data, nil
}
