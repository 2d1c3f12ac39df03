package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	EnvConsumerKey    = "CONSUMER_KEY"
	EnvConsumerSecret = "CONSUMER_SECRET"
	EnvAccessToken    = "ACCESS_TOKEN"
	EnvAccessSecret   = "ACCESS_SECRET_TOKEN"
	EnvBearerToken    = "BEARER_TOKEN"
	EnvOpenAIKey      = "OPENAI_API_KEY"
	EnvGeminiKey      = "GEMINI_API_KEY"
	dotEnvFile        = ".env"
)

var ErrMissingEnv = errors.New("missing required environment variable")

type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingEnv, e.Name)
}

func (e *MissingEnvError) Unwrap() error {
	return ErrMissingEnv
}

type Secrets struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
	// BearerToken is required but not used by any request.
	BearerToken   string
	CompletionKey string
}

// LoadSecrets reads credentials from the environment, falling back to dir/.env.
func LoadSecrets(dir string, provider Provider) (Secrets, error) {
	completionEnv, err := completionKeyEnv(provider)
	if err != nil {
		return Secrets{}, err
	}

	cfg := viper.New()
	cfg.SetConfigFile(filepath.Join(dir, dotEnvFile))
	cfg.SetConfigType("env")
	if err := cfg.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Secrets{}, fmt.Errorf("read %s: %w", dotEnvFile, err)
	}

	var secrets Secrets
	for _, entry := range []struct {
		name   string
		target *string
	}{
		{name: EnvConsumerKey, target: &secrets.ConsumerKey},
		{name: EnvConsumerSecret, target: &secrets.ConsumerSecret},
		{name: EnvAccessToken, target: &secrets.AccessToken},
		{name: EnvAccessSecret, target: &secrets.AccessSecret},
		{name: EnvBearerToken, target: &secrets.BearerToken},
		{name: completionEnv, target: &secrets.CompletionKey},
	} {
		key := strings.ToLower(entry.name)
		if err := cfg.BindEnv(key, entry.name); err != nil {
			return Secrets{}, fmt.Errorf("bind %s: %w", entry.name, err)
		}

		value := strings.TrimSpace(cfg.GetString(key))
		if value == "" {
			return Secrets{}, &MissingEnvError{Name: entry.name}
		}
		*entry.target = value
	}

	return secrets, nil
}

func completionKeyEnv(provider Provider) (string, error) {
	switch provider {
	case ProviderOpenAI, "":
		return EnvOpenAIKey, nil
	case ProviderGemini:
		return EnvGeminiKey, nil
	default:
		return "", fmt.Errorf("unsupported completion provider %q", provider)
	}
}
