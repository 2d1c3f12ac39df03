package cmd

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/bnema/social-agent-cli/internal/adapters/completion/gemini"
	"github.com/bnema/social-agent-cli/internal/adapters/completion/openai"
	statusadapter "github.com/bnema/social-agent-cli/internal/adapters/render/status"
	"github.com/bnema/social-agent-cli/internal/adapters/social/x"
	"github.com/bnema/social-agent-cli/internal/adapters/state/jsonfile"
	"github.com/bnema/social-agent-cli/internal/application"
	"github.com/bnema/social-agent-cli/internal/config"
	"github.com/bnema/social-agent-cli/internal/logging"
	"github.com/bnema/social-agent-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	configDir      string
	settings       config.Settings
	logger         *zap.Logger
	stores         application.Stores
	queries        *application.QueryService
	statusRenderer func(application.Status, statusadapter.RenderOptions) (string, error)
	httpClient     *http.Client
	now            func() time.Time
}

func (a *app) wire(opts *rootOptions) error {
	configDir, err := filepath.Abs(opts.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg := viper.New()
	settings, err := config.Load(cfg, configDir)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	logger, err := logging.New(settings.Log.Level, settings.Log.Format, opts.verbose)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	paths, err := jsonfile.ResolvePaths(cfg, configDir)
	if err != nil {
		return fmt.Errorf("wire state paths: %w", err)
	}

	stores := application.Stores{
		Agent:   jsonfile.NewAgentStore(paths.Agent),
		Users:   jsonfile.NewUserStore(paths.Users),
		History: jsonfile.NewHistoryStore(paths.History),
	}

	a.configDir = configDir
	a.settings = settings
	a.logger = logger
	a.stores = stores
	a.queries = application.NewQueryService(stores)
	a.statusRenderer = statusadapter.Render
	a.httpClient = http.DefaultClient
	a.now = time.Now

	logger.Debug("wired app",
		zap.String("config_dir", configDir),
		zap.String("agent_path", paths.Agent),
		zap.String("users_path", paths.Users),
		zap.String("history_path", paths.History))

	return nil
}

func (a *app) secrets() (config.Secrets, error) {
	return config.LoadSecrets(a.configDir, a.settings.Completion.Provider)
}

func (a *app) socialClient(ctx context.Context, secrets config.Secrets) ports.SocialClient {
	return x.Client{
		API:            x.API{BaseURL: a.settings.Social.BaseURL},
		HTTPClient:     x.NewOAuth1HTTPClient(ctx, a.httpClient, oauthCredentials(secrets)),
		RequestTimeout: a.settings.HTTP.RequestTimeout,
	}
}

func (a *app) completer(ctx context.Context, secrets config.Secrets) (ports.Completer, error) {
	completion := a.settings.Completion

	switch completion.Provider {
	case config.ProviderGemini:
		client, err := gemini.NewClient(ctx, secrets.CompletionKey, completion.Model, completion.Temperature)
		if err != nil {
			return nil, fmt.Errorf("wire gemini completer: %w", err)
		}
		return client, nil
	default:
		return openai.Client{
			BaseURL:        completion.BaseURL,
			APIKey:         secrets.CompletionKey,
			Model:          completion.Model,
			Temperature:    completion.Temperature,
			HTTPClient:     a.httpClient,
			RequestTimeout: a.settings.HTTP.RequestTimeout,
		}, nil
	}
}

func (a *app) runner(ctx context.Context, dryRun bool) (*application.Runner, error) {
	secrets, err := a.secrets()
	if err != nil {
		return nil, err
	}

	completer, err := a.completer(ctx, secrets)
	if err != nil {
		return nil, err
	}

	run := a.settings.Run
	return application.NewRunner(
		a.stores,
		a.socialClient(ctx, secrets),
		completer,
		ports.SystemClock{},
		ports.RandomPicker{},
		a.logger,
		application.RunOptions{
			DryRun:          run.DryRun || dryRun,
			MaxUserAttempts: run.MaxUserAttempts,
			TopicalFailure:  run.TopicalFailure,
			MentionsLimit:   run.MentionsLimit,
			TimelineLimit:   run.TimelineLimit,
		},
	), nil
}

func (a *app) userService(ctx context.Context) (*application.UserService, error) {
	secrets, err := a.secrets()
	if err != nil {
		return nil, err
	}

	return application.NewUserService(a.stores.Users, a.socialClient(ctx, secrets)), nil
}

func oauthCredentials(secrets config.Secrets) x.Credentials {
	return x.Credentials{
		ConsumerKey:    secrets.ConsumerKey,
		ConsumerSecret: secrets.ConsumerSecret,
		AccessToken:    secrets.AccessToken,
		AccessSecret:   secrets.AccessSecret,
	}
}
