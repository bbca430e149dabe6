package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/clipgen-cli/internal/adapters/api"
	"github.com/bnema/clipgen-cli/internal/adapters/render/screen"
	sqliterepo "github.com/bnema/clipgen-cli/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/clipgen-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/clipgen-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/clipgen-cli/internal/adapters/secrets/file"
	"github.com/bnema/clipgen-cli/internal/application"
	"github.com/bnema/clipgen-cli/internal/domain"
	"github.com/bnema/clipgen-cli/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configAPIBaseURL     = "api.base_url"
	configAPITimeout     = "api.timeout"
	configStateBackend   = "state.backend"
	configStatePath      = "state.path"
	configSecretsDir     = "secrets.dir"
	configSecretsBackend = "secrets.backend"
	configLogLevel       = "log.level"

	configDir = ".config/clipgen"
)

var errLoginRequired = errors.New("not logged in, run `clipgen login` first")

type app struct {
	config     *viper.Viper
	configFile string
	verbose    bool
	bindErr    error

	logger  *zap.Logger
	gateway *api.Client
	store   *application.SessionStore
	studio  *application.Studio
	render  func(screen.Page, screen.RenderOptions) (string, error)
	now     func() time.Time
	closers []func() error
	booted  bool
	bootErr error
	ready   bool
}

func newApp() *app {
	return &app{
		config: viper.New(),
		render: screen.Render,
		now:    time.Now,
	}
}

func (a *app) bindFlag(key string, flag *pflag.Flag) {
	if err := a.config.BindPFlag(key, flag); err != nil {
		a.bindErr = errors.Join(a.bindErr, fmt.Errorf("bind flag %s: %w", flag.Name, err))
	}
}

// init loads configuration and wires adapters. It does not touch the
// network; commands that need a session call requireSession.
func (a *app) init(cmd *cobra.Command) error {
	if a.ready {
		return nil
	}
	if a.bindErr != nil {
		return a.bindErr
	}

	if err := a.loadConfig(); err != nil {
		return err
	}

	logger, err := newLogger(a.config.GetString(configLogLevel), a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	kv, err := a.openStateStore(cmd.Context())
	if err != nil {
		return err
	}

	secrets, err := a.openSecretStore()
	if err != nil {
		return err
	}

	gateway, err := api.NewClient(
		a.config.GetString(configAPIBaseURL),
		api.WithRequestTimeout(a.config.GetDuration(configAPITimeout)),
		api.WithLogger(logger.Named("api")),
	)
	if err != nil {
		return fmt.Errorf("wire api client: %w", err)
	}
	a.gateway = gateway

	a.store = application.NewSessionStore(kv, secrets, screen.ThemeApplier{})
	a.studio = application.NewStudio(a.store, gateway, ports.SystemClock{}, logger.Named("studio"), domain.PathGenerate)
	a.ready = true

	logger.Debug("wired",
		zap.String("api", gateway.BaseURL()),
		zap.String("state_backend", a.config.GetString(configStateBackend)),
		zap.String("secrets_backend", a.config.GetString(configSecretsBackend)),
	)
	return nil
}

func (a *app) loadConfig() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := a.config
	cfg.SetDefault(configAPIBaseURL, api.DefaultBaseURL)
	cfg.SetDefault(configAPITimeout, api.DefaultRequestTimeout)
	cfg.SetDefault(configStateBackend, "toml")
	cfg.SetDefault(configSecretsBackend, "chain")
	cfg.SetDefault(configSecretsDir, filepath.Join(homeDir, configDir, "secrets"))
	cfg.SetDefault(configLogLevel, "warn")

	cfg.SetEnvPrefix("CLIPGEN")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if a.configFile != "" {
		cfg.SetConfigFile(a.configFile)
	} else {
		cfg.SetConfigName("config")
		cfg.SetConfigType("toml")
		cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) openStateStore(ctx context.Context) (ports.KeyValueStore, error) {
	switch backend := strings.ToLower(a.config.GetString(configStateBackend)); backend {
	case "", "toml":
		repo, err := tomlrepo.NewRepository(a.config)
		if err != nil {
			return nil, fmt.Errorf("wire state store: %w", err)
		}
		return repo, nil
	case "sqlite":
		repo, err := sqliterepo.NewRepository(ctx, a.config)
		if err != nil {
			return nil, fmt.Errorf("wire state store: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q (want toml or sqlite)", backend)
	}
}

func (a *app) openSecretStore() (ports.SecretStore, error) {
	dir := a.config.GetString(configSecretsDir)

	switch backend := strings.ToLower(a.config.GetString(configSecretsBackend)); backend {
	case "", "chain":
		store, err := chainstore.NewPassFirstWithFileFallback(dir)
		if err != nil {
			return nil, fmt.Errorf("wire secret store chain: %w", err)
		}
		return store, nil
	case "file":
		return filestore.NewStore(dir), nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q (want chain or file)", backend)
	}
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true

	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if verbose {
		parsed = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(parsed)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return logger, nil
}

// boot restores the cached session once per process.
func (a *app) boot(ctx context.Context) error {
	if a.booted {
		return a.bootErr
	}
	a.booted = true
	a.bootErr = a.studio.Shell.Boot(ctx)
	return a.bootErr
}

// requireSession boots and fails unless a user is logged in. A failed credit
// refresh is only a warning while the session itself is intact.
func (a *app) requireSession(ctx context.Context) error {
	err := a.boot(ctx)
	if a.studio.Shell.Snapshot().Authenticated() {
		if err != nil {
			a.logger.Warn("refresh credits", zap.Error(err))
		}
		return nil
	}
	if err != nil && errors.Is(err, domain.ErrAuth) {
		return fmt.Errorf("%w: run `clipgen login` again", err)
	}
	if err != nil {
		return err
	}
	return errLoginRequired
}

func (a *app) close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && a.logger != nil {
			a.logger.Warn("close", zap.Error(err))
		}
	}
	a.closers = nil
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// write renders page, inside the Layout when framed, to w.
func (a *app) write(w io.Writer, page screen.Page, framed bool) error {
	opts := screen.RenderOptions{Now: a.now()}
	if framed {
		opts.Frame = &screen.Frame{
			Snapshot: a.studio.Shell.Snapshot(),
			Nav:      a.studio.Router.Nav(),
			Current:  a.studio.Router.Current(),
		}
	}

	rendered, err := a.render(page, opts)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err = fmt.Fprintln(w, rendered)
	return err
}
