package daemon

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/matheus3301/wave/internal/api"
	"github.com/matheus3301/wave/internal/bus"
	"github.com/matheus3301/wave/internal/config"
	"github.com/matheus3301/wave/internal/directory"
	"github.com/matheus3301/wave/internal/feed"
	"github.com/matheus3301/wave/internal/lock"
	"github.com/matheus3301/wave/internal/logging"
	"github.com/matheus3301/wave/internal/messagelog"
	"github.com/matheus3301/wave/internal/profile"
	"github.com/matheus3301/wave/internal/remote"
	"github.com/matheus3301/wave/internal/seed"
	"github.com/matheus3301/wave/internal/settings"
	"github.com/matheus3301/wave/internal/status"
	"github.com/matheus3301/wave/internal/store"
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	ProfileName string
	SocketPath  string // optional override for testing; empty = use default
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStore,
			provideSeed,
			provideDirectory,
			provideMessageLog,
			provideFeed,
			provideSettings,
			provideRelay,
			provideSessionService,
			provideChatService,
			provideMessageService,
			provideFeedService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig() *config.Config {
	return config.LoadOrDefault(profile.ConfigPath())
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(profile.LogPath(p.ProfileName), p.ProfileName)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.ProfileName); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.ProfileName))
	l, err := lock.Acquire(profile.Dir(p.ProfileName))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

// provideStore takes the lock so the database is never opened by a second daemon.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	db, err := store.Open(profile.DBPath(p.ProfileName))
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", db.Path()))
	return db, nil
}

func provideSeed() (*seed.Dataset, error) {
	return seed.Default()
}

func provideDirectory(ds *seed.Dataset) *directory.Directory {
	return directory.New(ds.Chats)
}

func provideMessageLog(ds *seed.Dataset, dir *directory.Directory, b *bus.Bus) *messagelog.Log {
	return messagelog.New(ds.Messages, dir, b)
}

func provideFeed(ds *seed.Dataset, b *bus.Bus) *feed.Feed {
	return feed.New(ds, b)
}

func provideSettings(db *store.DB, cfg *config.Config, m *status.Machine, b *bus.Bus, logger *zap.Logger) *settings.Store {
	return settings.New(settings.Options{
		KV:          db,
		SystemTheme: settings.SystemTheme(cfg.Appearance.SystemTheme),
		Tokens:      settings.NewTokenIssuer(cfg.Session.SigningKey),
		Machine:     m,
		Bus:         b,
		Logger:      logger.Named("settings"),
	})
}

func provideRelay(b *bus.Bus, logger *zap.Logger) *remote.Relay {
	return remote.NewRelay(remote.Nop{}, b, logger.Named("relay"))
}

func provideSessionService(p Params, m *status.Machine, st *settings.Store, dir *directory.Directory, logger *zap.Logger) *api.SessionService {
	return api.NewSessionService(p.ProfileName, m, st, dir, logger)
}

func provideChatService(dir *directory.Directory) *api.ChatService {
	return api.NewChatService(dir)
}

func provideMessageService(log *messagelog.Log, b *bus.Bus) *api.MessageService {
	return api.NewMessageService(log, b)
}

func provideFeedService(f *feed.Feed, cfg *config.Config) *api.FeedService {
	return api.NewFeedService(f, cfg.Carousel.Interval.Duration)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, db *store.DB, st *settings.Store, relay *remote.Relay, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Theme and session must be in place before the first request.
			st.Load()

			relay.Start(context.Background())

			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			relay.Stop()
			srv.Stop(ctx)
			closeStorage(ctx, st, db, logger)
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}

type drainer interface {
	Close(ctx context.Context) error
}

// closeStorage drains the settings writer and then closes the database. A
// writer still inside a write when ctx ends keeps the database open; the
// process exit releases it.
func closeStorage(ctx context.Context, st drainer, db io.Closer, logger *zap.Logger) {
	if err := st.Close(ctx); err != nil {
		logger.Warn("preference writer still running, leaving store open", zap.Error(err))
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("error closing store", zap.Error(err))
	}
}
