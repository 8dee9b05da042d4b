package daemon

import (
	"context"
	"os"

	"courier/internal/bus"
	"courier/internal/config"
	"courier/internal/console"
	"courier/internal/contacts"
	"courier/internal/delivery"
	"courier/internal/dialog"
	"courier/internal/draft"
	"courier/internal/lock"
	"courier/internal/logging"
	"courier/internal/resolve"
	"courier/internal/router"
	"courier/internal/session"
	"courier/internal/skill"
	"courier/internal/store"
	"courier/internal/vocab"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideConfig,
			provideBus,
			provideLock,
			provideStore,
			provideDraftStore,
			provideResolver,
			provideVocab,
			provideRenderer,
			provideSpeaker,
			provideRequester,
			provideDirectory,
			provideContactService,
			provideDispatcher,
			provideSkill,
			provideRouter,
			provideConsole,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName)
}

func provideConfig() *config.Config {
	return config.LoadOrDefault(session.ConfigPath())
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func provideStore(p Params, logger *zap.Logger) (*store.DB, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	dbPath := session.DBPath(p.SessionName)
	db, err := store.Open(dbPath)
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
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideDraftStore(cfg *config.Config) *draft.Store {
	return draft.NewStore(cfg.DraftTTL())
}

func provideResolver(cfg *config.Config, logger *zap.Logger) *resolve.Resolver {
	return resolve.New(cfg.Region, logger)
}

func provideVocab(cfg *config.Config) *vocab.Matcher {
	return vocab.NewMatcher(cfg.Vocab)
}

func provideRenderer(cfg *config.Config) *dialog.Renderer {
	return dialog.NewRenderer(cfg.Dialogs)
}

func provideSpeaker(r *dialog.Renderer, b *bus.Bus) *dialog.BusSpeaker {
	return dialog.NewBusSpeaker(r, b)
}

func provideRequester(b *bus.Bus) *contacts.BusRequester {
	return contacts.NewBusRequester(b)
}

func provideDirectory(cfg *config.Config) *contacts.Directory {
	return contacts.NewDirectory(cfg.Contacts)
}

func provideContactService(dir *contacts.Directory, b *bus.Bus, logger *zap.Logger) *contacts.Service {
	return contacts.NewService(dir, b, logger)
}

func provideDispatcher(db *store.DB, b *bus.Bus, logger *zap.Logger) *delivery.Dispatcher {
	return delivery.NewDispatcher(db, delivery.DefaultChannels(b), b, logger)
}

func provideSkill(
	drafts *draft.Store,
	resolver *resolve.Resolver,
	matcher *vocab.Matcher,
	speaker *dialog.BusSpeaker,
	requester *contacts.BusRequester,
	dispatcher *delivery.Dispatcher,
	logger *zap.Logger,
) *skill.Skill {
	return skill.New(drafts, resolver, matcher, speaker, requester, dispatcher, logger)
}

func provideRouter(sk *skill.Skill, matcher *vocab.Matcher, b *bus.Bus, logger *zap.Logger) *router.Router {
	return router.New(sk, matcher, b, logger)
}

func provideConsole(b *bus.Bus, logger *zap.Logger) *console.Console {
	return console.New(b, os.Stdin, os.Stdout, logger)
}

func registerLifecycle(
	lc fx.Lifecycle,
	lk *lock.Lock,
	db *store.DB,
	drafts *draft.Store,
	svc *contacts.Service,
	dispatcher *delivery.Dispatcher,
	rt *router.Router,
	cons *console.Console,
	logger *zap.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rt.Start(context.Background())
			svc.Start(context.Background())
			dispatcher.Start(context.Background())
			drafts.StartSweeper(context.Background())
			cons.Start(context.Background())
			logger.Info("courierd ready")
			return nil
		},
		OnStop: func(_ context.Context) error {
			cons.Stop()
			drafts.StopSweeper()
			dispatcher.Stop()
			svc.Stop()
			rt.Stop()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
