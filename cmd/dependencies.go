package cmd

import (
	"context"
	"os"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"stock-backtest/config"
	"stock-backtest/internal/delivery/cli"
	"stock-backtest/internal/repository"
	"stock-backtest/internal/service"
	"stock-backtest/internal/session"
	"stock-backtest/pkg/cache"
	"stock-backtest/pkg/logger"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
	session   *session.Manager
	repo      *repository.Repository
	services  *service.Service
	cli       *cli.CLIHandler
}

// NewAppDependency wires the whole client. The session store comes first: the
// manager it backs is the token provider every API repository reads from.
func NewAppDependency(ctx context.Context) (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	sessionRepo, err := repository.NewSQLiteSessionRepository(cfg.Session.DBPath)
	if err != nil {
		log.Error("Failed to open session store", logger.ErrorField(err))
		return nil, err
	}

	sess := session.NewManager(sessionRepo)
	if err := sess.Hydrate(ctx); err != nil {
		log.Error("Failed to hydrate session", logger.ErrorField(err))
		return nil, err
	}

	repo := repository.NewRepository(cfg, log, sess.Token, sessionRepo)
	inmemoryCache := cache.New(cfg.Cache.DefaultExpiration, cfg.Cache.CleanupInterval)
	services := service.NewService(cfg, log, repo, inmemoryCache, sess)

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      echo.New(),
		cache:     inmemoryCache,
		session:   sess,
		repo:      repo,
		services:  services,
		cli:       cli.NewCLIHandler(os.Stdout, log, services, sess),
	}, nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	_ = d.log.Sync()
	return d.repo.SessionRepo.Close()
}
