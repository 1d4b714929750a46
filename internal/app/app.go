package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/serviceconnect/internal/config"
	"github.com/GlebRadaev/serviceconnect/internal/handlers"
	"github.com/GlebRadaev/serviceconnect/internal/pg"
	"github.com/GlebRadaev/serviceconnect/internal/repo"
	"github.com/GlebRadaev/serviceconnect/internal/service"
	"github.com/GlebRadaev/serviceconnect/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories
	pool *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	if err = a.setup(ctx, cfg); err != nil {
		return err
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

// setup builds storage, services and handlers for cfg and seeds the demo
// accounts when asked to.
func (a *Application) setup(ctx context.Context, cfg *config.Config) error {
	a.cfg = cfg

	switch cfg.Storage {
	case config.StoragePostgres:
		pool, err := getPgxpool(ctx, cfg)
		if err != nil {
			zap.L().Error("build pgx pool failed: ", zap.Error(err))
			return fmt.Errorf("can't build pgx pool: %w", err)
		}
		if err := pg.RunMigrations(pool); err != nil {
			zap.L().Error("migrations failed: ", zap.Error(err))
			pool.Close()
			return fmt.Errorf("can't run migrations: %w", err)
		}
		a.pool = pool
		a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	default:
		a.repo = repo.NewMemory()
	}

	a.srv = service.New(cfg, a.repo)
	a.api = handlers.New(a.srv)

	if cfg.SeedDemo {
		if err := a.srv.Seeder.SeedDemoAccounts(ctx); err != nil {
			zap.L().Error("seeding demo accounts failed: ", zap.Error(err))
			return fmt.Errorf("can't seed demo accounts: %w", err)
		}
		zap.L().Info("demo accounts ready")
	}
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) router() http.Handler {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	return router
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           a.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
