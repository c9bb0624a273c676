package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/customer-import/internal/application/customer"
	"github.com/mohammadpnp/customer-import/internal/bootstrap"
	"github.com/mohammadpnp/customer-import/internal/config"
	domain "github.com/mohammadpnp/customer-import/internal/domain/customer"
	"github.com/mohammadpnp/customer-import/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/customer-import/internal/interfaces/http/echo"
	"github.com/mohammadpnp/customer-import/internal/password"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			config.Load,
			bootstrap.NewLogger,
			newGormDB,
			newPGXPool,
			newCustomerStore,
			newImportBatchStore,
			newAuthIdentityStore,
			newPasswordHasher,
			app.NewImportCustomers,
			app.NewGetCustomerByID,
			app.NewGetImportByID,
			httpecho.NewImportHandler,
			httpecho.NewCustomerHandler,
			bootstrap.NewHTTPServer,
		),
		fx.Invoke(startHTTPServer),
	).Run()
}

func newGormDB(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	gdb, err := bootstrap.OpenGorm(cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	return gdb, nil
}

func newPGXPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := bootstrap.OpenPool(context.Background(), cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}

func newCustomerStore(gdb *gorm.DB) domain.CustomerStore {
	return repository.NewCustomerRepository(gdb)
}

func newImportBatchStore(gdb *gorm.DB) domain.ImportBatchStore {
	return repository.NewCustomerImportRepository(gdb)
}

func newAuthIdentityStore(pool *pgxpool.Pool) domain.AuthIdentityStore {
	return repository.NewAuthIdentityRepository(pool)
}

func newPasswordHasher(cfg config.Config) domain.PasswordHasher {
	return password.NewHasher(password.Params{
		LogN: cfg.ScryptLogN,
		R:    cfg.ScryptR,
		P:    cfg.ScryptP,
	})
}

func startHTTPServer(lc fx.Lifecycle, server *echo.Echo, cfg config.Config, logger *zap.Logger) {
	addr := ":" + cfg.HTTPPort
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runCtx, stop := context.WithCancel(context.Background())
			cancel = stop
			done = make(chan struct{})

			go func() {
				defer close(done)
				logger.Info("http server listening", zap.String("addr", addr))
				if err := bootstrap.Run(runCtx, server, addr); err != nil {
					logger.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			if done == nil {
				return nil
			}
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}
