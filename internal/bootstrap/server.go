package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mohammadpnp/customer-import/internal/config"
	httpecho "github.com/mohammadpnp/customer-import/internal/interfaces/http/echo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func NewHTTPServer(
	cfg config.Config,
	logger *zap.Logger,
	importHandler *httpecho.ImportHandler,
	customerHandler *httpecho.CustomerHandler,
) *echo.Echo {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Validator = httpecho.NewValidator()

	server.Use(middleware.Recover())
	server.Use(httpecho.RequestLogger(logger))
	server.Use(middleware.BodyLimit(cfg.BodyLimit))

	httpecho.RegisterRoutes(server, importHandler, customerHandler, httpecho.RouteConfig{
		AdminToken:    cfg.AdminAPIToken,
		ImportLimiter: httpecho.NewRateLimiter(cfg.ImportRateLimitRPM),
	})

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return server
}

// Run serves on addr until ctx is done, then shuts the server down.
func Run(ctx context.Context, server *echo.Echo, addr string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
