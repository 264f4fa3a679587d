package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "requisiciones_api/docs"
	"requisiciones_api/internal/adapter/http/routes"
	"requisiciones_api/internal/config"
	"requisiciones_api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"
)

// @title           Requisiciones API
// @version         1.0
// @description     Capture, document export and submission of purchase requisitions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	// Default logger until the configured one is built.
	_ = logger.Init("info", "json")

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatalf(context.Background(), "[app][config] load failed err=%v", err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		logger.Fatalf(context.Background(), "[app][logger] init failed err=%v", err)
	}

	if err := run(cfg); err != nil {
		logger.Errorf(context.Background(), "[app] stopped with error err=%v", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Infof(context.Background(), "[app] stopped")
	logger.Sync()
}

func run(cfg config.Config) error {
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := wire(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: routes.NewRouter(app.Handlers),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof(gctx, "[app][http] listening addr=%s storage=%s", srv.Addr, cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		logger.Infof(shutdownCtx, "[app][http] shutting down timeout=%s", cfg.ShutdownTimeout)
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
