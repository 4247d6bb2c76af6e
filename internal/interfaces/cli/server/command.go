package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"complaintdesk/internal/infrastructure/config"
	httpRouter "complaintdesk/internal/interfaces/http"
	"complaintdesk/internal/shared/biztime"
	"complaintdesk/internal/shared/constants"
	"complaintdesk/internal/shared/goroutine"
	"complaintdesk/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the complaint desk HTTP API with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = MapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Timezone); err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	log.Infow("starting server",
		"environment", env,
		"auth_mode", cfg.Auth.Mode,
		"transition_policy", cfg.Complaint.TransitionPolicy,
		"session_backend", cfg.Session.Backend)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := httpRouter.NewContainer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	defer container.Shutdown()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	goroutine.SafeGo(log, "http-server", func() {
		log.Infow("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	})

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// MapEnvToGinMode translates an environment name to a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return gin.ReleaseMode
	case constants.EnvTest, "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
