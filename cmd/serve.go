package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bhr/crm-console/internal/config"
	"github.com/bhr/crm-console/internal/logger"
	"github.com/bhr/crm-console/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CRM console web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Init(cfg.Log.Level)
		defer func() { _ = logger.L().Sync() }()

		server := web.NewServer(cfg)

		errCh := make(chan error, 1)
		go func() {
			logger.L().Info("starting http",
				zap.String("addr", cfg.HTTP.Addr),
				zap.String("platform", cfg.Platform.BaseURL),
			)
			errCh <- server.Start(cfg.HTTP.Addr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.L().Info("signal received, shutting down", zap.String("signal", sig.String()))
		case err := <-errCh:
			if err != nil {
				logger.L().Error("http server exited", zap.Error(err))
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)

		return nil
	},
}
