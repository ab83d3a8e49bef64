package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/app/classwatch/slack"
	"github.com/endeavored/classwatch/internal/app/classwatch/web"
	"github.com/endeavored/classwatch/internal/pkg/heroku"
)

const shutdownTimeout = 10 * time.Second

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	Long: `Serve the alert page and JSON API. When SLACK_SOCKET_TOKEN is set the
watch list can also be edited with Slack slash commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, logr)
		if err != nil {
			return err
		}
		defer a.close(context.Background())

		if port != 0 {
			cfg.Port = port
		}
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: web.NewRouter(cfg, a.jobs, a.metrics, logr),
		}

		if cfg.Slack.SocketToken != "" {
			go slack.NewListener(cfg.Slack.SocketToken, a.jobs.WatchList, logr).Run(ctx)
		}
		if cfg.Heartbeat.URL != "" {
			go heroku.StartHeartbeat(ctx, cfg.Heartbeat.URL, cfg.Heartbeat.Interval, logr)
		}

		errCh := make(chan error, 1)
		go func() {
			logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		logr.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logr.Error("server shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")
}
