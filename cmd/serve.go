package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/session"
	"github.com/Zachkp/portfolio/internal/web"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveAddr string

//nolint:gochecknoglobals // Cobra boilerplate
var serveSessionTTL time.Duration

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the portfolio web server",
	Long: `Run the portfolio web server.

Settings come from the environment (a .env file is loaded first) and may be
overridden by flags:
  PORT                      listen port or host:port (default 8080)
  PORTFOLIO_CONTENT         content TOML file
  PORTFOLIO_SESSION_TTL     idle time before a visitor's page state is dropped (default 30m)
  PORTFOLIO_SWEEP_INTERVAL  how often idle pages are swept (default 1m)
  LOG_LEVEL                 debug, info, warn or error (default info)

Example:
  portfolio serve
  portfolio serve --addr 127.0.0.1:3000 --content site.toml`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides PORT)")
	serveCmd.Flags().DurationVar(&serveSessionTTL, "session-ttl", 0, "idle session lifetime (overrides PORTFOLIO_SESSION_TTL)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Port = serveAddr
	}
	if serveSessionTTL > 0 {
		cfg.SessionTTL = serveSessionTTL
	}

	logger, err := newLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	site, err := content.Load(resolveContentPath(cfg))
	if err != nil {
		return err
	}

	sessions := session.NewStore(cfg.SessionTTL, logger)
	srv, err := web.New(site, sessions, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeperDone := make(chan struct{})
	go func() {
		sessions.Run(ctx, cfg.SweepInterval)
		close(sweeperDone)
	}()

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("portfolio listening", "addr", cfg.Addr(), "projects", len(site.Projects), "skills", len(site.Skills))
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		stop()
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = httpServer.Shutdown(shutdownCtx)
	}
	<-sweeperDone

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}
	return nil
}
