package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/app/classwatch/jobs"
	"github.com/endeavored/classwatch/internal/pkg/cache"
	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/config"
	"github.com/endeavored/classwatch/internal/pkg/logger"
	"github.com/endeavored/classwatch/internal/pkg/metrics"
	"github.com/endeavored/classwatch/internal/pkg/models"
	"github.com/endeavored/classwatch/internal/pkg/store"
)

var (
	cfg  *config.Config
	logr *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "classwatch",
	Short: "Watch ASU class sections for open seats",
	Long: `classwatch searches the ASU class catalog for the watched classes and
reports which whitelisted sections have open seats. It runs as a web
server or as one-off terminal commands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logr, err = logger.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to init logger: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	err := rootCmd.Execute()
	if logr != nil {
		logr.Sync() //nolint:errcheck
	}
	if err != nil {
		os.Exit(1)
	}
}

// app is everything a command needs to run the jobs.
type app struct {
	jobs    *jobs.Jobs
	metrics *metrics.Metrics
	closers []func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config, logr *zap.Logger) (*app, error) {
	a := &app{metrics: metrics.New()}

	defaults := models.WatchList{
		Term:      cfg.Watch.Term,
		Classes:   cfg.Watch.Classes,
		Whitelist: cfg.Watch.Whitelist,
	}
	var st store.WatchStore
	if cfg.Mongo.URI != "" {
		mongoStore, err := store.NewMongoStore(ctx, cfg.Mongo, defaults, logr)
		if err != nil {
			return nil, err
		}
		logr.Info("watch list stored in mongo", zap.String("database", cfg.Mongo.Database), zap.String("collection", cfg.Mongo.Collection))
		st = mongoStore
	} else {
		st = store.NewMemoryStore(defaults)
	}
	a.closers = append(a.closers, st.Close)

	var detailCache *cache.Service
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis, logr)
		if err != nil {
			a.close(ctx)
			return nil, err
		}
		repo := cache.NewRepository(client)
		a.closers = append(a.closers, func(context.Context) error { return repo.Close() })
		detailCache = cache.NewService(repo, cfg.Cache.TTL, a.metrics, logr, true)
		logr.Info("detail cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	client := catalog.NewClient(cfg.Catalog, a.metrics, logr)
	a.jobs = jobs.New(client, st, detailCache, a.metrics, logr)
	return a, nil
}

func (a *app) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			logr.Warn("shutdown failed", zap.Error(err))
		}
	}
}
