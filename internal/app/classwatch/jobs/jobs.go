package jobs

import (
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/cache"
	"github.com/endeavored/classwatch/internal/pkg/helpers"
	"github.com/endeavored/classwatch/internal/pkg/metrics"
	"github.com/endeavored/classwatch/internal/pkg/store"
)

// Jobs bundles the operations the web, CLI and Slack surfaces share.
type Jobs struct {
	Alerts    *AlertChecker
	Details   *DetailLookup
	WatchList *WatchListJob
}

func New(searcher helpers.ClassSearcher, st store.WatchStore, c *cache.Service, m *metrics.Metrics, logger *zap.Logger) *Jobs {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Jobs{
		Alerts:    courseAvailabilityJob(searcher, st, m, logger),
		Details:   courseDetailJob(searcher, c, logger),
		WatchList: watchListJob(st, logger),
	}
}
