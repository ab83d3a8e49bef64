package jobs

import (
	"context"

	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/helpers"
	"github.com/endeavored/classwatch/internal/pkg/metrics"
	"github.com/endeavored/classwatch/internal/pkg/models"
	"github.com/endeavored/classwatch/internal/pkg/store"
)

// AlertChecker reports seat status for whitelisted sections of the watched
// classes. Every call fetches from scratch; there is no notification state.
type AlertChecker struct {
	searcher helpers.ClassSearcher
	store    store.WatchStore
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func courseAvailabilityJob(searcher helpers.ClassSearcher, st store.WatchStore, m *metrics.Metrics, logger *zap.Logger) *AlertChecker {
	return &AlertChecker{searcher: searcher, store: st, metrics: m, logger: logger}
}

// CheckAllClasses checks the stored watch list. Only a store failure is
// returned as an error; fetch failures become status lines.
func (ac *AlertChecker) CheckAllClasses(ctx context.Context) ([]string, error) {
	wl, err := ac.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ac.Check(ctx, wl), nil
}

// Check produces one line per whitelisted section, in class then catalog order.
func (ac *AlertChecker) Check(ctx context.Context, wl models.WatchList) []string {
	statuses := make([]string, 0)
	open := 0
	for _, className := range wl.Classes {
		alerts, err := ac.fetchClassAlerts(ctx, className, wl)
		if err != nil {
			ac.logger.Warn("alert fetch failed", zap.String("class", className), zap.Error(err))
			statuses = append(statuses, helpers.FetchErrorLine(className, err))
			continue
		}
		for _, alert := range alerts {
			if alert.Open {
				open++
				ac.logger.Info("open seat", zap.String("class", className), zap.String("classNumber", alert.ClassNumber))
			}
			statuses = append(statuses, alert.String())
		}
	}
	ac.metrics.SetAlertSnapshot(len(statuses), open)
	return statuses
}

func (ac *AlertChecker) fetchClassAlerts(ctx context.Context, className string, wl models.WatchList) ([]helpers.SeatAlert, error) {
	q, err := catalog.ParseClassQuery(className, wl.Term)
	if err != nil {
		return nil, err
	}
	records, err := ac.searcher.SearchClasses(ctx, catalog.AlertParams(q))
	if err != nil {
		return nil, err
	}

	var alerts []helpers.SeatAlert
	for _, rec := range records {
		if !wl.IsWhitelisted(rec.String("CLASSNBR")) {
			continue
		}
		alerts = append(alerts, helpers.NewSeatAlert(className, rec))
	}
	return alerts, nil
}
