package jobs

import (
	"context"

	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/cache"
	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/helpers"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

// DetailLookup serves class detail searches, through the cache when enabled.
type DetailLookup struct {
	searcher helpers.ClassSearcher
	cache    *cache.Service
	logger   *zap.Logger
}

func courseDetailJob(searcher helpers.ClassSearcher, c *cache.Service, logger *zap.Logger) *DetailLookup {
	return &DetailLookup{searcher: searcher, cache: c, logger: logger}
}

// Search returns the sections of identifier in term. Errors are
// *apperrors.Error values ready to be shown to the user.
func (d *DetailLookup) Search(ctx context.Context, identifier, term string) ([]models.ClassSummary, error) {
	q, err := catalog.ParseClassQuery(identifier, term)
	if err != nil {
		return nil, err
	}

	key := cache.DetailKey(q)
	var cached []models.ClassSummary
	if d.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	summaries, err := helpers.FetchQueryDetails(ctx, d.searcher, q, identifier)
	if err != nil {
		d.logger.Warn("class detail lookup failed", zap.String("class", identifier), zap.Error(err))
		return nil, err
	}
	d.cache.Set(ctx, key, summaries)
	return summaries, nil
}

// Tracked returns live summaries of the whitelisted sections of every watched
// class, in class then catalog order. Classes that fail to load are skipped.
func (d *DetailLookup) Tracked(ctx context.Context, wl models.WatchList) []models.ClassSummary {
	tracked := make([]models.ClassSummary, 0)
	for _, className := range wl.Classes {
		summaries, err := d.Search(ctx, className, wl.Term)
		if err != nil {
			d.logger.Debug("tracked class skipped", zap.String("class", className), zap.Error(err))
			continue
		}
		for _, s := range summaries {
			if wl.IsWhitelisted(s.ClassNumber) {
				tracked = append(tracked, s)
			}
		}
	}
	return tracked
}
