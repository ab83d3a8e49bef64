package jobs

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/models"
	"github.com/endeavored/classwatch/internal/pkg/store"
)

var (
	classNumberPattern = regexp.MustCompile(`^[0-9]+$`)
	termPattern        = regexp.MustCompile(`^[0-9]{4}$`)
)

// WatchListJob edits the stored watch list.
type WatchListJob struct {
	store  store.WatchStore
	logger *zap.Logger
}

func watchListJob(st store.WatchStore, logger *zap.Logger) *WatchListJob {
	return &WatchListJob{store: st, logger: logger}
}

func (j *WatchListJob) State(ctx context.Context) (models.WatchList, error) {
	return j.store.Load(ctx)
}

// Track whitelists classNumber under className ("cse 476" is stored as "CSE 476").
func (j *WatchListJob) Track(ctx context.Context, className, classNumber string) (models.WatchList, error) {
	q, err := catalog.ParseClassQuery(className, "")
	if err != nil {
		return models.WatchList{}, err
	}
	if !classNumberPattern.MatchString(classNumber) {
		return models.WatchList{}, apperrors.Clone(apperrors.ErrValidation, "class number must be numeric")
	}

	wl, err := j.store.Update(ctx, func(w *models.WatchList) error {
		w.Track(q.ClassName(), classNumber)
		return nil
	})
	if err == nil {
		j.logger.Info("class tracked", zap.String("class", q.ClassName()), zap.String("classNumber", classNumber))
	}
	return wl, err
}

func (j *WatchListJob) Untrack(ctx context.Context, classNumber string) (models.WatchList, error) {
	wl, err := j.store.Update(ctx, func(w *models.WatchList) error {
		if !w.Untrack(classNumber) {
			return apperrors.Clone(apperrors.ErrNotFound, "class number "+classNumber+" is not tracked")
		}
		return nil
	})
	if err == nil {
		j.logger.Info("class untracked", zap.String("classNumber", classNumber))
	}
	return wl, err
}

func (j *WatchListJob) RemoveClass(ctx context.Context, className string) (models.WatchList, error) {
	q, err := catalog.ParseClassQuery(className, "")
	if err != nil {
		return models.WatchList{}, err
	}
	return j.store.Update(ctx, func(w *models.WatchList) error {
		if !w.RemoveClass(q.ClassName()) {
			return apperrors.Clone(apperrors.ErrNotFound, q.ClassName()+" is not watched")
		}
		return nil
	})
}

// SetTerm switches the term the alert checker searches in.
func (j *WatchListJob) SetTerm(ctx context.Context, term string) (models.WatchList, bool, error) {
	if !termPattern.MatchString(term) {
		return models.WatchList{}, false, apperrors.Clone(apperrors.ErrValidation, "term must be a four digit code")
	}
	changed := false
	wl, err := j.store.Update(ctx, func(w *models.WatchList) error {
		changed = w.Term != term
		w.Term = term
		return nil
	})
	if err != nil {
		return wl, false, err
	}
	if changed {
		j.logger.Info("term changed", zap.String("term", term))
	}
	return wl, changed, nil
}
