package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/app/classwatch/jobs"
	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/catalog"
	"github.com/endeavored/classwatch/internal/pkg/config"
)

type handler struct {
	jobs     *jobs.Jobs
	validate *validator.Validate
	watchCfg config.WatchConfig
	logger   *zap.Logger
}

type settingsRequest struct {
	Term string `json:"term" validate:"required,numeric,len=4"`
}

type trackRequest struct {
	ClassName   string `json:"className" validate:"required"`
	ClassNumber string `json:"classNumber" validate:"required,numeric"`
}

// errorRecord is the single-element list returned in place of search results.
func errorRecord(err error) []gin.H {
	return []gin.H{{"error": err.Error()}}
}

func (h *handler) index(c *gin.Context) {
	wl, err := h.jobs.WatchList.State(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	statuses := h.jobs.Alerts.Check(c.Request.Context(), wl)
	c.HTML(http.StatusOK, "index", gin.H{
		"Term":     wl.Term,
		"TermName": catalog.TermName(wl.Term),
		"Statuses": statuses,
	})
}

func (h *handler) state(c *gin.Context) {
	wl, err := h.jobs.WatchList.State(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	statuses := h.jobs.Alerts.Check(c.Request.Context(), wl)
	c.JSON(http.StatusOK, gin.H{
		"settings": gin.H{
			"term":                     wl.Term,
			"termName":                 catalog.TermName(wl.Term),
			"checkIntervalMinutes":     h.watchCfg.CheckIntervalMinutes,
			"maxNotificationsPerClass": h.watchCfg.MaxNotificationsPerClass,
		},
		"classes":        wl.Classes,
		"whitelist":      wl.Whitelist,
		"trackedClasses": h.jobs.Details.Tracked(c.Request.Context(), wl),
		"statuses":       statuses,
	})
}

// search always answers 200 with a list so the front end can render errors inline.
func (h *handler) search(c *gin.Context) {
	term := c.Query("term")
	if term == "" {
		wl, err := h.jobs.WatchList.State(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, errorRecord(err))
			return
		}
		term = wl.Term
	}

	summaries, err := h.jobs.Details.Search(c.Request.Context(), strings.TrimSpace(c.Param("className")), term)
	if err != nil {
		c.JSON(http.StatusOK, errorRecord(err))
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if !h.bind(c, &req) {
		return
	}
	wl, changed, err := h.jobs.WatchList.SetTerm(c.Request.Context(), req.Term)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"term":        wl.Term,
		"termName":    catalog.TermName(wl.Term),
		"termChanged": changed,
	})
}

func (h *handler) track(c *gin.Context) {
	var req trackRequest
	if !h.bind(c, &req) {
		return
	}
	wl, err := h.jobs.WatchList.Track(c.Request.Context(), req.ClassName, req.ClassNumber)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.jobs.Details.Tracked(c.Request.Context(), wl))
}

func (h *handler) untrack(c *gin.Context) {
	wl, err := h.jobs.WatchList.Untrack(c.Request.Context(), c.Param("classNumber"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.jobs.Details.Tracked(c.Request.Context(), wl))
}

func (h *handler) removeClass(c *gin.Context) {
	wl, err := h.jobs.WatchList.RemoveClass(c.Request.Context(), c.Param("className"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, wl)
}

func (h *handler) bind(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		h.fail(c, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "invalid request body"))
		return false
	}
	if err := h.validate.Struct(dest); err != nil {
		h.fail(c, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, apperrors.ErrValidation.Message))
		return false
	}
	return true
}

func (h *handler) fail(c *gin.Context, err error) {
	appErr := apperrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(appErr.Status, gin.H{"error": appErr})
}
