package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/app/classwatch/jobs"
	"github.com/endeavored/classwatch/internal/pkg/config"
	"github.com/endeavored/classwatch/internal/pkg/logger"
	"github.com/endeavored/classwatch/internal/pkg/metrics"
)

// NewRouter wires the HTML page, the JSON API, health and metrics.
func NewRouter(cfg *config.Config, j *jobs.Jobs, m *metrics.Metrics, logr *zap.Logger) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(logger.GinMiddleware(logr))
	r.Use(observe(m))
	r.Use(cors(cfg.CORS.AllowedOrigins))
	r.SetHTMLTemplate(indexPage)

	h := &handler{jobs: j, validate: validator.New(), watchCfg: cfg.Watch, logger: logr}

	r.GET("/", h.index)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	api.GET("/state", h.state)
	api.GET("/search/:className", h.search)
	api.POST("/settings", h.updateSettings)
	api.POST("/tracked", h.track)
	api.DELETE("/tracked/:classNumber", h.untrack)
	api.DELETE("/classes/:className", h.removeClass)

	return r
}
