package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/endeavored/classwatch/internal/pkg/config"
)

const (
	serviceName  = "classwatch"
	requestIDKey = "request_id"
)

// New builds the process logger. Every entry carries the service name, the
// environment and the catalog term the process was started with.
func New(cfg *config.Config) (*zap.Logger, error) {
	return zapConfig(cfg).Build()
}

func zapConfig(cfg *config.Config) zap.Config {
	var zapCfg zap.Config
	if cfg.Env == config.EnvProduction {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.Log.Format == "console" {
		zapCfg.Encoding = "console"
	} else {
		zapCfg.Encoding = "json"
	}

	if cfg.Log.Level != "" {
		if err := zapCfg.Level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
	}

	zapCfg.EncoderConfig.TimeKey = "timestamp"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = map[string]interface{}{
		"service": serviceName,
		"env":     cfg.Env,
	}
	if cfg.Watch.Term != "" {
		zapCfg.InitialFields["term"] = cfg.Watch.Term
	}
	return zapCfg
}

// GinMiddleware logs one http_request entry per request. Class routes add the
// class name or number from the path; probes from health checks and metric
// scrapes drop to debug. Server errors log at error, client errors at warn.
func GinMiddleware(l *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.ClientIP()),
		}
		if reqID := c.GetString(requestIDKey); reqID != "" {
			fields = append(fields, zap.String("request_id", reqID))
		}
		if className := c.Param("className"); className != "" {
			fields = append(fields, zap.String("class", className))
		}
		if classNumber := c.Param("classNumber"); classNumber != "" {
			fields = append(fields, zap.String("class_number", classNumber))
		}
		if term := c.Query("term"); term != "" {
			fields = append(fields, zap.String("term", term))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch route := c.FullPath(); {
		case status >= 500:
			l.Error("http_request", fields...)
		case status >= 400:
			l.Warn("http_request", fields...)
		case route == "/health" || route == "/metrics":
			l.Debug("http_request", fields...)
		default:
			l.Info("http_request", fields...)
		}
	}
}
