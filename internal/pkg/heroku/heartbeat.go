package heroku

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/pkg/requests"
)

const startDelay = 5 * time.Second

// StartHeartbeat pings url every interval so an idle dyno is not put to
// sleep. It returns when ctx is done.
func StartHeartbeat(ctx context.Context, url string, interval time.Duration, logger *zap.Logger) {
	timer := time.NewTimer(startDelay)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if err := makeHeartbeat(ctx, url); err != nil {
			logger.Warn("heartbeat failed", zap.String("url", url), zap.Error(err))
		} else {
			logger.Debug("heartbeat ok", zap.String("url", url))
		}
		timer.Reset(interval)
	}
}

func makeHeartbeat(ctx context.Context, url string) error {
	statusCode, _, err := requests.SimpleGet(ctx, url, requests.Options{Timeout: 30 * time.Second})
	if err != nil {
		return err
	}
	if statusCode != 200 {
		return fmt.Errorf("heartbeat received status %d", statusCode)
	}
	return nil
}
