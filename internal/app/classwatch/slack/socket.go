package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/endeavored/classwatch/internal/app/classwatch/jobs"
	"github.com/endeavored/classwatch/internal/pkg/models"
	"github.com/endeavored/classwatch/internal/pkg/requests"
)

const (
	connectionsOpenURL = "https://slack.com/api/apps.connections.open"
	reconnectDelay     = 5 * time.Second

	typeHello      = "hello"
	typeDisconnect = "disconnect"
)

// Listener keeps a socket-mode connection to Slack open and applies the
// watch list slash commands it receives.
type Listener struct {
	token     string
	openURL   string
	retry     time.Duration
	client    *fasthttp.Client
	dialer    *websocket.Dialer
	watchList *jobs.WatchListJob
	logger    *zap.Logger
}

func NewListener(token string, wl *jobs.WatchListJob, logger *zap.Logger) *Listener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Listener{
		token:     token,
		openURL:   connectionsOpenURL,
		retry:     reconnectDelay,
		client:    &fasthttp.Client{},
		dialer:    websocket.DefaultDialer,
		watchList: wl,
		logger:    logger,
	}
}

// Run connects and reconnects until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) {
	for {
		socketURL, err := l.socketURL(ctx)
		if err != nil {
			l.logger.Warn("slack socket url request failed", zap.Error(err))
		} else if err := l.serve(ctx, socketURL); err != nil {
			l.logger.Warn("slack socket closed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.retry):
			l.logger.Info("reconnecting to slack socket")
		}
	}
}

func (l *Listener) socketURL(ctx context.Context) (string, error) {
	status, body, err := requests.PostJSON(ctx, l.client, l.openURL, nil, requests.Options{
		Headers: map[string]string{"Authorization": "Bearer " + l.token},
	})
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("apps.connections.open returned status %d", status)
	}

	var resp models.SlackConnectionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", err
	}
	if !resp.Ok || resp.Url == "" {
		return "", fmt.Errorf("apps.connections.open failed: %s", resp.Error)
	}
	return resp.Url, nil
}

func (l *Listener) serve(ctx context.Context, socketURL string) error {
	conn, resp, err := l.dialer.DialContext(ctx, socketURL, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("dial returned status %d: %w", resp.StatusCode, err)
		}
		return err
	}
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-stop:
		}
	}()

	l.logger.Info("slack socket connected")
	return l.receive(ctx, conn)
}

func (l *Listener) receive(ctx context.Context, conn *websocket.Conn) error {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		var envelope models.SlackSocketData
		if err := json.Unmarshal(msg, &envelope); err != nil {
			l.logger.Warn("undecodable slack message", zap.Error(err))
			continue
		}

		switch envelope.Type {
		case typeHello:
			continue
		case typeDisconnect:
			return nil
		}
		if envelope.EnvelopeId == "" {
			continue
		}

		var ack models.SlackSocketData
		ack.EnvelopeId = envelope.EnvelopeId
		if envelope.Payload.Command != "" {
			ack.Payload.Text = handleCommand(ctx, l.watchList, envelope.Payload)
			l.logger.Info("slack command",
				zap.String("command", envelope.Payload.Command),
				zap.String("text", envelope.Payload.Text),
				zap.String("user", envelope.Payload.UserName))
		}
		if err := conn.WriteJSON(ack); err != nil {
			return err
		}
	}
}
