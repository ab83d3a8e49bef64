package slack

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/endeavored/classwatch/internal/app/classwatch/jobs"
	"github.com/endeavored/classwatch/internal/pkg/apperrors"
	"github.com/endeavored/classwatch/internal/pkg/models"
)

const (
	watchCommand   = "/watch-class"
	unwatchCommand = "/unwatch-class"

	watchUsage   = "Usage: /watch-class SUBJECT NUMBER CLASSNBR"
	unwatchUsage = "Usage: /unwatch-class CLASSNBR"
)

// Slack escapes these three characters in both directions.
var replyEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// handleCommand applies one slash command to the watch list and returns the
// text sent back to the user.
func handleCommand(ctx context.Context, wl *jobs.WatchListJob, payload models.SlackSocketPayload) string {
	return replyEscaper.Replace(runCommand(ctx, wl, payload.Command, html.UnescapeString(payload.Text)))
}

func runCommand(ctx context.Context, wl *jobs.WatchListJob, command, text string) string {
	args := strings.Fields(text)

	switch command {
	case watchCommand:
		if len(args) != 3 {
			return watchUsage
		}
		className := strings.ToUpper(args[0] + " " + args[1])
		if _, err := wl.Track(ctx, className, args[2]); err != nil {
			return fmt.Sprintf("Could not watch %s %s: %s", className, args[2], replyError(err))
		}
		return fmt.Sprintf("Watching %s section %s", className, args[2])

	case unwatchCommand:
		if len(args) != 1 {
			return unwatchUsage
		}
		if _, err := wl.Untrack(ctx, args[0]); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Sprintf("Section %s was not being watched", args[0])
			}
			return fmt.Sprintf("Could not unwatch %s: %s", args[0], replyError(err))
		}
		return fmt.Sprintf("Stopped watching section %s", args[0])
	}

	return "Unknown command " + command
}

// replyError hides storage failures from Slack users.
func replyError(err error) string {
	appErr := apperrors.FromError(err)
	if appErr.Status >= 500 {
		return "internal error"
	}
	return appErr.Message
}
