package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// NoopNotifier is used when no notification transport is configured.
type NoopNotifier struct {
	Log *slog.Logger
}

func (n NoopNotifier) Send(_ context.Context, notification Notification) (string, error) {
	if n.Log != nil {
		n.Log.Debug("Notification dropped (no transport configured)",
			"user", notification.UserID,
			"type", notification.Type)
	}
	return uuid.NewString(), nil
}
