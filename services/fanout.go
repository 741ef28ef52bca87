//go:generate go run go.uber.org/mock/mockgen -source=fanout.go -destination=../mocks/mock_fanout.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"chat-core/domain"
	"chat-core/notify"
)

// DefaultPreviewLength is how much of the message content a notification
// carries.
const DefaultPreviewLength = 50

type INotificationFanout interface {
	NotifyNewMessage(ctx context.Context, room domain.Room, msg domain.Message)
}

// NotificationFanout notifies every room member except the author of a new
// message. Fan-out is best-effort with no delivery guarantee: one failed
// recipient never blocks the others and never fails the send that triggered
// it.
type NotificationFanout struct {
	notifier   notify.INotifier
	log        *slog.Logger
	previewLen int
}

func NewNotificationFanout(notifier notify.INotifier, log *slog.Logger) *NotificationFanout {
	return &NotificationFanout{notifier: notifier, log: log, previewLen: DefaultPreviewLength}
}

func (f *NotificationFanout) WithPreviewLength(n int) *NotificationFanout {
	if n > 0 {
		f.previewLen = n
	}
	return f
}

func (f *NotificationFanout) NotifyNewMessage(ctx context.Context, room domain.Room, msg domain.Message) {
	recipients := lo.Without(room.Members, msg.UserID)
	for _, recipient := range recipients {
		_, err := f.notifier.Send(ctx, notify.Notification{
			UserID:  recipient,
			Type:    notify.TypeNewMessage,
			Message: preview(msg.Content, f.previewLen),
			Metadata: map[string]string{
				"roomId":    room.ID,
				"messageId": msg.ID,
				"senderId":  msg.UserID,
			},
		})
		if err != nil {
			f.log.Warn("Failed to notify recipient",
				"recipient", recipient,
				"room", room.ID,
				"message", msg.ID,
				"error", err)
		}
	}
}

// preview truncates to the first n runes, not bytes, so multi-byte content
// is never cut mid-character.
func preview(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n])
}
