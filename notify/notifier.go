//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_notifier.go -package=mocks

// Package notify is the outbound notification collaborator. Delivery is
// fire-and-forget: the core inspects nothing beyond success or failure and
// never retries.
package notify

import (
	"context"
	"time"
)

const TypeNewMessage = "new_message"

type Notification struct {
	ID       string            `json:"id"`
	UserID   string            `json:"userId"`
	Type     string            `json:"type"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
	SentAt   time.Time         `json:"sentAt"`
}

type INotifier interface {
	// Send delivers one notification to one user and returns its assigned id.
	Send(ctx context.Context, n Notification) (string, error)
}
