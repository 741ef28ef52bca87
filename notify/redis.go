package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sendTimeout = 3 * time.Second

// RedisNotifier delivers notifications through Redis: the payload is pushed
// onto a capped per-user inbox list for pollers and published on a per-user
// channel for live subscribers.
type RedisNotifier struct {
	client   *redis.Client
	prefix   string
	inboxCap int64
}

func NewRedisNotifier(addr, password, prefix string, inboxCap int) *RedisNotifier {
	if prefix == "" {
		prefix = "chat:notify"
	}
	if inboxCap <= 0 {
		inboxCap = 100
	}
	return &RedisNotifier{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix:   prefix,
		inboxCap: int64(inboxCap),
	}
}

func (n *RedisNotifier) Send(ctx context.Context, notification Notification) (string, error) {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.SentAt.IsZero() {
		notification.SentAt = time.Now().UTC()
	}
	payload, err := json.Marshal(notification)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	inbox := fmt.Sprintf("%s:inbox:%s", n.prefix, notification.UserID)
	channel := fmt.Sprintf("%s:user:%s", n.prefix, notification.UserID)
	_, err = n.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, inbox, payload)
		pipe.LTrim(ctx, inbox, 0, n.inboxCap-1)
		pipe.Publish(ctx, channel, payload)
		return nil
	})
	if err != nil {
		return "", err
	}
	return notification.ID, nil
}

func (n *RedisNotifier) Close() error {
	return n.client.Close()
}
