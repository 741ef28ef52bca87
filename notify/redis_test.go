package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func Test_RedisNotifier_Pushes_To_User_Inbox(t *testing.T) {
	req := require.New(t)
	mr := miniredis.RunT(t)

	notifier := NewRedisNotifier(mr.Addr(), "", "chat:notify", 100)
	defer notifier.Close()

	id, err := notifier.Send(context.Background(), Notification{
		UserID:  "u2",
		Type:    TypeNewMessage,
		Message: "hello there",
		Metadata: map[string]string{
			"roomId":   "r1",
			"senderId": "u1",
		},
	})
	req.NoError(err)
	req.NotEmpty(id)

	raw, err := mr.List("chat:notify:inbox:u2")
	req.NoError(err)
	req.Len(raw, 1)

	var got Notification
	req.NoError(json.Unmarshal([]byte(raw[0]), &got))
	req.Equal(id, got.ID)
	req.Equal("hello there", got.Message)
	req.Equal("u1", got.Metadata["senderId"])
	req.False(got.SentAt.IsZero())
}

func Test_RedisNotifier_Caps_The_Inbox(t *testing.T) {
	req := require.New(t)
	mr := miniredis.RunT(t)

	notifier := NewRedisNotifier(mr.Addr(), "", "chat:notify", 3)
	defer notifier.Close()

	for i := 0; i < 5; i++ {
		_, err := notifier.Send(context.Background(), Notification{
			UserID:  "u2",
			Type:    TypeNewMessage,
			Message: fmt.Sprintf("msg %d", i),
		})
		req.NoError(err)
	}

	raw, err := mr.List("chat:notify:inbox:u2")
	req.NoError(err)
	req.Len(raw, 3)

	var newest Notification
	req.NoError(json.Unmarshal([]byte(raw[0]), &newest))
	req.Equal("msg 4", newest.Message)
}
