package test

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chat-core/domain"
	cerrors "chat-core/errors"
	"chat-core/moderation"
	"chat-core/notify"
	"chat-core/search"
	"chat-core/services"
	"chat-core/session"
	"chat-core/store"
)

// Full wiring: Badger store, Bluge index, moderation and a Redis notifier,
// driven end to end through the chat service.
func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { db.Close() })

	log := slog.Default()
	recordStore := store.NewBadgerStore(db, log)

	index, err := search.OpenMessageIndex(t.TempDir(), log)
	req.NoError(err)
	t.Cleanup(func() { index.Close() })

	moderator, err := moderation.NewModerator([]string{"classified"}, '*')
	req.NoError(err)

	mr := miniredis.RunT(t)
	notifier := notify.NewRedisNotifier(mr.Addr(), "", "", 10)
	t.Cleanup(func() { notifier.Close() })

	rooms := services.NewRoomRegistry(recordStore, log)
	messages := services.NewMessageStore(recordStore, log).
		WithIndex(index).
		WithModerator(&moderator)
	fanout := services.NewNotificationFanout(notifier, log)
	chat := services.NewChatService(rooms, messages, fanout, log)

	// u1 opens a direct conversation with u2
	aliceCtx := session.WithSession(ctx, session.Session{UserID: "u1"})
	room, err := chat.CreateDirectRoom(aliceCtx, "u2")
	req.NoError(err)

	// When a message with a censored word is sent
	msg, err := chat.SendMessage(aliceCtx, room.ID, "the classified report is ready", domain.MessageText)
	req.NoError(err)
	req.Equal("the ********** report is ready", msg.Content)
	req.Equal([]string{"u1"}, msg.ReadBy)

	// Then the room's activity advances
	listed, err := chat.ListRooms(aliceCtx)
	req.NoError(err)
	req.Len(listed, 1)
	req.True(listed[0].LastMessageAt.Equal(msg.CreatedAt))

	// And the other member got exactly one notification in the inbox
	inbox, err := mr.List("chat:notify:inbox:u2")
	req.NoError(err)
	req.Len(inbox, 1)
	var notification notify.Notification
	req.NoError(json.Unmarshal([]byte(inbox[0]), &notification))
	req.Equal("u2", notification.UserID)
	req.Equal(room.ID, notification.Metadata["roomId"])
	req.Equal(msg.ID, notification.Metadata["messageId"])

	// And the message is findable through full-text search
	bobCtx := session.WithSession(ctx, session.Session{UserID: "u2"})
	hits, err := chat.SearchMessages(bobCtx, room.ID, "report", 10)
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal(msg.ID, hits[0].ID)

	// And the unread count drops once u2 marks it read
	count, err := chat.UnreadCount(bobCtx, room.ID)
	req.NoError(err)
	req.Equal(1, count)
	req.NoError(chat.MarkRead(bobCtx, []string{msg.ID}))
	count, err = chat.UnreadCount(bobCtx, room.ID)
	req.NoError(err)
	req.Equal(0, count)

	// Leaving twice empties then destroys the direct room
	req.NoError(chat.LeaveRoom(aliceCtx, room.ID))
	req.NoError(chat.LeaveRoom(bobCtx, room.ID))
	_, err = chat.OnlineUsers(bobCtx, room.ID)
	req.ErrorIs(err, cerrors.ErrNotFound)
}
