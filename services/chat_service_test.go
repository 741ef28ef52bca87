package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chat-core/domain"
	cerrors "chat-core/errors"
	"chat-core/mocks"
	"chat-core/session"
)

type chatServiceFixture struct {
	rooms    *mocks.MockIRoomRegistry
	messages *mocks.MockIMessageStore
	fanout   *mocks.MockINotificationFanout
	service  *ChatService
}

func newChatService(t *testing.T) chatServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	rooms := mocks.NewMockIRoomRegistry(ctrl)
	messages := mocks.NewMockIMessageStore(ctrl)
	fanout := mocks.NewMockINotificationFanout(ctrl)
	return chatServiceFixture{
		rooms:    rooms,
		messages: messages,
		fanout:   fanout,
		service:  NewChatService(rooms, messages, fanout, slog.Default()),
	}
}

func authed(userID string) context.Context {
	return session.WithSession(context.Background(), session.Session{UserID: userID})
}

func Test_ChatService_Requires_A_Session(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newChatService(t)

	_, err := f.service.CreateDirectRoom(ctx, "u2")
	req.ErrorIs(err, cerrors.ErrNotAuthenticated)

	_, err = f.service.SendMessage(ctx, "r1", "hi", domain.MessageText)
	req.ErrorIs(err, cerrors.ErrNotAuthenticated)

	req.ErrorIs(f.service.MarkRead(ctx, []string{"m1"}), cerrors.ErrNotAuthenticated)

	_, err = f.service.UnreadCount(ctx, "")
	req.ErrorIs(err, cerrors.ErrNotAuthenticated)

	_, err = f.service.OnlineUsers(ctx, "r1")
	req.ErrorIs(err, cerrors.ErrNotAuthenticated)
}

func Test_SendMessage_Appends_Touches_And_Fans_Out(t *testing.T) {
	req := require.New(t)
	ctx := authed("u1")
	f := newChatService(t)

	room := domain.Room{ID: "r1", Kind: domain.RoomGroup, Members: []string{"u1", "u2", "u3"}}
	msg := domain.Message{ID: "m1", RoomID: "r1", UserID: "u1", Content: "hi", CreatedAt: time.Now().UTC()}

	gomock.InOrder(
		f.rooms.EXPECT().GetRoom(ctx, "r1").Return(room, nil),
		f.messages.EXPECT().Append(ctx, "r1", "u1", "hi", domain.MessageText).Return(msg, nil),
		f.rooms.EXPECT().TouchLastActivity(ctx, "r1", msg.CreatedAt).Return(nil),
		f.fanout.EXPECT().NotifyNewMessage(ctx, room, msg),
	)

	got, err := f.service.SendMessage(ctx, "r1", "hi", domain.MessageText)
	req.NoError(err)
	req.Equal(msg.ID, got.ID)
}

func Test_SendMessage_Fails_For_A_Missing_Room(t *testing.T) {
	req := require.New(t)
	ctx := authed("u1")
	f := newChatService(t)

	f.rooms.EXPECT().GetRoom(ctx, "missing").Return(domain.Room{}, cerrors.ErrNotFound)

	_, err := f.service.SendMessage(ctx, "missing", "hi", domain.MessageText)
	req.ErrorIs(err, cerrors.ErrNotFound)
}

func Test_SendMessage_Rejects_A_Non_Member(t *testing.T) {
	req := require.New(t)
	ctx := authed("u1")
	f := newChatService(t)

	room := domain.Room{ID: "r1", Kind: domain.RoomGroup, Members: []string{"u2", "u3"}}
	f.rooms.EXPECT().GetRoom(ctx, "r1").Return(room, nil)

	// Nothing is appended and nothing fans out for an outsider.
	_, err := f.service.SendMessage(ctx, "r1", "hi", domain.MessageText)
	req.ErrorIs(err, cerrors.ErrInvalidArgument)
}

func Test_SendMessage_Succeeds_When_The_Touch_Fails(t *testing.T) {
	req := require.New(t)
	ctx := authed("u1")
	f := newChatService(t)

	room := domain.Room{ID: "r1", Kind: domain.RoomDirect, Members: []string{"u1", "u2"}}
	msg := domain.Message{ID: "m1", RoomID: "r1", UserID: "u1", Content: "hi", CreatedAt: time.Now().UTC()}

	f.rooms.EXPECT().GetRoom(ctx, "r1").Return(room, nil)
	f.messages.EXPECT().Append(ctx, "r1", "u1", "hi", domain.MessageText).Return(msg, nil)
	f.rooms.EXPECT().TouchLastActivity(ctx, "r1", msg.CreatedAt).Return(cerrors.ErrNotFound)
	f.fanout.EXPECT().NotifyNewMessage(ctx, room, msg)

	got, err := f.service.SendMessage(ctx, "r1", "hi", domain.MessageText)
	req.NoError(err)
	req.Equal("m1", got.ID)
}

func Test_ChatService_Passes_The_Session_Identity_Through(t *testing.T) {
	req := require.New(t)
	ctx := authed("u1")
	f := newChatService(t)

	f.rooms.EXPECT().CreateDirectRoom(ctx, "u1", "u2").Return(domain.Room{ID: "r1"}, nil)
	f.rooms.EXPECT().ListRooms(ctx, "u1").Return(nil, nil)
	f.messages.EXPECT().MarkRead(ctx, []string{"m1"}, "u1").Return(nil)
	f.messages.EXPECT().UnreadCount(ctx, "u1", "r1").Return(3, nil)

	_, err := f.service.CreateDirectRoom(ctx, "u2")
	req.NoError(err)
	_, err = f.service.ListRooms(ctx)
	req.NoError(err)
	req.NoError(f.service.MarkRead(ctx, []string{"m1"}))
	count, err := f.service.UnreadCount(ctx, "r1")
	req.NoError(err)
	req.Equal(3, count)
}

func Test_OnlineUsers_Returns_The_Member_List(t *testing.T) {
	req := require.New(t)
	ctx := authed("u1")
	f := newChatService(t)

	room := domain.Room{ID: "r1", Members: []string{"u1", "u2", "u3"}}
	f.rooms.EXPECT().GetRoom(ctx, "r1").Return(room, nil)

	got, err := f.service.OnlineUsers(ctx, "r1")
	req.NoError(err)
	req.Equal([]string{"u1", "u2", "u3"}, got)
}
