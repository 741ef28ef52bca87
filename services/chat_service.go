package services

import (
	"context"
	"fmt"
	"log/slog"

	"chat-core/domain"
	cerrors "chat-core/errors"
	"chat-core/session"
)

type IChatService interface {
	CreateDirectRoom(ctx context.Context, otherID string) (domain.Room, error)
	CreateGroupRoom(ctx context.Context, name string, memberIDs []string) (domain.Room, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	LeaveRoom(ctx context.Context, roomID string) error
	SendMessage(ctx context.Context, roomID, content string, msgType domain.MessageType) (domain.Message, error)
	ListMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error)
	MarkRead(ctx context.Context, messageIDs []string) error
	UnreadCount(ctx context.Context, roomID string) (int, error)
	SearchMessages(ctx context.Context, roomID, terms string, limit int) ([]domain.Message, error)
	OnlineUsers(ctx context.Context, roomID string) ([]string, error)
}

// ChatService is the façade driven by the presenting client. The caller's
// identity comes from the session in the context on every call; the service
// keeps no per-client state.
type ChatService struct {
	rooms    IRoomRegistry
	messages IMessageStore
	fanout   INotificationFanout
	log      *slog.Logger
}

func NewChatService(rooms IRoomRegistry, messages IMessageStore, fanout INotificationFanout, log *slog.Logger) *ChatService {
	return &ChatService{rooms: rooms, messages: messages, fanout: fanout, log: log}
}

func (s *ChatService) CreateDirectRoom(ctx context.Context, otherID string) (domain.Room, error) {
	sess, err := requireSession(ctx)
	if err != nil {
		return domain.Room{}, err
	}
	return s.rooms.CreateDirectRoom(ctx, sess.UserID, otherID)
}

func (s *ChatService) CreateGroupRoom(ctx context.Context, name string, memberIDs []string) (domain.Room, error) {
	sess, err := requireSession(ctx)
	if err != nil {
		return domain.Room{}, err
	}
	return s.rooms.CreateGroupRoom(ctx, sess.UserID, name, memberIDs)
}

func (s *ChatService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	sess, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	return s.rooms.ListRooms(ctx, sess.UserID)
}

func (s *ChatService) LeaveRoom(ctx context.Context, roomID string) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}
	return s.rooms.LeaveRoom(ctx, roomID, sess.UserID)
}

// SendMessage appends the message, advances the room's activity timestamp
// and fans out notifications to the other members. Only the room lookup, the
// membership check and the append can fail the call; fan-out is best-effort.
func (s *ChatService) SendMessage(ctx context.Context, roomID, content string, msgType domain.MessageType) (domain.Message, error) {
	sess, err := requireSession(ctx)
	if err != nil {
		return domain.Message{}, err
	}
	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return domain.Message{}, err
	}
	if !room.HasMember(sess.UserID) {
		return domain.Message{}, fmt.Errorf("%w: sender is not a member of the room", cerrors.ErrInvalidArgument)
	}

	msg, err := s.messages.Append(ctx, roomID, sess.UserID, content, msgType)
	if err != nil {
		return domain.Message{}, err
	}

	if err := s.rooms.TouchLastActivity(ctx, roomID, msg.CreatedAt); err != nil {
		// The room can disappear between append and touch; the message is
		// already persisted, so the send still succeeds.
		s.log.Warn("Failed to touch room activity", "room", roomID, "error", err)
	}

	s.fanout.NotifyNewMessage(ctx, room, msg)
	return msg, nil
}

func (s *ChatService) ListMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, err
	}
	return s.messages.ListMessages(ctx, roomID, limit)
}

func (s *ChatService) MarkRead(ctx context.Context, messageIDs []string) error {
	sess, err := requireSession(ctx)
	if err != nil {
		return err
	}
	return s.messages.MarkRead(ctx, messageIDs, sess.UserID)
}

func (s *ChatService) UnreadCount(ctx context.Context, roomID string) (int, error) {
	sess, err := requireSession(ctx)
	if err != nil {
		return 0, err
	}
	return s.messages.UnreadCount(ctx, sess.UserID, roomID)
}

func (s *ChatService) SearchMessages(ctx context.Context, roomID, terms string, limit int) ([]domain.Message, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, err
	}
	return s.messages.SearchMessages(ctx, roomID, terms, limit)
}

// OnlineUsers returns the member list as a presence proxy. There is no
// heartbeat or last-seen model behind it; callers must not treat the result
// as live presence.
func (s *ChatService) OnlineUsers(ctx context.Context, roomID string) ([]string, error) {
	if _, err := requireSession(ctx); err != nil {
		return nil, err
	}
	room, err := s.rooms.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return room.Members, nil
}

func requireSession(ctx context.Context) (session.Session, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return session.Session{}, cerrors.ErrNotAuthenticated
	}
	return sess, nil
}
