//go:generate go run go.uber.org/mock/mockgen -source=message_store.go -destination=../mocks/mock_message_store.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"chat-core/domain"
	cerrors "chat-core/errors"
	"chat-core/moderation"
	"chat-core/search"
	"chat-core/store"
)

// DefaultMessageLimit bounds ListMessages when the caller gives no limit.
const DefaultMessageLimit = 50

var validate = validator.New()

type IMessageStore interface {
	Append(ctx context.Context, roomID, userID, content string, msgType domain.MessageType) (domain.Message, error)
	ListMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error)
	MarkRead(ctx context.Context, messageIDs []string, userID string) error
	UnreadCount(ctx context.Context, userID, roomID string) (int, error)
	SearchMessages(ctx context.Context, roomID, terms string, limit int) ([]domain.Message, error)
}

// MessageStore appends messages and tracks per-message read receipts.
// Moderation and the search index are optional; when absent the related
// steps are skipped.
type MessageStore struct {
	store     store.IRecordStore
	index     search.IMessageIndex
	moderator *moderation.Moderator
	log       *slog.Logger
}

func NewMessageStore(recordStore store.IRecordStore, log *slog.Logger) *MessageStore {
	return &MessageStore{store: recordStore, log: log}
}

func (s *MessageStore) WithIndex(index search.IMessageIndex) *MessageStore {
	s.index = index
	return s
}

func (s *MessageStore) WithModerator(moderator *moderation.Moderator) *MessageStore {
	s.moderator = moderator
	return s
}

type appendRequest struct {
	RoomID  string `validate:"required"`
	UserID  string `validate:"required"`
	Content string `validate:"required"`
	Type    string `validate:"oneof=text image file"`
}

// Append persists a new message. The author is in readBy from the start: a
// message is implicitly read by its sender. Indexing failures are logged and
// swallowed; the append itself only fails on validation or store errors.
func (s *MessageStore) Append(ctx context.Context, roomID, userID, content string, msgType domain.MessageType) (domain.Message, error) {
	if msgType == "" {
		msgType = domain.MessageText
	}
	req := appendRequest{RoomID: roomID, UserID: userID, Content: content, Type: string(msgType)}
	if err := validate.Struct(req); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", cerrors.ErrInvalidArgument, err)
	}

	if s.moderator != nil {
		sanitized, found := s.moderator.Censor(content)
		if len(found) > 0 {
			s.log.Info("Censored message content", "room", roomID, "author", userID, "words", len(found))
		}
		content = sanitized
	}

	msg := domain.Message{
		RoomID:    roomID,
		UserID:    userID,
		Content:   content,
		Type:      msgType,
		Lang:      whatlanggo.Detect(content).Lang.Iso6391(),
		ReadBy:    []string{userID},
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.store.Create(ctx, CollectionMessages, messageToRecord(msg))
	if err != nil {
		return domain.Message{}, err
	}
	msg = messageFromRecord(created)

	if s.index != nil {
		if err := s.index.Index(msg); err != nil {
			s.log.Warn("Failed to index message", "message", msg.ID, "error", err)
		}
	}
	return msg, nil
}

// ListMessages returns the most recent messages in chronological order. The
// store is asked for the newest `limit` messages descending and the slice is
// reversed afterwards, because pagination is always anchored at "most
// recent".
func (s *MessageStore) ListMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: room id must be non-empty", cerrors.ErrInvalidArgument)
	}
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	recs, err := s.store.Find(ctx, CollectionMessages, store.Query{
		Where:   []store.Filter{store.Where("roomId", store.OpEq, roomID)},
		OrderBy: []store.Order{{Field: "createdAt", Desc: true}},
		Limit:   limit,
	})
	if err != nil {
		return nil, err
	}
	messages := lo.Map(recs, func(rec store.Record, _ int) domain.Message {
		return messageFromRecord(rec)
	})
	return lo.Reverse(messages), nil
}

// MarkRead adds the user to the readBy set of each message. readBy only ever
// grows and already-read messages are skipped, so the call is idempotent.
// Individual ids that cannot be fetched or updated are skipped, never fatal
// to the batch.
func (s *MessageStore) MarkRead(ctx context.Context, messageIDs []string, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id must be non-empty", cerrors.ErrInvalidArgument)
	}
	for _, id := range messageIDs {
		rec, ok, err := s.store.FindOne(ctx, CollectionMessages, store.Query{
			Where: []store.Filter{store.Where("id", store.OpEq, id)},
		})
		if err != nil || !ok {
			s.log.Debug("Skipping unreadable message in markRead", "message", id, "error", err)
			continue
		}
		msg := messageFromRecord(rec)
		if msg.ReadByUser(userID) {
			continue
		}
		if _, err := s.store.Update(ctx, CollectionMessages, id, store.Record{
			"readBy": append(msg.ReadBy, userID),
		}); err != nil {
			s.log.Warn("Failed to mark message as read", "message", id, "error", err)
		}
	}
	return nil
}

// UnreadCount counts messages the user has not read, optionally scoped to
// one room. This is a scan through the store's filter facility; no
// server-side count exists.
func (s *MessageStore) UnreadCount(ctx context.Context, userID, roomID string) (int, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: user id must be non-empty", cerrors.ErrInvalidArgument)
	}
	var q store.Query
	if roomID != "" {
		q.Where = append(q.Where, store.Where("roomId", store.OpEq, roomID))
	}
	recs, err := s.store.Find(ctx, CollectionMessages, q)
	if err != nil {
		return 0, err
	}
	return lo.CountBy(recs, func(rec store.Record) bool {
		return !messageFromRecord(rec).ReadByUser(userID)
	}), nil
}

// SearchMessages resolves full-text hits back through the store and returns
// them in chronological order.
func (s *MessageStore) SearchMessages(ctx context.Context, roomID, terms string, limit int) ([]domain.Message, error) {
	if s.index == nil {
		return nil, fmt.Errorf("%w: search index not configured", cerrors.ErrInvalidArgument)
	}
	if terms == "" {
		return nil, fmt.Errorf("%w: search terms must be non-empty", cerrors.ErrInvalidArgument)
	}
	ids, err := s.index.Search(ctx, roomID, terms, limit)
	if err != nil {
		return nil, err
	}

	var messages []domain.Message
	for _, id := range ids {
		rec, ok, err := s.store.FindOne(ctx, CollectionMessages, store.Query{
			Where: []store.Filter{store.Where("id", store.OpEq, id)},
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			// Index can lag the store; a missing hit is not an error.
			continue
		}
		messages = append(messages, messageFromRecord(rec))
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func messageToRecord(msg domain.Message) store.Record {
	return store.Record{
		"roomId":    msg.RoomID,
		"userId":    msg.UserID,
		"content":   msg.Content,
		"type":      string(msg.Type),
		"lang":      msg.Lang,
		"readBy":    msg.ReadBy,
		"createdAt": store.EncodeTime(msg.CreatedAt),
	}
}

func messageFromRecord(rec store.Record) domain.Message {
	return domain.Message{
		ID:        rec.ID(),
		RoomID:    rec.String("roomId"),
		UserID:    rec.String("userId"),
		Content:   rec.String("content"),
		Type:      domain.MessageType(rec.String("type")),
		Lang:      rec.String("lang"),
		ReadBy:    rec.StringSlice("readBy"),
		CreatedAt: rec.Time("createdAt"),
	}
}
