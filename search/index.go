// Package search maintains a full-text index over message content.
// Indexing is best-effort: a failed index write never fails the message
// append that triggered it.
package search

import (
	"context"
	"log/slog"

	"github.com/blugelabs/bluge"

	"chat-core/domain"
)

type IMessageIndex interface {
	Index(msg domain.Message) error
	Search(ctx context.Context, roomID, terms string, limit int) ([]string, error)
}

// MessageIndex wraps a Bluge writer. One document per message, keyed by the
// message id.
type MessageIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewMessageIndex(writer *bluge.Writer, log *slog.Logger) *MessageIndex {
	return &MessageIndex{writer: writer, log: log}
}

// OpenMessageIndex opens (or creates) the index at the given path.
func OpenMessageIndex(path string, log *slog.Logger) (*MessageIndex, error) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(path))
	if err != nil {
		return nil, err
	}
	return NewMessageIndex(writer, log), nil
}

func (i *MessageIndex) Index(msg domain.Message) error {
	doc := bluge.NewDocument(msg.ID).
		AddField(bluge.NewTextField("content", msg.Content)).
		AddField(bluge.NewKeywordField("roomId", msg.RoomID)).
		AddField(bluge.NewKeywordField("userId", msg.UserID)).
		AddField(bluge.NewDateTimeField("createdAt", msg.CreatedAt))
	return i.writer.Update(doc.ID(), doc)
}

// Search returns the ids of the best-matching messages, optionally scoped to
// one room.
func (i *MessageIndex) Search(ctx context.Context, roomID, terms string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Failed to close index reader", "error", err)
		}
	}()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(terms).SetField("content"))
	if roomID != "" {
		query.AddMust(bluge.NewTermQuery(roomID).SetField("roomId"))
	}

	iter, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []string
	match, err := iter.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		match, err = iter.Next()
	}
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (i *MessageIndex) Close() error {
	return i.writer.Close()
}
