//go:generate go run go.uber.org/mock/mockgen -source=room_registry.go -destination=../mocks/mock_room_registry.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"chat-core/domain"
	cerrors "chat-core/errors"
	"chat-core/store"
)

const (
	CollectionRooms    = "chat_rooms"
	CollectionMessages = "messages"
)

type IRoomRegistry interface {
	CreateDirectRoom(ctx context.Context, selfID, otherID string) (domain.Room, error)
	CreateGroupRoom(ctx context.Context, selfID, name string, memberIDs []string) (domain.Room, error)
	GetRoom(ctx context.Context, roomID string) (domain.Room, error)
	ListRooms(ctx context.Context, userID string) ([]domain.Room, error)
	LeaveRoom(ctx context.Context, roomID, userID string) error
	TouchLastActivity(ctx context.Context, roomID string, at time.Time) error
}

// RoomRegistry owns room entities. It holds no cache: every invariant check
// (direct-room dedup included) re-reads the store.
type RoomRegistry struct {
	store store.IRecordStore
	log   *slog.Logger
}

func NewRoomRegistry(recordStore store.IRecordStore, log *slog.Logger) *RoomRegistry {
	return &RoomRegistry{store: recordStore, log: log}
}

// CreateDirectRoom returns the direct room for the pair, creating it on
// first use. The canonical identity of a direct room is the ascending-sorted
// member pair, so the call is idempotent regardless of argument order.
func (r *RoomRegistry) CreateDirectRoom(ctx context.Context, selfID, otherID string) (domain.Room, error) {
	if selfID == "" || otherID == "" {
		return domain.Room{}, fmt.Errorf("%w: user ids must be non-empty", cerrors.ErrInvalidArgument)
	}
	if selfID == otherID {
		return domain.Room{}, fmt.Errorf("%w: direct room needs two distinct users", cerrors.ErrInvalidArgument)
	}

	first, second := domain.SortPair(selfID, otherID)
	pair := []string{first, second}

	rec, ok, err := r.store.FindOne(ctx, CollectionRooms, store.Query{
		Where: []store.Filter{
			store.Where("kind", store.OpEq, string(domain.RoomDirect)),
			store.Where("members", store.OpEq, pair),
		},
	})
	if err != nil {
		return domain.Room{}, err
	}
	if ok {
		return roomFromRecord(rec), nil
	}

	now := time.Now().UTC()
	created, err := r.store.Create(ctx, CollectionRooms, roomToRecord(domain.Room{
		Kind:          domain.RoomDirect,
		Members:       pair,
		CreatedAt:     now,
		LastMessageAt: now,
	}))
	if err != nil {
		return domain.Room{}, err
	}
	return roomFromRecord(created), nil
}

type createGroupRequest struct {
	SelfID    string   `validate:"required"`
	Name      string   `validate:"max=120"`
	MemberIDs []string `validate:"dive,required"`
}

// CreateGroupRoom creates a group room whose member set is the deduplicated
// union of the creator and the given members. The name is stored verbatim;
// no uniqueness is enforced on it.
func (r *RoomRegistry) CreateGroupRoom(ctx context.Context, selfID, name string, memberIDs []string) (domain.Room, error) {
	if err := validate.Struct(createGroupRequest{SelfID: selfID, Name: name, MemberIDs: memberIDs}); err != nil {
		return domain.Room{}, fmt.Errorf("%w: %v", cerrors.ErrInvalidArgument, err)
	}

	members := lo.Uniq(append([]string{selfID}, memberIDs...))
	if len(members) == 0 {
		return domain.Room{}, fmt.Errorf("%w: member set is empty", cerrors.ErrInvalidArgument)
	}

	now := time.Now().UTC()
	created, err := r.store.Create(ctx, CollectionRooms, roomToRecord(domain.Room{
		Name:          name,
		Kind:          domain.RoomGroup,
		Members:       members,
		CreatedAt:     now,
		LastMessageAt: now,
	}))
	if err != nil {
		return domain.Room{}, err
	}
	return roomFromRecord(created), nil
}

func (r *RoomRegistry) GetRoom(ctx context.Context, roomID string) (domain.Room, error) {
	rec, ok, err := r.store.FindOne(ctx, CollectionRooms, store.Query{
		Where: []store.Filter{store.Where("id", store.OpEq, roomID)},
	})
	if err != nil {
		return domain.Room{}, err
	}
	if !ok {
		return domain.Room{}, fmt.Errorf("%w: room %s", cerrors.ErrNotFound, roomID)
	}
	return roomFromRecord(rec), nil
}

// ListRooms returns the rooms the user belongs to, most recently active
// first.
func (r *RoomRegistry) ListRooms(ctx context.Context, userID string) ([]domain.Room, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id must be non-empty", cerrors.ErrInvalidArgument)
	}
	recs, err := r.store.Find(ctx, CollectionRooms, store.Query{
		Where:   []store.Filter{store.Where("members", store.OpContains, userID)},
		OrderBy: []store.Order{{Field: "lastMessageAt", Desc: true}},
	})
	if err != nil {
		return nil, err
	}
	return lo.Map(recs, func(rec store.Record, _ int) domain.Room {
		return roomFromRecord(rec)
	}), nil
}

// LeaveRoom removes the user from the room's member set and deletes the room
// once the set is empty, so no orphaned empty room persists.
//
// The store offers no compare-and-swap, so two members leaving concurrently
// race on the member set and one removal may be lost.
func (r *RoomRegistry) LeaveRoom(ctx context.Context, roomID, userID string) error {
	room, err := r.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}

	members := lo.Without(room.Members, userID)
	if len(members) == 0 {
		r.log.Info("Last member left, deleting room", "room", roomID)
		return r.store.Delete(ctx, CollectionRooms, roomID)
	}
	_, err = r.store.Update(ctx, CollectionRooms, roomID, store.Record{"members": members})
	return err
}

// TouchLastActivity advances lastMessageAt monotonically; out-of-order calls
// are no-ops.
func (r *RoomRegistry) TouchLastActivity(ctx context.Context, roomID string, at time.Time) error {
	room, err := r.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if !at.After(room.LastMessageAt) {
		return nil
	}
	_, err = r.store.Update(ctx, CollectionRooms, roomID, store.Record{
		"lastMessageAt": store.EncodeTime(at),
	})
	return err
}

func roomToRecord(room domain.Room) store.Record {
	return store.Record{
		"name":          room.Name,
		"kind":          string(room.Kind),
		"members":       room.Members,
		"createdAt":     store.EncodeTime(room.CreatedAt),
		"lastMessageAt": store.EncodeTime(room.LastMessageAt),
	}
}

func roomFromRecord(rec store.Record) domain.Room {
	return domain.Room{
		ID:            rec.ID(),
		Name:          rec.String("name"),
		Kind:          domain.RoomKind(rec.String("kind")),
		Members:       rec.StringSlice("members"),
		CreatedAt:     rec.Time("createdAt"),
		LastMessageAt: rec.Time("lastMessageAt"),
	}
}
