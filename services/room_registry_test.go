package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cerrors "chat-core/errors"
	"chat-core/store"
)

func newRegistry(t *testing.T) (*RoomRegistry, *store.MemoryStore) {
	t.Helper()
	memStore := store.NewMemoryStore()
	return NewRoomRegistry(memStore, slog.Default()), memStore
}

func Test_CreateDirectRoom_Is_Idempotent_For_A_Pair(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry, memStore := newRegistry(t)

	first, err := registry.CreateDirectRoom(ctx, "u1", "u2")
	req.NoError(err)
	req.NotEmpty(first.ID)
	req.Equal([]string{"u1", "u2"}, first.Members)
	req.Empty(first.Name)

	// Reversed argument order must return the very same room.
	second, err := registry.CreateDirectRoom(ctx, "u2", "u1")
	req.NoError(err)
	req.Equal(first.ID, second.ID)

	recs, err := memStore.Find(ctx, CollectionRooms, store.Query{})
	req.NoError(err)
	req.Len(recs, 1)
}

func Test_CreateDirectRoom_Rejects_Bad_Pairs(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry, _ := newRegistry(t)

	t.Run("should reject an empty user id", func(t *testing.T) {
		_, err := registry.CreateDirectRoom(ctx, "", "u2")
		req.ErrorIs(err, cerrors.ErrInvalidArgument)
	})

	t.Run("should reject a self pair", func(t *testing.T) {
		_, err := registry.CreateDirectRoom(ctx, "u1", "u1")
		req.ErrorIs(err, cerrors.ErrInvalidArgument)
	})
}

func Test_CreateGroupRoom_Always_Includes_The_Creator(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry, _ := newRegistry(t)

	room, err := registry.CreateGroupRoom(ctx, "u1", "ops war room", []string{"u2", "u3", "u2", "u1"})
	req.NoError(err)
	req.Equal("ops war room", room.Name)
	req.ElementsMatch([]string{"u1", "u2", "u3"}, room.Members)

	_, err = registry.CreateGroupRoom(ctx, "", "no creator", nil)
	req.ErrorIs(err, cerrors.ErrInvalidArgument)
}

func Test_ListRooms_Orders_By_Most_Recent_Activity(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry, _ := newRegistry(t)

	older, err := registry.CreateGroupRoom(ctx, "u1", "older", []string{"u2"})
	req.NoError(err)
	newer, err := registry.CreateGroupRoom(ctx, "u1", "newer", []string{"u3"})
	req.NoError(err)
	_, err = registry.CreateGroupRoom(ctx, "u9", "not mine", nil)
	req.NoError(err)

	req.NoError(registry.TouchLastActivity(ctx, older.ID, time.Now().UTC().Add(time.Hour)))

	rooms, err := registry.ListRooms(ctx, "u1")
	req.NoError(err)
	req.Len(rooms, 2)
	req.Equal(older.ID, rooms[0].ID)
	req.Equal(newer.ID, rooms[1].ID)
}

func Test_LeaveRoom_Deletes_The_Room_When_Empty(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry, _ := newRegistry(t)

	room, err := registry.CreateGroupRoom(ctx, "u1", "trio", []string{"u2", "u3"})
	req.NoError(err)

	req.NoError(registry.LeaveRoom(ctx, room.ID, "u2"))
	got, err := registry.GetRoom(ctx, room.ID)
	req.NoError(err)
	req.ElementsMatch([]string{"u1", "u3"}, got.Members)

	req.NoError(registry.LeaveRoom(ctx, room.ID, "u1"))
	req.NoError(registry.LeaveRoom(ctx, room.ID, "u3"))

	_, err = registry.GetRoom(ctx, room.ID)
	req.ErrorIs(err, cerrors.ErrNotFound)

	req.ErrorIs(registry.LeaveRoom(ctx, room.ID, "u3"), cerrors.ErrNotFound)
}

func Test_TouchLastActivity_Is_Monotonic(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry, _ := newRegistry(t)

	room, err := registry.CreateGroupRoom(ctx, "u1", "ops", nil)
	req.NoError(err)

	future := room.LastMessageAt.Add(time.Hour)
	req.NoError(registry.TouchLastActivity(ctx, room.ID, future))

	// An out-of-order timestamp must be a no-op.
	req.NoError(registry.TouchLastActivity(ctx, room.ID, room.LastMessageAt.Add(time.Minute)))

	got, err := registry.GetRoom(ctx, room.ID)
	req.NoError(err)
	req.True(got.LastMessageAt.Equal(future))

	req.ErrorIs(registry.TouchLastActivity(ctx, "missing", future), cerrors.ErrNotFound)
}
