package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func Test_FromContext(t *testing.T) {
	req := require.New(t)

	_, ok := FromContext(context.Background())
	req.False(ok)

	ctx := WithSession(context.Background(), Session{UserID: "u1"})
	s, ok := FromContext(ctx)
	req.True(ok)
	req.Equal("u1", s.UserID)

	_, ok = FromContext(WithSession(context.Background(), Session{}))
	req.False(ok)
}

func Test_RedisStore_Issue_Resolve_Revoke(t *testing.T) {
	req := require.New(t)
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store := NewRedisStore(mr.Addr(), "", "", time.Hour)
	defer store.Close()

	token, err := store.Issue(ctx, "u1")
	req.NoError(err)

	userID, ok, err := store.Resolve(ctx, token)
	req.NoError(err)
	req.True(ok)
	req.Equal("u1", userID)

	req.NoError(store.Revoke(ctx, token))
	_, ok, err = store.Resolve(ctx, token)
	req.NoError(err)
	req.False(ok)
}

func Test_RedisStore_Sessions_Expire(t *testing.T) {
	req := require.New(t)
	mr := miniredis.RunT(t)
	ctx := context.Background()

	store := NewRedisStore(mr.Addr(), "", "", time.Minute)
	defer store.Close()

	token, err := store.Issue(ctx, "u1")
	req.NoError(err)

	mr.FastForward(2 * time.Minute)

	_, ok, err := store.Resolve(ctx, token)
	req.NoError(err)
	req.False(ok)
}

func Test_JWTStore_Issue_And_Resolve(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	store := NewJWTStore("test-secret", time.Hour)

	token, err := store.Issue(ctx, "u1")
	req.NoError(err)

	userID, ok, err := store.Resolve(ctx, token)
	req.NoError(err)
	req.True(ok)
	req.Equal("u1", userID)

	t.Run("should reject an expired token", func(t *testing.T) {
		expired := NewJWTStore("test-secret", -time.Minute)
		token, err := expired.Issue(ctx, "u1")
		req.NoError(err)

		_, ok, err := expired.Resolve(ctx, token)
		req.NoError(err)
		req.False(ok)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		other := NewJWTStore("other-secret", time.Hour)
		token, err := other.Issue(ctx, "u1")
		req.NoError(err)

		_, ok, err := store.Resolve(ctx, token)
		req.NoError(err)
		req.False(ok)
	})
}
