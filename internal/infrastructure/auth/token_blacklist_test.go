package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklisted jti is reported", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()

		require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))

		blacklisted, err := bl.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("unknown jti is not blacklisted", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()

		blacklisted, err := bl.IsBlacklisted(ctx, "unknown")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("expired entry is dropped", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()

		require.NoError(t, bl.AddToBlacklist(ctx, "jti-2", time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		blacklisted, err := bl.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, blacklisted)
	})

	t.Run("user invalidation rejects earlier tokens", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()

		issuedBefore := time.Now()
		time.Sleep(time.Millisecond)
		require.NoError(t, bl.AddUserTokensToBlacklist(ctx, "user-1", time.Hour))

		invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-1", issuedBefore)
		require.NoError(t, err)
		assert.True(t, invalidated)

		time.Sleep(time.Millisecond)
		invalidated, err = bl.IsUserTokenInvalidated(ctx, "user-1", time.Now())
		require.NoError(t, err)
		assert.False(t, invalidated)
	})

	t.Run("no invalidation timestamp means token is valid", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()

		invalidated, err := bl.IsUserTokenInvalidated(ctx, "user-2", time.Now())
		require.NoError(t, err)
		assert.False(t, invalidated)
	})
}
