package ai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"kotoba/backend/internal/service/ai"
)

func TestRateLimiter_Defaults(t *testing.T) {
	require.Equal(t, ai.DefaultRateLimit, ai.NewRateLimiter(0).Limit())
	require.Equal(t, 2, ai.NewRateLimiter(2).Limit())
}

func TestRateLimiter_WaitHonoursCancel(t *testing.T) {
	rl := ai.NewRateLimiter(1)
	require.NoError(t, rl.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, rl.Wait(ctx), context.Canceled)
}
