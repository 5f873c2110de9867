package platform_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/internal/platform"
	"github.com/aretw0/quire/pkg/adapters/memory"
	"github.com/aretw0/quire/pkg/core"
)

func TestNew(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("seeds by default", func(t *testing.T) {
		svc, err := platform.New(ctx, t.TempDir(), platform.WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		defer svc.Close()
		assert.Len(t, svc.Notes(), 5)
	})

	t.Run("yaml format on sqlite", func(t *testing.T) {
		root := t.TempDir()
		svc, err := platform.New(ctx, root,
			platform.WithAdapter(platform.AdapterSQLite),
			platform.WithFormat("yaml"),
			platform.WithSeed(false),
		)
		require.NoError(t, err)
		_, err = svc.Create(ctx, core.Draft{Title: "t", Content: "c", Priority: "low", Category: "bug"})
		require.NoError(t, err)
		require.NoError(t, svc.Close())

		again, err := platform.New(ctx, root, platform.WithAdapter(platform.AdapterSQLite), platform.WithFormat("yaml"))
		require.NoError(t, err)
		defer again.Close()
		require.Len(t, again.Notes(), 1)
		assert.Equal(t, "t", again.Notes()[0].Title)
	})

	t.Run("read-only sqlite without a database", func(t *testing.T) {
		svc, err := platform.New(ctx, t.TempDir(),
			platform.WithAdapter(platform.AdapterSQLite),
			platform.WithReadOnly(true),
			platform.WithSeed(false),
		)
		require.NoError(t, err)
		defer svc.Close()
		assert.Empty(t, svc.Notes())
		assert.False(t, svc.Persistent())
	})

	t.Run("writes through injected kv", func(t *testing.T) {
		kv := memory.New()
		_, err := platform.New(ctx, "", platform.WithKV(kv))
		require.NoError(t, err)
		assert.Equal(t, []string{"notes.json"}, kv.Keys())
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := platform.New(ctx, t.TempDir(), platform.WithFormat("toml"))
		assert.Error(t, err)
	})
}
