package lifecycle_test

import (
	"context"
	"errors"
	"testing"
	"time"

	lc "github.com/aretw0/lifecycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quire/pkg/adapters/lifecycle"
	"github.com/aretw0/quire/pkg/core"
)

// scripted reloads to a fixed sequence of totals, failing where errs says so.
type scripted struct {
	totals []int
	errs   []error
	calls  int
	total  int
}

func (r *scripted) Reload(context.Context) error {
	i := r.calls
	r.calls++
	if err := r.errs[i]; err != nil {
		return err
	}
	r.total = r.totals[i]
	return nil
}

func (r *scripted) Stats() core.Stats { return core.Stats{Total: r.total} }

func collect(t *testing.T, src lc.Source) []lifecycle.ReloadEvent {
	t.Helper()
	var got []lifecycle.ReloadEvent
	timeout := time.After(2 * time.Second)
	for {
		select {
		case e, ok := <-src.Events():
			if !ok {
				return got
			}
			re, isReload := e.(lifecycle.ReloadEvent)
			require.True(t, isReload, "unexpected event %T", e)
			got = append(got, re)
		case <-timeout:
			t.Fatal("source did not close")
			return nil
		}
	}
}

func TestSource_ReloadsPerChange(t *testing.T) {
	in := make(chan core.Event, 3)
	in <- core.Event{Type: core.EventCreate, Key: "notes.json"}
	in <- core.Event{Type: core.EventModify, Key: "notes.json"}
	in <- core.Event{Type: core.EventModify, Key: "notes.json"}
	close(in)

	broken := errors.New("disk gone")
	r := &scripted{totals: []int{1, 0, 4}, errs: []error{nil, broken, nil}}
	src := lifecycle.NewSource(in, r)
	require.NoError(t, src.Start(context.Background()))

	got := collect(t, src)
	require.Len(t, got, 3)
	assert.Equal(t, 3, r.calls)

	assert.Equal(t, core.EventCreate, got[0].Change.Type)
	assert.Equal(t, 1, got[0].Notes)
	assert.NoError(t, got[0].Err)
	assert.Contains(t, got[0].String(), "(1 notes)")

	assert.ErrorIs(t, got[1].Err, broken)
	assert.Equal(t, 1, got[1].Notes, "a failed reload keeps the previous total")
	assert.Contains(t, got[1].String(), "reload failed")

	assert.Equal(t, 4, got[2].Notes)
}

func TestSource_StopsWithContext(t *testing.T) {
	in := make(chan core.Event)
	ctx, cancel := context.WithCancel(context.Background())
	src := lifecycle.NewSource(in, &scripted{})
	require.NoError(t, src.Start(ctx))
	cancel()

	assert.Empty(t, collect(t, src))
}
