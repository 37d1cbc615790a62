package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edu-dashboard/internal/core/port"
	"edu-dashboard/internal/core/wizard"
)

func TestWizardStore_CreateAndUpdate(t *testing.T) {
	store := NewWizardStore(time.Hour)
	ctx := context.Background()

	id, err := store.Create(ctx, "u1", wizard.NewState())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	err = store.Update(ctx, id, func(owner string, state *wizard.State) error {
		assert.Equal(t, "u1", owner)
		state.Panel = wizard.PanelCourseForm
		return nil
	})
	require.NoError(t, err)

	err = store.Update(ctx, id, func(_ string, state *wizard.State) error {
		assert.Equal(t, wizard.PanelCourseForm, state.Panel)
		return nil
	})
	require.NoError(t, err)
}

func TestWizardStore_UpdateErrorDiscardsState(t *testing.T) {
	store := NewWizardStore(0)
	ctx := context.Background()
	id, err := store.Create(ctx, "u1", wizard.NewState())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.Update(ctx, id, func(_ string, state *wizard.State) error {
		state.Panel = wizard.PanelCloneChooser
		return boom
	})
	require.ErrorIs(t, err, boom)

	_ = store.Update(ctx, id, func(_ string, state *wizard.State) error {
		assert.Equal(t, wizard.PanelLoading, state.Panel)
		return nil
	})
}

func TestWizardStore_UnknownSession(t *testing.T) {
	store := NewWizardStore(0)
	err := store.Update(context.Background(), "missing", func(string, *wizard.State) error { return nil })
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestWizardStore_Expiry(t *testing.T) {
	store := NewWizardStore(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	id, err := store.Create(ctx, "u1", wizard.NewState())
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	err = store.Update(ctx, id, func(string, *wizard.State) error { return nil })
	assert.ErrorIs(t, err, port.ErrSessionNotFound)

	assert.Equal(t, 1, store.Prune())
	assert.Equal(t, 0, store.Len())
}

func TestWizardStore_SerialisesUpdates(t *testing.T) {
	store := NewWizardStore(0)
	ctx := context.Background()
	id, err := store.Create(ctx, "u1", wizard.NewState())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, id, func(_ string, state *wizard.State) error {
				state.Course.ExpectedStudents++
				return nil
			})
		}()
	}
	wg.Wait()

	_ = store.Update(ctx, id, func(_ string, state *wizard.State) error {
		assert.Equal(t, 50, state.Course.ExpectedStudents)
		return nil
	})
}

func TestWizardStore_PruneDoesNotWaitOnBusySession(t *testing.T) {
	store := NewWizardStore(time.Hour)
	ctx := context.Background()
	busy, err := store.Create(ctx, "u1", wizard.NewState())
	require.NoError(t, err)

	entered := make(chan struct{})
	release := make(chan struct{})
	updated := make(chan error, 1)
	go func() {
		updated <- store.Update(ctx, busy, func(string, *wizard.State) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	pruned := make(chan int, 1)
	go func() { pruned <- store.Prune() }()

	other := make(chan error, 1)
	go func() {
		id, err := store.Create(ctx, "u2", wizard.NewState())
		if err != nil {
			other <- err
			return
		}
		other <- store.Update(ctx, id, func(string, *wizard.State) error { return nil })
	}()

	select {
	case err := <-other:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("unrelated session blocked behind a busy one")
	}
	select {
	case n := <-pruned:
		assert.Equal(t, 0, n)
	case <-time.After(time.Second):
		t.Fatal("prune blocked behind a busy session")
	}

	close(release)
	require.NoError(t, <-updated)
	assert.Equal(t, 2, store.Len())
}
