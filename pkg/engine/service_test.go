package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunawell/nudge/pkg/domain"
	"github.com/lunawell/nudge/pkg/engine/mocks"
)

func TestService_MarkReadResetsDismissals(t *testing.T) {
	store := &mocks.StoreMock{
		MarkReadFunc:      func(ctx context.Context, id string) error { return nil },
		SetDismissalsFunc: func(ctx context.Context, count int) error { return nil },
	}
	svc := NewService(store)

	require.NoError(t, svc.MarkRead(context.Background(), "n-1"))

	require.Len(t, store.MarkReadCalls(), 1)
	assert.Equal(t, "n-1", store.MarkReadCalls()[0].ID)

	// any read action zeroes the counter regardless of its prior value
	require.Len(t, store.SetDismissalsCalls(), 1)
	assert.Equal(t, 0, store.SetDismissalsCalls()[0].Count)
}

func TestService_MarkAllReadResetsDismissals(t *testing.T) {
	store := &mocks.StoreMock{
		MarkAllReadFunc:   func(ctx context.Context) error { return nil },
		SetDismissalsFunc: func(ctx context.Context, count int) error { return nil },
	}
	svc := NewService(store)

	require.NoError(t, svc.MarkAllRead(context.Background()))
	require.Len(t, store.SetDismissalsCalls(), 1)
	assert.Equal(t, 0, store.SetDismissalsCalls()[0].Count)
}

func TestService_ToastDismissedIncrements(t *testing.T) {
	store := &mocks.StoreMock{
		IncrementDismissalsFunc: func(ctx context.Context) (int, error) { return 4, nil },
	}
	svc := NewService(store)

	require.NoError(t, svc.ToastDismissed(context.Background()))
	assert.Len(t, store.IncrementDismissalsCalls(), 1)
}

func TestService_UpdatePreferences(t *testing.T) {
	store := &mocks.StoreMock{
		SavePreferencesFunc: func(ctx context.Context, prefs domain.Preferences) error { return nil },
	}
	svc := NewService(store)

	t.Run("valid tone stored", func(t *testing.T) {
		prefs := domain.DefaultPreferences()
		prefs.Tone = domain.ToneCalmMinimal
		require.NoError(t, svc.UpdatePreferences(context.Background(), prefs))
		assert.Len(t, store.SavePreferencesCalls(), 1)
	})

	t.Run("unknown tone rejected", func(t *testing.T) {
		prefs := domain.DefaultPreferences()
		prefs.Tone = "shouty"
		err := svc.UpdatePreferences(context.Background(), prefs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tone")
	})
}

func TestService_PauseAndResume(t *testing.T) {
	stored := domain.DefaultPreferences()
	store := &mocks.StoreMock{
		PreferencesFunc: func(ctx context.Context) (domain.Preferences, error) { return stored, nil },
		SavePreferencesFunc: func(ctx context.Context, prefs domain.Preferences) error {
			stored = prefs
			return nil
		},
	}
	svc := NewService(store)

	require.NoError(t, svc.PauseForToday(context.Background()))
	assert.True(t, stored.PausedForToday)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, stored.PausedDate)

	require.NoError(t, svc.Resume(context.Background()))
	assert.False(t, stored.PausedForToday)
	assert.Empty(t, stored.PausedDate)
}

func TestService_ListAndCounts(t *testing.T) {
	store := &mocks.StoreMock{
		NotificationsFunc: func(ctx context.Context) ([]domain.Notification, error) {
			return []domain.Notification{{ID: "a"}, {ID: "b", Read: true}}, nil
		},
		UnreadCountFunc: func(ctx context.Context) (int, error) { return 1, nil },
		ClearAllFunc:    func(ctx context.Context) error { return nil },
	}
	svc := NewService(store)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	count, err := svc.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, svc.ClearAll(context.Background()))
	assert.Len(t, store.ClearAllCalls(), 1)
}
