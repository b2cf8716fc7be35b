package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/lunawell/nudge/pkg/domain"
)

// Service exposes the operations the presentation layer calls: listing and
// read-marking notifications, the toast-dismissed signal, and preference
// updates. Marking anything read is the engagement signal that resets the
// dismissal counter; dismissing a toast without reading increments it.
type Service struct {
	store Store
	nowFn func() time.Time
}

// NewService creates the UI-facing service over the store
func NewService(store Store) *Service {
	return &Service{store: store, nowFn: time.Now}
}

// List returns the stored notifications, most-recent-first
func (s *Service) List(ctx context.Context) ([]domain.Notification, error) {
	return s.store.Notifications(ctx)
}

// UnreadCount returns the number of unread notifications
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.store.UnreadCount(ctx)
}

// MarkRead marks one notification read and resets the dismissal counter
func (s *Service) MarkRead(ctx context.Context, id string) error {
	if err := s.store.MarkRead(ctx, id); err != nil {
		return err
	}
	return s.store.SetDismissals(ctx, 0)
}

// MarkAllRead marks every notification read and resets the dismissal counter
func (s *Service) MarkAllRead(ctx context.Context) error {
	if err := s.store.MarkAllRead(ctx); err != nil {
		return err
	}
	return s.store.SetDismissals(ctx, 0)
}

// ClearAll removes all stored notifications
func (s *Service) ClearAll(ctx context.Context) error {
	return s.store.ClearAll(ctx)
}

// ToastDismissed records a shown-but-not-engaged toast. Enough of these in
// a row silently lowers the daily cap.
func (s *Service) ToastDismissed(ctx context.Context) error {
	count, err := s.store.IncrementDismissals(ctx)
	if err != nil {
		return err
	}
	lgr.Printf("[DEBUG] toast dismissed, consecutive count %d", count)
	return nil
}

// Preferences returns the current stored preferences
func (s *Service) Preferences(ctx context.Context) (domain.Preferences, error) {
	return s.store.Preferences(ctx)
}

// UpdatePreferences validates and stores new preferences
func (s *Service) UpdatePreferences(ctx context.Context, prefs domain.Preferences) error {
	if !prefs.Tone.Valid() {
		return fmt.Errorf("unknown tone %q", prefs.Tone)
	}
	return s.store.SavePreferences(ctx, prefs)
}

// PauseForToday suppresses generation for the rest of the current calendar
// day. The pause carries its date and expires on its own at midnight.
func (s *Service) PauseForToday(ctx context.Context) error {
	prefs, err := s.store.Preferences(ctx)
	if err != nil {
		return err
	}
	prefs.PausedForToday = true
	prefs.PausedDate = s.nowFn().Format("2006-01-02")
	return s.store.SavePreferences(ctx, prefs)
}

// Resume clears an active pause before it expires
func (s *Service) Resume(ctx context.Context) error {
	prefs, err := s.store.Preferences(ctx)
	if err != nil {
		return err
	}
	prefs.PausedForToday = false
	prefs.PausedDate = ""
	return s.store.SavePreferences(ctx, prefs)
}
