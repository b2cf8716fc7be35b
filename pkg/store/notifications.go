package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/lunawell/nudge/pkg/domain"
)

// Notifications returns the stored list, most-recent-first. A corrupt blob
// degrades to an empty list.
func (s *Store) Notifications(ctx context.Context) ([]domain.Notification, error) {
	raw, err := s.get(ctx, keyNotifications)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []domain.Notification{}, nil
	}

	var list []domain.Notification
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		lgr.Printf("[WARN] corrupt notification list, starting empty: %v", err)
		return []domain.Notification{}, nil
	}
	return list, nil
}

// Append prepends a notification and trims the list to domain.MaxStored
// entries, evicting the oldest. Read-modify-write runs under the store mutex.
func (s *Store) Append(ctx context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Notifications(ctx)
	if err != nil {
		return err
	}

	list = append([]domain.Notification{n}, list...)
	if len(list) > domain.MaxStored {
		list = list[:domain.MaxStored]
	}
	return s.saveNotifications(ctx, list)
}

// MarkRead flags a single notification as read, unknown ids are a no-op
func (s *Store) MarkRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Notifications(ctx)
	if err != nil {
		return err
	}

	changed := false
	for i := range list {
		if list[i].ID == id && !list[i].Read {
			list[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.saveNotifications(ctx, list)
}

// MarkAllRead flags every stored notification as read
func (s *Store) MarkAllRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Notifications(ctx)
	if err != nil {
		return err
	}

	for i := range list {
		list[i].Read = true
	}
	return s.saveNotifications(ctx, list)
}

// ClearAll removes every stored notification
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveNotifications(ctx, []domain.Notification{})
}

// UnreadCount returns the number of stored notifications not yet read
func (s *Store) UnreadCount(ctx context.Context) (int, error) {
	list, err := s.Notifications(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range list {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

// saveNotifications stores the list blob, callers hold the store mutex
func (s *Store) saveNotifications(ctx context.Context, list []domain.Notification) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal notifications: %w", err)
	}
	return s.set(ctx, keyNotifications, string(data))
}
