package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-pkgz/lgr"

	"github.com/lunawell/nudge/pkg/domain"
)

// Preferences loads the stored notification preferences. Absence or a
// corrupt blob falls back to domain.DefaultPreferences, stored values are
// normalized back into their legal ranges.
func (s *Store) Preferences(ctx context.Context) (domain.Preferences, error) {
	raw, err := s.get(ctx, keyPreferences)
	if err != nil {
		return domain.Preferences{}, err
	}
	if raw == "" {
		return domain.DefaultPreferences(), nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		lgr.Printf("[WARN] corrupt preferences blob, falling back to defaults: %v", err)
		return domain.DefaultPreferences(), nil
	}
	return prefs.Normalize(), nil
}

// SavePreferences stores the preferences blob
func (s *Store) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	data, err := json.Marshal(prefs.Normalize())
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	return s.set(ctx, keyPreferences, string(data))
}

// EnsurePreferences stores the given preferences only when nothing is
// persisted yet, used to seed configured defaults on first run
func (s *Store) EnsurePreferences(ctx context.Context, prefs domain.Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.get(ctx, keyPreferences)
	if err != nil {
		return err
	}
	if raw != "" {
		return nil
	}
	return s.SavePreferences(ctx, prefs)
}

// Dismissals returns the persisted consecutive-dismissal counter, default 0
func (s *Store) Dismissals(ctx context.Context) (int, error) {
	raw, err := s.get(ctx, keyDismissals)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		lgr.Printf("[WARN] corrupt dismissal counter %q, resetting to 0", raw)
		return 0, nil
	}
	return count, nil
}

// SetDismissals stores the dismissal counter, negative values are clamped to 0
func (s *Store) SetDismissals(ctx context.Context, count int) error {
	if count < 0 {
		count = 0
	}
	return s.set(ctx, keyDismissals, strconv.Itoa(count))
}

// IncrementDismissals bumps the dismissal counter by one and returns the
// new value. The read-modify-write sequence runs under the store mutex.
func (s *Store) IncrementDismissals(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.Dismissals(ctx)
	if err != nil {
		return 0, err
	}
	count++
	if err := s.SetDismissals(ctx, count); err != nil {
		return 0, err
	}
	return count, nil
}

// Profile loads the recorded cycle and mood signals, empty when never saved
func (s *Store) Profile(ctx context.Context) (domain.Profile, error) {
	raw, err := s.get(ctx, keyProfile)
	if err != nil {
		return domain.Profile{}, err
	}
	if raw == "" {
		return domain.Profile{}, nil
	}

	var profile domain.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		lgr.Printf("[WARN] corrupt profile blob, treating as empty: %v", err)
		return domain.Profile{}, nil
	}
	return profile, nil
}

// SaveProfile stores the profile blob
func (s *Store) SaveProfile(ctx context.Context, profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.set(ctx, keyProfile, string(data))
}
