package domain

import "time"

// Profile captures the externally recorded signals the engine consumes:
// the tracked cycle start date and the most recent mood entry. Both are
// optional, a zero CycleStart means no cycle data has been recorded yet.
type Profile struct {
	CycleStart time.Time `json:"cycleStartDate"`
	LastMood   string    `json:"lastMood,omitempty"` // raw mood vocabulary, e.g. "sad", "energetic"
	LastMoodAt time.Time `json:"lastMoodAt,omitzero"`
}
