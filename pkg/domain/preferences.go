package domain

// ToneMode is the user-selected voice for all surfaced messages
type ToneMode string

// known tone modes, silent disables generation unconditionally
const (
	ToneCuteSoft     ToneMode = "cute-soft"
	ToneFunQuirky    ToneMode = "fun-quirky"
	ToneAffirmations ToneMode = "affirmations"
	ToneCalmMinimal  ToneMode = "calm-minimal"
	ToneSilent       ToneMode = "silent"
)

// Valid reports whether the tone is one of the known modes
func (t ToneMode) Valid() bool {
	switch t {
	case ToneCuteSoft, ToneFunQuirky, ToneAffirmations, ToneCalmMinimal, ToneSilent:
		return true
	}
	return false
}

// Preferences holds the user-owned notification settings. Quiet hours may
// wrap past midnight (start > end means the window spans midnight).
type Preferences struct {
	Tone           ToneMode `json:"toneMode"`
	MaxPerDay      int      `json:"maxPerDay"`
	QuietStart     int      `json:"quietHoursStart"`
	QuietEnd       int      `json:"quietHoursEnd"`
	PausedForToday bool     `json:"pausedForToday"`
	PausedDate     string   `json:"pausedDate,omitempty"` // ISO calendar date the pause applies to
}

// DefaultPreferences returns the documented fallback used when nothing is stored
func DefaultPreferences() Preferences {
	return Preferences{
		Tone:       ToneCuteSoft,
		MaxPerDay:  3,
		QuietStart: 22,
		QuietEnd:   7,
	}
}

// Normalize clamps out-of-range values back to their legal ranges. Stored
// preferences are best-effort blobs, so drifted values are repaired instead
// of rejected.
func (p Preferences) Normalize() Preferences {
	if !p.Tone.Valid() {
		p.Tone = ToneCuteSoft
	}
	if p.MaxPerDay < 1 {
		p.MaxPerDay = 1
	}
	if p.MaxPerDay > 5 {
		p.MaxPerDay = 5
	}
	if p.QuietStart < 0 || p.QuietStart > 23 {
		p.QuietStart = 22
	}
	if p.QuietEnd < 0 || p.QuietEnd > 23 {
		p.QuietEnd = 7
	}
	return p
}
