package engine

import (
	"strings"
	"time"

	"github.com/lunawell/nudge/pkg/domain"
	"github.com/lunawell/nudge/pkg/phase"
)

// BuildContext assembles the decision context from the clock and the stored
// signals. Pure with respect to its inputs, no side effects.
func BuildContext(now time.Time, profile domain.Profile, tone domain.ToneMode) domain.DecisionContext {
	return domain.DecisionContext{
		Phase:     collapsePhase(phase.Resolve(now, profile.CycleStart).Phase),
		Mood:      mapMood(profile.LastMood),
		TimeOfDay: bucketHour(now.Hour()),
		Tone:      tone,
	}
}

// bucketHour maps a wall-clock hour to its coarse time-of-day bucket
func bucketHour(hour int) domain.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return domain.Morning
	case hour >= 12 && hour < 18:
		return domain.Afternoon
	default:
		return domain.Night
	}
}

// mapMood infers a mood state from the recorded mood vocabulary,
// unmapped or absent values default to neutral
func mapMood(mood string) domain.MoodState {
	switch strings.ToLower(strings.TrimSpace(mood)) {
	case "sad", "down", "tearful", "tired":
		return domain.MoodLow
	case "angry", "annoyed", "irritable", "frustrated":
		return domain.MoodIrritable
	case "energetic", "happy", "great", "excited":
		return domain.MoodHigh
	default:
		return domain.MoodNeutral
	}
}

// collapsePhase folds the resolver's seven-phase vocabulary into the
// engine's four phases, no-data maps to follicular as a neutral default
func collapsePhase(p phase.Phase) domain.CyclePhase {
	switch p {
	case phase.Period, phase.Spotting:
		return domain.PhaseMenstrual
	case phase.Ovulation:
		return domain.PhaseOvulation
	case phase.Luteal, phase.PMS:
		return domain.PhaseLuteal
	default: // follicular and no-data
		return domain.PhaseFollicular
	}
}
