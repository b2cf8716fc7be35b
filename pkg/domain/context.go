package domain

// MoodState is the inferred emotional state used by the decision policy
type MoodState string

// known mood states
const (
	MoodLow       MoodState = "low"
	MoodIrritable MoodState = "irritable"
	MoodNeutral   MoodState = "neutral"
	MoodHigh      MoodState = "high"
)

// TimeOfDay is a coarse wall-clock bucket
type TimeOfDay string

// known time-of-day buckets
const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Night     TimeOfDay = "night"
)

// CyclePhase is the engine's collapsed four-phase vocabulary
type CyclePhase string

// known cycle phases
const (
	PhaseMenstrual  CyclePhase = "menstrual"
	PhaseFollicular CyclePhase = "follicular"
	PhaseOvulation  CyclePhase = "ovulation"
	PhaseLuteal     CyclePhase = "luteal"
)

// DecisionContext is the ephemeral input to the policy engine, recomputed
// on every scheduler tick and never persisted
type DecisionContext struct {
	Phase     CyclePhase
	Mood      MoodState
	TimeOfDay TimeOfDay
	Tone      ToneMode
}
