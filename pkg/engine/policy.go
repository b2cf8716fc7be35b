package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lunawell/nudge/pkg/domain"
)

// Policy turns a decision context into at most one notification. Randomness
// is injected so tests can pin the selection; the policy never touches the
// package-global rand.
type Policy struct {
	bank Bank
	rnd  *rand.Rand
}

// NewPolicy creates a policy over the given template bank. A nil rnd gets a
// time-seeded source.
func NewPolicy(bank Bank, rnd *rand.Rand) *Policy {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // selection randomness, not security
	}
	return &Policy{bank: bank, rnd: rnd}
}

// Decide produces a notification for the context or declines with nil.
// A decline is the normal steady-state outcome, never an error.
func (p *Policy) Decide(dc domain.DecisionContext, now time.Time) *domain.Notification {
	tone := ResolveTone(dc.Tone, dc.Mood)
	if tone == domain.ToneSilent {
		return nil
	}

	categories := EligibleCategories(dc)
	if len(categories) == 0 {
		return nil
	}
	category := categories[p.rnd.Intn(len(categories))]

	pool := p.bank.Pool(category, tone)
	if len(pool) == 0 {
		// sparse authored content for this pairing, accept fewer notifications
		// rather than retrying another category and skewing frequency
		return nil
	}
	tmpl := pool[p.rnd.Intn(len(pool))]

	return &domain.Notification{
		ID:        uuid.NewString(),
		Category:  category,
		Title:     category.Title(),
		Body:      tmpl.Body,
		TimeOfDay: dc.TimeOfDay,
		CreatedAt: now,
		Href:      tmpl.Href,
		HrefLabel: tmpl.HrefLabel,
	}
}

// ResolveTone applies the mood safety overrides to the stated preference:
// a low mood downgrades fun-quirky to affirmations, an irritable mood forces
// calm-minimal regardless of preference. Silent always stays silent.
func ResolveTone(tone domain.ToneMode, mood domain.MoodState) domain.ToneMode {
	if tone == domain.ToneSilent {
		return domain.ToneSilent
	}
	switch mood {
	case domain.MoodLow:
		if tone == domain.ToneFunQuirky {
			return domain.ToneAffirmations
		}
	case domain.MoodIrritable:
		return domain.ToneCalmMinimal
	}
	return tone
}

// EligibleCategories maps (mood, time-of-day, phase) to the categories the
// policy may pick from, in a fixed order so tests with a seeded source are
// deterministic.
func EligibleCategories(dc domain.DecisionContext) []domain.Category {
	switch dc.Mood {
	case domain.MoodLow:
		if dc.TimeOfDay == domain.Night {
			return []domain.Category{domain.CategoryCheckIn}
		}
		return []domain.Category{domain.CategoryCheckIn, domain.CategoryComfort}
	case domain.MoodIrritable:
		// short, neutral, low-demand
		return []domain.Category{domain.CategoryCare}
	}

	if dc.Phase == domain.PhaseMenstrual || dc.Phase == domain.PhaseLuteal {
		switch dc.TimeOfDay {
		case domain.Morning:
			return []domain.Category{domain.CategoryCycle, domain.CategoryCare}
		case domain.Afternoon:
			return []domain.Category{domain.CategoryCare, domain.CategoryComfort}
		default:
			return []domain.Category{domain.CategoryCheckIn, domain.CategoryComfort}
		}
	}

	switch dc.TimeOfDay {
	case domain.Morning:
		return []domain.Category{domain.CategoryCare, domain.CategoryCycle}
	case domain.Afternoon:
		return []domain.Category{domain.CategoryCare, domain.CategoryComfort}
	default:
		return []domain.Category{domain.CategoryCheckIn, domain.CategoryComfort}
	}
}
