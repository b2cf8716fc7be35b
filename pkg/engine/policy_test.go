package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunawell/nudge/pkg/domain"
)

func testPolicy() *Policy {
	return NewPolicy(DefaultBank(), rand.New(rand.NewSource(42))) //nolint:gosec // deterministic test source
}

func TestResolveTone(t *testing.T) {
	tests := []struct {
		name     string
		tone     domain.ToneMode
		mood     domain.MoodState
		expected domain.ToneMode
	}{
		{"silent stays silent", domain.ToneSilent, domain.MoodHigh, domain.ToneSilent},
		{"low downgrades fun-quirky", domain.ToneFunQuirky, domain.MoodLow, domain.ToneAffirmations},
		{"low leaves cute-soft alone", domain.ToneCuteSoft, domain.MoodLow, domain.ToneCuteSoft},
		{"irritable forces calm-minimal", domain.ToneFunQuirky, domain.MoodIrritable, domain.ToneCalmMinimal},
		{"irritable overrides affirmations too", domain.ToneAffirmations, domain.MoodIrritable, domain.ToneCalmMinimal},
		{"neutral keeps preference", domain.ToneFunQuirky, domain.MoodNeutral, domain.ToneFunQuirky},
		{"high keeps preference", domain.ToneCalmMinimal, domain.MoodHigh, domain.ToneCalmMinimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveTone(tt.tone, tt.mood))
		})
	}
}

func TestPolicy_SilenceInvariant(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	// silent never produces, whatever the rest of the context says
	for _, mood := range []domain.MoodState{domain.MoodLow, domain.MoodIrritable, domain.MoodNeutral, domain.MoodHigh} {
		for _, tod := range []domain.TimeOfDay{domain.Morning, domain.Afternoon, domain.Night} {
			dc := domain.DecisionContext{
				Phase:     domain.PhaseLuteal,
				Mood:      mood,
				TimeOfDay: tod,
				Tone:      domain.ToneSilent,
			}
			assert.Nilf(t, p.Decide(dc, now), "mood=%s tod=%s", mood, tod)
		}
	}
}

func TestEligibleCategories(t *testing.T) {
	tests := []struct {
		name     string
		dc       domain.DecisionContext
		expected []domain.Category
	}{
		{
			"low mood at night narrows to check-in",
			domain.DecisionContext{Mood: domain.MoodLow, TimeOfDay: domain.Night, Phase: domain.PhaseFollicular},
			[]domain.Category{domain.CategoryCheckIn},
		},
		{
			"low mood in daytime",
			domain.DecisionContext{Mood: domain.MoodLow, TimeOfDay: domain.Morning, Phase: domain.PhaseFollicular},
			[]domain.Category{domain.CategoryCheckIn, domain.CategoryComfort},
		},
		{
			"irritable always care only",
			domain.DecisionContext{Mood: domain.MoodIrritable, TimeOfDay: domain.Afternoon, Phase: domain.PhaseOvulation},
			[]domain.Category{domain.CategoryCare},
		},
		{
			"menstrual morning",
			domain.DecisionContext{Mood: domain.MoodNeutral, TimeOfDay: domain.Morning, Phase: domain.PhaseMenstrual},
			[]domain.Category{domain.CategoryCycle, domain.CategoryCare},
		},
		{
			"luteal afternoon",
			domain.DecisionContext{Mood: domain.MoodNeutral, TimeOfDay: domain.Afternoon, Phase: domain.PhaseLuteal},
			[]domain.Category{domain.CategoryCare, domain.CategoryComfort},
		},
		{
			"luteal night",
			domain.DecisionContext{Mood: domain.MoodHigh, TimeOfDay: domain.Night, Phase: domain.PhaseLuteal},
			[]domain.Category{domain.CategoryCheckIn, domain.CategoryComfort},
		},
		{
			"follicular morning",
			domain.DecisionContext{Mood: domain.MoodNeutral, TimeOfDay: domain.Morning, Phase: domain.PhaseFollicular},
			[]domain.Category{domain.CategoryCare, domain.CategoryCycle},
		},
		{
			"ovulation night",
			domain.DecisionContext{Mood: domain.MoodHigh, TimeOfDay: domain.Night, Phase: domain.PhaseOvulation},
			[]domain.Category{domain.CategoryCheckIn, domain.CategoryComfort},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EligibleCategories(tt.dc))
		})
	}
}

func TestPolicy_MoodToneOverrideInOutput(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	t.Run("irritable produces calm-minimal body", func(t *testing.T) {
		dc := domain.DecisionContext{
			Phase:     domain.PhaseFollicular,
			Mood:      domain.MoodIrritable,
			TimeOfDay: domain.Afternoon,
			Tone:      domain.ToneFunQuirky,
		}
		n := p.Decide(dc, now)
		require.NotNil(t, n)
		assert.Equal(t, domain.CategoryCare, n.Category)
		assert.Contains(t, bodies(DefaultBank().Pool(domain.CategoryCare, domain.ToneCalmMinimal)), n.Body)
	})

	t.Run("low mood with fun-quirky produces affirmations body", func(t *testing.T) {
		dc := domain.DecisionContext{
			Phase:     domain.PhaseLuteal,
			Mood:      domain.MoodLow,
			TimeOfDay: domain.Morning,
			Tone:      domain.ToneFunQuirky,
		}
		n := p.Decide(dc, now)
		require.NotNil(t, n)
		affirmations := append(
			bodies(DefaultBank().Pool(domain.CategoryCheckIn, domain.ToneAffirmations)),
			bodies(DefaultBank().Pool(domain.CategoryComfort, domain.ToneAffirmations))...)
		assert.Contains(t, affirmations, n.Body)
	})
}

func TestPolicy_DeclineOnEmptyPool(t *testing.T) {
	// a bank with no content for the resolved pairing declines instead of
	// retrying with another category
	bank := Bank{
		domain.CategoryCare: {domain.ToneCuteSoft: {{Body: "sip some water"}}},
	}
	p := NewPolicy(bank, rand.New(rand.NewSource(1))) //nolint:gosec // deterministic test source

	dc := domain.DecisionContext{
		Phase:     domain.PhaseFollicular,
		Mood:      domain.MoodIrritable, // resolves to calm-minimal, care-only
		TimeOfDay: domain.Morning,
		Tone:      domain.ToneCuteSoft,
	}
	assert.Nil(t, p.Decide(dc, time.Now()))
}

func TestPolicy_EndToEnd(t *testing.T) {
	p := testPolicy()
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	dc := domain.DecisionContext{
		Phase:     domain.PhaseLuteal,
		Mood:      domain.MoodNeutral,
		TimeOfDay: domain.Morning,
		Tone:      domain.ToneCalmMinimal,
	}

	n := p.Decide(dc, now)
	require.NotNil(t, n)

	assert.Contains(t, []domain.Category{domain.CategoryCycle, domain.CategoryCare}, n.Category)
	assert.NotEmpty(t, n.Body)
	assert.Contains(t, bodies(DefaultBank().Pool(n.Category, domain.ToneCalmMinimal)), n.Body)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, n.Category.Title(), n.Title)
	assert.Equal(t, domain.Morning, n.TimeOfDay)
	assert.Equal(t, now, n.CreatedAt)
	assert.False(t, n.Read)
	assert.NotEmpty(t, n.Href)
}

func TestPolicy_UniqueIDs(t *testing.T) {
	p := testPolicy()
	dc := domain.DecisionContext{
		Phase:     domain.PhaseFollicular,
		Mood:      domain.MoodNeutral,
		TimeOfDay: domain.Morning,
		Tone:      domain.ToneCuteSoft,
	}

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		n := p.Decide(dc, time.Now())
		require.NotNil(t, n)
		assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
		seen[n.ID] = true
	}
}

// bodies extracts template bodies for containment assertions
func bodies(pool []Template) []string {
	out := make([]string, len(pool))
	for i, tmpl := range pool {
		out[i] = tmpl.Body
	}
	return out
}
