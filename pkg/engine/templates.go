package engine

import "github.com/lunawell/nudge/pkg/domain"

// Template is an authored message body with a deep link into another feature
type Template struct {
	Body      string
	Href      string
	HrefLabel string
}

// Bank maps (category, tone) to its authored template pool. A missing or
// empty pool is valid and simply makes the policy decline.
type Bank map[domain.Category]map[domain.ToneMode][]Template

// Pool returns the templates for a category/tone pairing, nil when none
func (b Bank) Pool(c domain.Category, t domain.ToneMode) []Template {
	if tones, ok := b[c]; ok {
		return tones[t]
	}
	return nil
}

// DefaultBank returns the built-in authored content. The silent tone has no
// pools on purpose.
func DefaultBank() Bank {
	return Bank{
		domain.CategoryCare: {
			domain.ToneCuteSoft: {
				{Body: "A tiny sip of water would make your body so happy right now 💧", Href: "/care", HrefLabel: "Care tips"},
				{Body: "Psst... when did you last stretch? Your shoulders are asking 🐰", Href: "/care", HrefLabel: "Care tips"},
			},
			domain.ToneFunQuirky: {
				{Body: "Hydration check! Your cells are throwing a tiny party and water's invited.", Href: "/care", HrefLabel: "Care tips"},
				{Body: "Plot twist: standing up and stretching counts as cardio today.", Href: "/care", HrefLabel: "Care tips"},
			},
			domain.ToneAffirmations: {
				{Body: "Caring for your body is caring for yourself. A glass of water is a good start.", Href: "/care", HrefLabel: "Care tips"},
				{Body: "You deserve the same gentleness you give everyone else.", Href: "/care", HrefLabel: "Care tips"},
			},
			domain.ToneCalmMinimal: {
				{Body: "Water break.", Href: "/care", HrefLabel: "Care"},
				{Body: "Time to stretch for a minute.", Href: "/care", HrefLabel: "Care"},
			},
		},
		domain.CategoryCheckIn: {
			domain.ToneCuteSoft: {
				{Body: "Just checking in — how's your heart doing today? 🌸", Href: "/mood", HrefLabel: "Log mood"},
				{Body: "No pressure, but if you want to tell me how you feel, I'm listening 🐻", Href: "/mood", HrefLabel: "Log mood"},
			},
			domain.ToneFunQuirky: {
				{Body: "Emotional weather report time: sunny, cloudy, or full goblin mode?", Href: "/mood", HrefLabel: "Log mood"},
				{Body: "Quick vibe check — scale of 1 to burrito-in-a-blanket, how cozy are you?", Href: "/mood", HrefLabel: "Log mood"},
			},
			domain.ToneAffirmations: {
				{Body: "Whatever you're feeling right now is valid and allowed.", Href: "/mood", HrefLabel: "Log mood"},
				{Body: "Noticing your feelings is a quiet kind of strength.", Href: "/mood", HrefLabel: "Log mood"},
			},
			domain.ToneCalmMinimal: {
				{Body: "How are you feeling?", Href: "/mood", HrefLabel: "Mood"},
				{Body: "A moment to check in with yourself.", Href: "/mood", HrefLabel: "Mood"},
			},
		},
		domain.CategoryCycle: {
			domain.ToneCuteSoft: {
				{Body: "Your body is doing a lot this phase — extra rest is extra love 🤍", Href: "/cycle", HrefLabel: "Cycle view"},
				{Body: "This part of your cycle can feel heavier. Warm tea kind of day? 🍵", Href: "/cycle", HrefLabel: "Cycle view"},
			},
			domain.ToneFunQuirky: {
				{Body: "Your hormones are running the show today. Snacks are a legitimate strategy.", Href: "/cycle", HrefLabel: "Cycle view"},
				{Body: "Cycle says: energy may vary. Warranty void if you skip naps.", Href: "/cycle", HrefLabel: "Cycle view"},
			},
			domain.ToneAffirmations: {
				{Body: "Your rhythm is yours. Honoring it is wisdom, not weakness.", Href: "/cycle", HrefLabel: "Cycle view"},
				{Body: "Each phase asks for something different, and you're allowed to listen.", Href: "/cycle", HrefLabel: "Cycle view"},
			},
			domain.ToneCalmMinimal: {
				{Body: "A new phase of your cycle. See what it tends to bring.", Href: "/cycle", HrefLabel: "Cycle"},
				{Body: "Your cycle view has a note for today.", Href: "/cycle", HrefLabel: "Cycle"},
			},
		},
		domain.CategoryComfort: {
			domain.ToneCuteSoft: {
				{Body: "A warm blanket and five quiet minutes — you've earned both 🫖", Href: "/comfort", HrefLabel: "Comfort ideas"},
				{Body: "Soft socks, warm drink, zero obligations. Just an idea 🧦", Href: "/comfort", HrefLabel: "Comfort ideas"},
			},
			domain.ToneFunQuirky: {
				{Body: "Professional recommendation: wrap yourself like a burrito immediately.", Href: "/comfort", HrefLabel: "Comfort ideas"},
				{Body: "The couch misses you. This is an official summons.", Href: "/comfort", HrefLabel: "Comfort ideas"},
			},
			domain.ToneAffirmations: {
				{Body: "Rest is productive. Comfort is allowed. You are enough.", Href: "/comfort", HrefLabel: "Comfort ideas"},
				{Body: "Choosing softness for yourself tonight is a perfectly good choice.", Href: "/comfort", HrefLabel: "Comfort ideas"},
			},
			domain.ToneCalmMinimal: {
				{Body: "Something warm might help right now.", Href: "/comfort", HrefLabel: "Comfort"},
				{Body: "A short break, somewhere soft.", Href: "/comfort", HrefLabel: "Comfort"},
			},
		},
	}
}
