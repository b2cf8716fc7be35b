package domain

import "time"

// Category is the functional intent of a notification
type Category string

// known notification categories
const (
	CategoryCare    Category = "care-reminder"
	CategoryCheckIn Category = "emotional-check-in"
	CategoryCycle   Category = "cycle-aware"
	CategoryComfort Category = "comfort-suggestion"
)

// Title returns the fixed human-readable title shown for the category
func (c Category) Title() string {
	switch c {
	case CategoryCare:
		return "Gentle care reminder"
	case CategoryCheckIn:
		return "How are you feeling?"
	case CategoryCycle:
		return "A note for this phase"
	case CategoryComfort:
		return "A little comfort"
	}
	return "Notification"
}

// Notification is a generated message surfaced to the user.
// Immutable once created except for the read flag.
type Notification struct {
	ID        string    `json:"id"`
	Category  Category  `json:"category"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	CreatedAt time.Time `json:"createdAt"`
	Read      bool      `json:"read"`
	Href      string    `json:"href,omitempty"`
	HrefLabel string    `json:"hrefLabel,omitempty"`
}

// MaxStored is the hard cap on the persisted notification list,
// oldest entries are evicted first
const MaxStored = 50
