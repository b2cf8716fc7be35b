// Package phase maps calendar dates to named cycle phases. It is a pure
// calculator over a nominal 28-day cycle; the notification engine consumes
// its result and collapses it into a smaller vocabulary.
package phase

import "time"

// Phase is a named stage of the tracked cycle. Period and spotting come from
// actually logged days; the calculator itself only predicts period,
// follicular, ovulation, luteal and pms, plus no-data when nothing is tracked.
type Phase string

// known phases
const (
	Period     Phase = "period"
	Spotting   Phase = "spotting"
	Follicular Phase = "follicular"
	Ovulation  Phase = "ovulation"
	Luteal     Phase = "luteal"
	PMS        Phase = "pms"
	NoData     Phase = "no-data"
)

// nominal cycle geometry, day 1 is the first period day
const (
	cycleLength   = 28
	periodEnd     = 5
	follicularEnd = 13
	ovulationEnd  = 16
	lutealEnd     = 24
)

// Result is the resolved phase for a single date
type Result struct {
	Phase      Phase
	DayInCycle int  // 1-based day within the nominal cycle, 0 when no data
	Predicted  bool // true when the date falls past the first tracked cycle
}

// Resolve maps a date to its cycle phase given the recorded cycle start date.
// A zero cycle start, or a date before it, yields no-data.
func Resolve(date, cycleStart time.Time) Result {
	if cycleStart.IsZero() {
		return Result{Phase: NoData}
	}

	days := int(dayOf(date).Sub(dayOf(cycleStart)).Hours() / 24)
	if days < 0 {
		return Result{Phase: NoData}
	}

	day := days%cycleLength + 1
	res := Result{DayInCycle: day, Predicted: days >= cycleLength}
	switch {
	case day <= periodEnd:
		res.Phase = Period
	case day <= follicularEnd:
		res.Phase = Follicular
	case day <= ovulationEnd:
		res.Phase = Ovulation
	case day <= lutealEnd:
		res.Phase = Luteal
	default:
		res.Phase = PMS
	}
	return res
}

// dayOf truncates a timestamp to its calendar day in its own location
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
