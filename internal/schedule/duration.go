package schedule

import "strings"

// DurationUnit is a canonical time unit for task durations.
type DurationUnit string

const (
	UnitDay   DurationUnit = "days"
	UnitWeek  DurationUnit = "weeks"
	UnitMonth DurationUnit = "months"
)

// dayMultipliers maps canonical units to calendar days. A month is a fixed
// 30-day approximation, not a calendar month.
var dayMultipliers = map[DurationUnit]float64{
	UnitDay:   1,
	UnitWeek:  7,
	UnitMonth: 30,
}

// unitSpellings normalizes the unit spellings the extraction step produces.
// Transcripts are Spanish, historical notes are mixed, so both families are
// accepted.
var unitSpellings = map[string]DurationUnit{
	"day": UnitDay, "days": UnitDay,
	"dia": UnitDay, "dias": UnitDay, "día": UnitDay, "días": UnitDay,
	"week": UnitWeek, "weeks": UnitWeek,
	"semana": UnitWeek, "semanas": UnitWeek,
	"month": UnitMonth, "months": UnitMonth,
	"mes": UnitMonth, "meses": UnitMonth,
}

// Duration is an immutable amount of schedule time.
type Duration struct {
	Amount float64
	Unit   DurationUnit
}

// NewDuration builds a Duration from a raw amount and unit spelling.
// Returns *UnsupportedUnitError for units outside the accepted set.
func NewDuration(amount float64, unit string) (Duration, error) {
	canonical, ok := unitSpellings[strings.ToLower(strings.TrimSpace(unit))]
	if !ok {
		return Duration{}, &UnsupportedUnitError{Unit: unit}
	}
	return Duration{Amount: amount, Unit: canonical}, nil
}

// Days converts the duration to its canonical day count.
func (d Duration) Days() float64 {
	return d.Amount * dayMultipliers[d.Unit]
}

// DurationDays is a convenience constructor for an already-canonical day count.
func DurationDays(amount float64) Duration {
	return Duration{Amount: amount, Unit: UnitDay}
}
