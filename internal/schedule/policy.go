package schedule

import (
	"strings"
	"time"
)

// Shift policies assignable to an employee.
const (
	PolicyWeekday9to5       = "WEEKDAY_9TO5"
	PolicyRotating24On96Off = "ROTATING_24_ON_96_OFF"
)

// Shift types materialized into schedule entries.
const (
	ShiftOnDuty      = "ON_DUTY"
	ShiftOff         = "OFF"
	ShiftRotating24h = "ROTATING_24H"
)

// rotationCycleDays is the 24h-on / 96h-off cycle length: one duty day
// followed by four days off.
const rotationCycleDays = 5

// NormalizePolicy maps a stored policy value, including the legacy
// spellings still present in imported records, onto a canonical policy.
// The second return is false for values no policy can be derived from.
func NormalizePolicy(raw string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "SEG_SEX", "DIURNO", "DIARIO", PolicyWeekday9to5:
		return PolicyWeekday9to5, true
	case "PLANTONISTA_24_96", PolicyRotating24On96Off:
		return PolicyRotating24On96Off, true
	default:
		return "", false
	}
}

// NormalizeShiftType accepts canonical and legacy shift type spellings.
func NormalizeShiftType(raw string) (string, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case ShiftOnDuty, "EXPEDIENTE":
		return ShiftOnDuty, true
	case ShiftOff, "FOLGA":
		return ShiftOff, true
	case ShiftRotating24h, "PLANTAO_24H":
		return ShiftRotating24h, true
	default:
		return "", false
	}
}

// DayLabel is the short label rendered in a schedule grid cell.
func DayLabel(shiftType string) string {
	switch shiftType {
	case ShiftOnDuty:
		return "EXP"
	case ShiftOff:
		return "F"
	case ShiftRotating24h:
		return "24H"
	default:
		return "-"
	}
}

// Window returns the canonical start/end timestamps for a shift type on
// the given calendar day. The OFF window ends at 23:59 rather than the
// next midnight; the grid renderer depends on that exact minute, so it is
// kept as-is.
func Window(shiftType string, day time.Time) (time.Time, time.Time) {
	y, m, d := day.Date()
	loc := day.Location()

	switch shiftType {
	case ShiftOnDuty:
		return time.Date(y, m, d, 8, 0, 0, 0, loc),
			time.Date(y, m, d, 17, 0, 0, 0, loc)
	case ShiftRotating24h:
		start := time.Date(y, m, d, 7, 0, 0, 0, loc)
		return start, start.Add(24 * time.Hour)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc),
			time.Date(y, m, d, 23, 59, 0, 0, loc)
	}
}

// EvaluateDay maps one calendar day to a shift assignment under the given
// policy. ok is false when the combination produces no entry at all: an
// unrecognized policy, or a rotating policy with no anchor date.
func EvaluateDay(policy string, anchor *time.Time, day time.Time) (shiftType string, start, end time.Time, ok bool) {
	normalized, known := NormalizePolicy(policy)
	if !known {
		return "", time.Time{}, time.Time{}, false
	}

	switch normalized {
	case PolicyWeekday9to5:
		wd := day.Weekday()
		if wd >= time.Monday && wd <= time.Friday {
			start, end = Window(ShiftOnDuty, day)
			return ShiftOnDuty, start, end, true
		}
		start, end = Window(ShiftOff, day)
		return ShiftOff, start, end, true

	case PolicyRotating24On96Off:
		if anchor == nil {
			return "", time.Time{}, time.Time{}, false
		}
		delta := daysBetween(*anchor, day)
		if delta >= 0 && delta%rotationCycleDays == 0 {
			start, end = Window(ShiftRotating24h, day)
			return ShiftRotating24h, start, end, true
		}
		start, end = Window(ShiftOff, day)
		return ShiftOff, start, end, true
	}

	return "", time.Time{}, time.Time{}, false
}

// daysBetween counts whole calendar days from a to b. Both dates are
// re-anchored to UTC midnights first so DST transitions cannot skew the
// division.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// DaysInMonth leans on time.Date normalization (day zero of the next
// month) instead of hand-rolled month-length tables.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
