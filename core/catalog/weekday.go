package catalog

import (
	"strings"
	"time"

	"github.com/hcmut-hub/tkb/core"
)

// Weekday is the canonical academic weekday, Monday-first. The academic week
// runs Monday through Sunday, so Sunday is its last day, not the first day of
// the next one. Raw weekday encodings from external data sources are
// converted at the parse boundary and never propagated as bare integers.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// WeekdayUnknown marks a schedule whose weekday the export has not
	// determined yet. A legitimate outcome, not an error: downstream
	// grouping buckets these explicitly instead of dropping them.
	WeekdayUnknown Weekday = -1
)

var weekdayLabels = [...]string{"Thứ 2", "Thứ 3", "Thứ 4", "Thứ 5", "Thứ 6", "Thứ 7", "Chủ nhật"}

// UnknownWeekdayLabel is the display bucket for unparsable weekdays.
const UnknownWeekdayLabel = "Không rõ"

// ParseWeekday maps a free-text weekday label to its canonical Weekday.
// It recognizes "Thứ 2".."Thứ 7", "CN" / "Chủ nhật" variants (with or
// without diacritics) and treats "chưa xác định" and anything else it
// cannot read as WeekdayUnknown.
func ParseWeekday(s string) Weekday {
	t := core.NormalizeSearchText(s)
	if t == "" {
		return WeekdayUnknown
	}
	if strings.Contains(t, "chua") { // "chưa xác định"
		return WeekdayUnknown
	}
	if strings.Contains(t, "cn") || strings.Contains(t, "chu") {
		return Sunday
	}
	for _, r := range t {
		if r >= '2' && r <= '7' {
			return Monday + Weekday(r-'2')
		}
	}
	return WeekdayUnknown
}

func (d Weekday) Known() bool {
	return d >= Monday && d <= Sunday
}

// Label returns the Vietnamese display label for the weekday.
func (d Weekday) Label() string {
	if !d.Known() {
		return UnknownWeekdayLabel
	}
	return weekdayLabels[d]
}

func (d Weekday) String() string { return d.Label() }

// OffsetFromMonday is the number of days after the Monday of the same
// academic week. Sunday yields 6.
func (d Weekday) OffsetFromMonday() int { return int(d) }

// TimeWeekday converts to the stdlib Sunday-first convention.
func (d Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}

// WeekdayOf converts a calendar date to the Monday-first convention.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}
