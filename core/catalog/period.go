package catalog

import (
	"fmt"
	"regexp"
)

// Teaching periods are discrete 60-minute slots; period 1 starts at 06:00.
const (
	periodStartMinutes = 6 * 60
	periodLenMinutes   = 60
)

var digitsRegex = regexp.MustCompile(`\d+`)

// PeriodRange is the contiguous span of teaching periods covered by a
// schedule's period list.
type PeriodRange struct {
	Min int
	Max int
}

// ParsePeriods extracts the period numbers from a free-text period list
// ("6 - 11 - 12") and returns their span. ok is false when the text
// contains no digits; that is a legitimate "no period data" outcome.
func ParsePeriods(tiet string) (pr PeriodRange, ok bool) {
	for _, m := range digitsRegex.FindAllString(tiet, -1) {
		var n int
		fmt.Sscanf(m, "%d", &n)
		if !ok {
			pr.Min, pr.Max = n, n
			ok = true
			continue
		}
		if n < pr.Min {
			pr.Min = n
		}
		if n > pr.Max {
			pr.Max = n
		}
	}
	return pr, ok
}

// StartMinutes is the wall-clock start of the range, in minutes since midnight.
func (pr PeriodRange) StartMinutes() int {
	return periodStartMinutes + (pr.Min-1)*periodLenMinutes
}

// EndMinutes is the wall-clock end of the range, in minutes since midnight.
func (pr PeriodRange) EndMinutes() int {
	return periodStartMinutes + pr.Max*periodLenMinutes
}

// String formats the range as a zero-padded "HH:MM - HH:MM" wall-clock span.
func (pr PeriodRange) String() string {
	start, end := pr.StartMinutes(), pr.EndMinutes()
	return fmt.Sprintf("%02d:%02d - %02d:%02d", start/60, start%60, end/60, end%60)
}

// FormatPeriodRange is the presentation shortcut: period-list text in,
// "HH:MM - HH:MM" out, "" when the text holds no period data.
func FormatPeriodRange(tiet string) string {
	pr, ok := ParsePeriods(tiet)
	if !ok {
		return ""
	}
	return pr.String()
}
