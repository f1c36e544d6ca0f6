package catalog

// The weekly-activity string ("tuần học") is a fixed-width encoding: one
// character per semester week, position index = week offset from the
// semester base Monday. A dash, a zero or a blank marks an off week; any
// other character marks an active one (the export typically uses the week
// number's last digit, but nothing downstream depends on which character).

func activeWeekChar(r rune) bool {
	return r != '-' && r != '0' && r != ' '
}

// ActiveWeeks decodes a weekly-activity string into the 0-based week
// offsets on which the schedule is active, in increasing order. Position
// counts characters, not bytes, so a stray multibyte marker occupies one
// week. An empty or missing string yields no active weeks, not an error.
func ActiveWeeks(tuanHoc string) []int {
	var weeks []int
	week := 0
	for _, r := range tuanHoc {
		if activeWeekChar(r) {
			weeks = append(weeks, week)
		}
		week++
	}
	return weeks
}
