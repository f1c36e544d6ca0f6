package catalog

import (
	"time"
)

type (
	// QueryFilter is the in-memory filter/selection state the engine
	// matches against. Zero values mean "no filter" except Campus and
	// Lecturer, whose no-filter sentinel is "all".
	QueryFilter struct {
		Search   string
		CourseID string // "" = no course selected
		Campus   string
		Lecturer string
		ByDate   bool
		Date     time.Time // zero = none selected
	}

	// WeekdayGroup is one display bucket of the grouped result view.
	WeekdayGroup struct {
		Weekday Weekday `json:"-"`
		Label   string  `json:"label"`
		Items   []Item  `json:"items"`
	}

	// Engine answers interactive schedule queries over an immutable
	// catalog, its prebuilt occurrence cache and its search index.
	Engine struct {
		cat   Catalog
		cache *OccurrenceCache
		index *SearchIndex
	}
)

func NewEngine(cat Catalog, cache *OccurrenceCache, index *SearchIndex) *Engine {
	return &Engine{cat: cat, cache: cache, index: index}
}

// Query produces the flat ordered list of matching (course, group, schedule)
// items. With a selected course, its groups are filtered by lecturer (when
// one is selected), campus and date. Without one, the free-text search
// resolves the candidate course set and only campus/date apply; lecturer
// identity is section-scoped and meaningless across courses. An empty
// candidate set at any stage is a normal "no results" outcome.
func (e *Engine) Query(f QueryFilter) []Item {
	var items []Item

	if f.CourseID != "" {
		c := e.cat.ByID(f.CourseID)
		if c == nil {
			return nil
		}
		for gi := range c.Groups {
			g := &c.Groups[gi]
			if f.Lecturer != "" && f.Lecturer != LecturerAll && !g.TeachesGroup(f.Lecturer) {
				continue
			}
			items = e.appendMatches(items, c, g, f)
		}
		return items
	}

	for _, c := range e.index.Search(f.Search) {
		for gi := range c.Groups {
			items = e.appendMatches(items, c, &c.Groups[gi], f)
		}
	}
	return items
}

func (e *Engine) appendMatches(items []Item, c *Course, g *Group, f QueryFilter) []Item {
	for si := range g.Schedules {
		s := &g.Schedules[si]
		if f.Campus != "" && f.Campus != CampusAll && s.CS != f.Campus {
			continue
		}
		if f.ByDate && !f.Date.IsZero() && !e.cache.OnDate(c, g, s, f.Date) {
			continue
		}
		items = append(items, Item{Course: c, Group: g, Schedule: s})
	}
	return items
}

// canonical bucket order: the academic week starts Monday, unknown last
var bucketOrder = [...]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday, WeekdayUnknown}

// QueryGrouped buckets the flat result list by weekday label for the
// no-date-filter display mode. Within a bucket items keep catalog iteration
// order; empty buckets are omitted.
func (e *Engine) QueryGrouped(f QueryFilter) []WeekdayGroup {
	buckets := make(map[Weekday][]Item, len(bucketOrder))
	for _, item := range e.Query(f) {
		day := ParseWeekday(item.Schedule.Thu)
		if !day.Known() {
			day = WeekdayUnknown
		}
		buckets[day] = append(buckets[day], item)
	}

	groups := make([]WeekdayGroup, 0, len(buckets))
	for _, day := range bucketOrder {
		if items := buckets[day]; len(items) > 0 {
			groups = append(groups, WeekdayGroup{Weekday: day, Label: day.Label(), Items: items})
		}
	}
	return groups
}

// HasOccurrenceOn reports whether any item matching the selection (the date
// filter itself aside) meets on the given day. Drives the calendar-day
// indicators.
func (e *Engine) HasOccurrenceOn(f QueryFilter, date time.Time) bool {
	f.ByDate = false
	f.Date = time.Time{}
	for _, item := range e.Query(f) {
		if e.cache.OnDate(item.Course, item.Group, item.Schedule, date) {
			return true
		}
	}
	return false
}
