package catalog

import "time"

// ScheduleKey is the composite identity of a schedule's occurrence set.
// Two schedule records with equal keys meet on identical dates even when
// they are distinct in-memory objects, so they share one cache entry.
// Room and campus are deliberately excluded: occurrences depend only on
// the weekday and the activity string.
type ScheduleKey struct {
	CourseID string
	Group    string
	Thu      string
	Tiet     string
	TuanHoc  string
}

func KeyFor(c *Course, g *Group, s *Schedule) ScheduleKey {
	return ScheduleKey{
		CourseID: c.ID,
		Group:    g.LTGroup,
		Thu:      s.Thu,
		Tiet:     s.Tiet,
		TuanHoc:  s.TuanHoc,
	}
}

// Midnight normalizes a timestamp to local midnight so occurrence dates
// compare by calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// OccurrenceCache holds the expanded occurrence dates of every schedule in
// a catalog, built eagerly at load time. Read-only after construction; the
// trade is upfront computation for O(1) lookups during interactive
// filtering. Rebuilt only on catalog reload or a semester base change.
type OccurrenceCache struct {
	base time.Time
	occ  map[ScheduleKey][]time.Time
}

// NewOccurrenceCache expands every (course, group, schedule) triple in the
// catalog against the semester base date (the Monday of week 1).
func NewOccurrenceCache(base time.Time, cat Catalog) *OccurrenceCache {
	cache := &OccurrenceCache{
		base: Midnight(base),
		occ:  make(map[ScheduleKey][]time.Time),
	}
	for ci := range cat {
		c := &cat[ci]
		for gi := range c.Groups {
			g := &c.Groups[gi]
			for si := range g.Schedules {
				s := &g.Schedules[si]
				key := KeyFor(c, g, s)
				if _, ok := cache.occ[key]; ok {
					continue
				}
				cache.occ[key] = expand(cache.base, s)
			}
		}
	}
	return cache
}

// expand derives the concrete meeting dates of one schedule. An unparsable
// weekday or an empty activity string degrades to no occurrences; no
// concrete dates can be derived for an unknown-weekday schedule.
func expand(base time.Time, s *Schedule) []time.Time {
	thu := ParseWeekday(s.Thu)
	if !thu.Known() || s.TuanHoc == "" {
		return nil
	}
	offset := thu.OffsetFromMonday()
	weeks := ActiveWeeks(s.TuanHoc)
	dates := make([]time.Time, 0, len(weeks))
	for _, week := range weeks {
		dates = append(dates, base.AddDate(0, 0, 7*week+offset))
	}
	return dates
}

// BaseDate returns the semester base Monday the cache was built against.
func (cache *OccurrenceCache) BaseDate() time.Time { return cache.base }

// Dates returns the ordered concrete meeting dates of a schedule, earliest
// first. The returned slice is the cache entry itself; callers must not
// mutate it. Unknown triples (never seen at build time) expand to nothing.
func (cache *OccurrenceCache) Dates(c *Course, g *Group, s *Schedule) []time.Time {
	return cache.occ[KeyFor(c, g, s)]
}

// OnDate reports whether the schedule meets on the given calendar day.
func (cache *OccurrenceCache) OnDate(c *Course, g *Group, s *Schedule, date time.Time) bool {
	target := Midnight(date)
	for _, d := range cache.occ[KeyFor(c, g, s)] {
		if d.Equal(target) {
			return true
		}
	}
	return false
}

// Len returns the number of distinct schedule identities cached.
func (cache *OccurrenceCache) Len() int { return len(cache.occ) }
