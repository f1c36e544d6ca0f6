package catalog

import (
	"fmt"
	"time"

	"github.com/hcmut-hub/tkb/core"
)

type (
	// Service owns an immutable catalog together with its derived,
	// load-time artifacts: the occurrence cache and the search index.
	// It is the single entry point the presentation layer talks to.
	Service struct {
		cat    Catalog
		cache  *OccurrenceCache
		index  *SearchIndex
		engine *Engine
		logger core.Logger
	}

	// DayCell is one cell of the calendar month grid. Pad cells align the
	// first day of the month to its weekday column; Sunday-first grid.
	DayCell struct {
		Date          time.Time
		Pad           bool
		HasOccurrence bool
	}
)

// NewService builds the occurrence cache and search index eagerly over the
// whole catalog. Both are read-only afterwards; the service is safe for
// concurrent readers.
func NewService(conf *core.Config, cat Catalog, logger core.Logger) *Service {
	cache := NewOccurrenceCache(conf.Semester.BaseDate, cat)
	index := NewSearchIndex(conf.Search, cat)
	svc := &Service{
		cat:    cat,
		cache:  cache,
		index:  index,
		engine: NewEngine(cat, cache, index),
		logger: logger,
	}
	logger.Info(fmt.Sprintf(
		"catalog ready: %d courses, %d schedule identities cached (base %s)",
		len(cat), cache.Len(), cache.BaseDate().Format("2006-01-02"),
	))
	return svc
}

func (svc *Service) Catalog() Catalog { return svc.cat }

func (svc *Service) Occurrences() *OccurrenceCache { return svc.cache }

// Search resolves a free-text query into a ranked candidate course set.
func (svc *Service) Search(q string) []*Course {
	return svc.index.Search(q)
}

// Query returns the flat filtered item list for the current selection.
func (svc *Service) Query(f QueryFilter) []Item {
	return svc.engine.Query(f)
}

// QueryGrouped returns the weekday-bucketed item list, Monday first,
// unknown last.
func (svc *Service) QueryGrouped(f QueryFilter) []WeekdayGroup {
	return svc.engine.QueryGrouped(f)
}

// HasOccurrenceOn reports whether the current selection meets on a day.
func (svc *Service) HasOccurrenceOn(f QueryFilter, date time.Time) bool {
	return svc.engine.HasOccurrenceOn(f, date)
}

// MonthGrid lays out a calendar month as display cells, padded so the first
// row starts on Sunday, each real day carrying the occurrence indicator for
// the current selection.
func (svc *Service) MonthGrid(f QueryFilter, year int, month time.Month) []DayCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	startDay := int(first.Weekday()) // Sunday = 0
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// resolve the selection once; the per-day check is then a cache scan
	f.ByDate = false
	f.Date = time.Time{}
	items := svc.engine.Query(f)
	hasOn := func(date time.Time) bool {
		for _, item := range items {
			if svc.cache.OnDate(item.Course, item.Group, item.Schedule, date) {
				return true
			}
		}
		return false
	}

	cells := make([]DayCell, 0, startDay+daysInMonth)
	for i := 0; i < startDay; i++ {
		cells = append(cells, DayCell{Pad: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.Local)
		cells = append(cells, DayCell{Date: date, HasOccurrence: hasOn(date)})
	}
	return cells
}
