// Package schedule implements the session-scoped filter/selection state and
// the user-imported personal schedule. State survives reloads through a
// StateRepository (the local-storage analog); malformed persisted state is
// recovered by falling back to defaults, never surfaced as an error.
package schedule

import (
	"time"

	"github.com/hcmut-hub/tkb/core"
	"github.com/hcmut-hub/tkb/core/catalog"
)

type (
	// Filters is the persisted filter/selection state, one JSON blob.
	// Field names match the stored shape.
	Filters struct {
		SearchQ          string `json:"searchQ"`
		ActiveCampus     string `json:"activeCampus"`
		SelectedLecturer string `json:"selectedLecturer"`
		SelectedCourse   string `json:"selectedCourse,omitempty"` // course id; "" = none
		FilterByDate     bool   `json:"filterByDate"`
		SelectedDate     string `json:"selectedDate,omitempty"` // ISO-8601; "" = none
		ViewMonth        int    `json:"viewMonth"`               // 1..12
		ViewYear         int    `json:"viewYear"`
	}

	// PersonalEntry is one imported personal timetable line. Imports are
	// the one place malformed user input is a hard validation failure.
	PersonalEntry struct {
		ID               string `json:"id"`
		Semester         string `json:"semester" validate:"required"`
		CourseCode       string `json:"courseCode" validate:"required,course_code"`
		CourseName       string `json:"courseName" validate:"required"`
		Credits          int    `json:"credits" validate:"min=0"`
		PracticalCredits int    `json:"practicalCredits" validate:"min=0"`
		Group            string `json:"group" validate:"required"`
		Day              string `json:"day" validate:"omitempty,weekday_label"`
		TimePeriod       string `json:"timePeriod"`
		TimeRange        string `json:"timeRange"`
		Room             string `json:"room"`
		Campus           string `json:"campus"`
		Weeks            string `json:"weeks"`
	}
)

// DefaultFilters is the state a fresh session starts from: everything off,
// calendar showing the current month.
func DefaultFilters(now time.Time) Filters {
	return Filters{
		ActiveCampus:     catalog.CampusAll,
		SelectedLecturer: catalog.LecturerAll,
		ViewMonth:        int(now.Month()),
		ViewYear:         now.Year(),
	}
}

// SelectedDateTime parses the persisted selected date. A missing or
// malformed value means "none selected"; bad data never propagates.
func (f Filters) SelectedDateTime() (time.Time, bool) {
	if f.SelectedDate == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, f.SelectedDate, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// QueryFilter converts the persisted state into the in-memory filter the
// query engine matches against.
func (f Filters) QueryFilter() catalog.QueryFilter {
	qf := catalog.QueryFilter{
		Search:   core.CleanString(f.SearchQ),
		CourseID: f.SelectedCourse,
		Campus:   f.ActiveCampus,
		Lecturer: f.SelectedLecturer,
		ByDate:   f.FilterByDate,
	}
	if date, ok := f.SelectedDateTime(); ok {
		qf.Date = date
	}
	return qf
}
