// Package catalog implements the course catalog, the schedule occurrence
// engine and the query/search logic on top of it.
//
// The catalog originates from semi-structured administrative exports; every
// parser in this package is maximally tolerant of messy source data.
// Unparsable fields degrade to "unknown" or "no occurrences", never to
// errors.
package catalog

import (
	"strings"

	"github.com/hcmut-hub/tkb/core"
)

// Sentinel filter values. "all" is never a real campus or lecturer value.
const (
	CampusAll   = "all"
	LecturerAll = "all"
)

type (
	// Schedule is one weekly timetable line for a Group. All fields are
	// free text straight from the export and may be absent or placeholders.
	Schedule struct {
		Thu     string `json:"thu,omitempty"`      // weekday label ("Thứ 2".."Thứ 7", "CN", "chưa xác định")
		Tiet    string `json:"tiet,omitempty"`     // period list ("6 - 11 - 12")
		Phong   string `json:"phong,omitempty"`    // room label
		CS      string `json:"cs,omitempty"`       // campus identifier ("1", "2")
		TuanHoc string `json:"tuan_hoc,omitempty"` // weekly activity string, one char per week
	}

	// Group is one teaching section of a Course.
	Group struct {
		LTGroup    string     `json:"lt_group"`
		Lecturer   string     `json:"lecturer,omitempty"`
		BTLecturer string     `json:"bt_lecturer,omitempty"`
		Schedules  []Schedule `json:"schedules,omitempty"`
	}

	// Course is a catalog subject. Immutable for the session: loaded once,
	// never mutated.
	Course struct {
		ID         string  `json:"id"`
		CourseCode string  `json:"course_code"`
		CourseName string  `json:"course_name"`
		Groups     []Group `json:"list_group,omitempty"`
	}

	Catalog []Course

	// Item is one matched (course, group, schedule) triple. The pointers
	// reference the immutable catalog; callers must not mutate through them.
	Item struct {
		Course   *Course   `json:"course"`
		Group    *Group    `json:"group"`
		Schedule *Schedule `json:"schedule"`
	}
)

func (cat Catalog) ByID(id string) *Course {
	for i := range cat {
		if cat[i].ID == id {
			return &cat[i]
		}
	}
	return nil
}

func (cat Catalog) ByCode(code string) *Course {
	code = core.CleanString(code, true /* lower */)
	for i := range cat {
		if core.CleanString(cat[i].CourseCode, true) == code {
			return &cat[i]
		}
	}
	return nil
}

// Lecturers returns the distinct cleaned lecturer names of a course, lead
// and practical-session instructors alike, in group order.
func (c *Course) Lecturers() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, len(c.Groups))
	for _, g := range c.Groups {
		for _, name := range []string{g.Lecturer, g.BTLecturer} {
			name = core.CollapseWhitespace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[strings.ToLower(name)]; ok {
				continue
			}
			seen[strings.ToLower(name)] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// TeachesGroup reports whether `name` matches the group's lead or
// practical-session instructor (case/whitespace-normalized exact match).
func (g *Group) TeachesGroup(name string) bool {
	want := strings.ToLower(core.CollapseWhitespace(name))
	if want == "" {
		return false
	}
	return strings.ToLower(core.CollapseWhitespace(g.Lecturer)) == want ||
		strings.ToLower(core.CollapseWhitespace(g.BTLecturer)) == want
}
