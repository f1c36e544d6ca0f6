package echoapi

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hcmut-hub/tkb/core/catalog"
	"github.com/hcmut-hub/tkb/core/schedule"
)

// query param names shared by the schedule endpoints
var (
	searchParam   = "q"
	courseParam   = "course"
	campusParam   = "campus"
	lecturerParam = "lecturer"
	byDateParam   = "byDate"
	dateParam     = "date"
	monthParam    = "month"
	yearParam     = "year"
)

// SelectionQuery is the per-request override of the stored filter state:
// any param present replaces the stored value for this request only.
type SelectionQuery struct {
	Filter catalog.QueryFilter
}

func (sq *SelectionQuery) Bind(ctx echo.Context, stored schedule.Filters) {
	sq.Filter = stored.QueryFilter()

	params := ctx.QueryParams()
	if v, ok := params[searchParam]; ok && len(v) > 0 {
		sq.Filter.Search = v[0]
	}
	if v, ok := params[courseParam]; ok && len(v) > 0 {
		sq.Filter.CourseID = v[0]
	}
	if v, ok := params[campusParam]; ok && len(v) > 0 {
		sq.Filter.Campus = v[0]
	}
	if v, ok := params[lecturerParam]; ok && len(v) > 0 {
		sq.Filter.Lecturer = v[0]
	}
	if v, ok := params[byDateParam]; ok && len(v) > 0 {
		sq.Filter.ByDate, _ = strconv.ParseBool(v[0])
	}
	if v, ok := params[dateParam]; ok && len(v) > 0 {
		// a bad date degrades to "none selected", per the tolerance policy
		if date, err := time.ParseInLocation("2006-01-02", v[0], time.Local); err == nil {
			sq.Filter.Date = date
			sq.Filter.ByDate = true
		} else {
			sq.Filter.Date = time.Time{}
			sq.Filter.ByDate = false
		}
	}
}

// Responses

type CourseResponse struct {
	ID         string   `json:"id"`
	CourseCode string   `json:"course_code"`
	CourseName string   `json:"course_name"`
	Lecturers  []string `json:"lecturers,omitempty"`
}

func newCourseResponse(c *catalog.Course) CourseResponse {
	return CourseResponse{
		ID:         c.ID,
		CourseCode: c.CourseCode,
		CourseName: c.CourseName,
		Lecturers:  c.Lecturers(),
	}
}

type ItemResponse struct {
	CourseID   string `json:"course_id"`
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Group      string `json:"group"`
	Lecturer   string `json:"lecturer,omitempty"`
	BTLecturer string `json:"bt_lecturer,omitempty"`
	Weekday    string `json:"weekday"`
	Thu        string `json:"thu,omitempty"`
	Tiet       string `json:"tiet,omitempty"`
	TimeRange  string `json:"time_range,omitempty"`
	Phong      string `json:"phong,omitempty"`
	CS         string `json:"cs,omitempty"`
	TuanHoc    string `json:"tuan_hoc,omitempty"`
}

func newItemResponse(item catalog.Item) ItemResponse {
	return ItemResponse{
		CourseID:   item.Course.ID,
		CourseCode: item.Course.CourseCode,
		CourseName: item.Course.CourseName,
		Group:      item.Group.LTGroup,
		Lecturer:   item.Group.Lecturer,
		BTLecturer: item.Group.BTLecturer,
		Weekday:    catalog.ParseWeekday(item.Schedule.Thu).Label(),
		Thu:        item.Schedule.Thu,
		Tiet:       item.Schedule.Tiet,
		TimeRange:  catalog.FormatPeriodRange(item.Schedule.Tiet),
		Phong:      item.Schedule.Phong,
		CS:         item.Schedule.CS,
		TuanHoc:    item.Schedule.TuanHoc,
	}
}

func newItemResponses(items []catalog.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, newItemResponse(item))
	}
	return resp
}

type WeekdayGroupResponse struct {
	Label string         `json:"label"`
	Items []ItemResponse `json:"items"`
}

type DayCellResponse struct {
	Date          string `json:"date,omitempty"` // "2006-01-02"; empty on pad cells
	Pad           bool   `json:"pad,omitempty"`
	HasOccurrence bool   `json:"has_occurrence"`
}

func newDayCellResponses(cells []catalog.DayCell) []DayCellResponse {
	resp := make([]DayCellResponse, 0, len(cells))
	for _, cell := range cells {
		dc := DayCellResponse{Pad: cell.Pad, HasOccurrence: cell.HasOccurrence}
		if !cell.Pad {
			dc.Date = cell.Date.Format("2006-01-02")
		}
		resp = append(resp, dc)
	}
	return resp
}

// Requests

type ImportRequest struct {
	Entries []schedule.PersonalEntry `json:"entries"`
}
