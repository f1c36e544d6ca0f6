package schedule

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/hcmut-hub/tkb/core"
	"github.com/hcmut-hub/tkb/core/catalog"
)

var (
	weekdayLabelTag  = "weekday_label"
	weekdayLabelText = "unrecognized weekday label"
)

// InitValidators registers the package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(weekdayLabelTag, weekdayLabelValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayLabelTag, weekdayLabelText)
}

// weekdayLabelValidation accepts an empty day or any label the weekday
// parser can read. "chưa xác định" parses to unknown and is accepted too:
// an undetermined weekday is legitimate catalog data, so it is legitimate
// import data.
func weekdayLabelValidation(fl validator.FieldLevel) bool {
	s := core.CleanString(fl.Field().String())
	if s == "" {
		return true
	}
	if catalog.ParseWeekday(s).Known() {
		return true
	}
	return core.NormalizeSearchText(s) == "chua xac dinh"
}

// Validate cleans the entry in place and checks it.
func (e *PersonalEntry) Validate(validate *validator.Validate) error {
	e.Semester = core.CleanString(e.Semester)
	e.CourseCode = core.CleanString(e.CourseCode)
	e.CourseName = core.CleanString(e.CourseName)
	e.Group = core.CleanString(e.Group)
	e.Day = core.CleanString(e.Day)
	e.TimePeriod = core.CleanString(e.TimePeriod)
	e.Room = core.CleanString(e.Room)
	e.Campus = core.CleanString(e.Campus)
	e.Weeks = core.CleanString(e.Weeks)

	// derive the display time range when only the period list came in
	if e.TimeRange == "" && e.TimePeriod != "" {
		e.TimeRange = catalog.FormatPeriodRange(e.TimePeriod)
	}

	return validate.Struct(e)
}
