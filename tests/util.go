package testutil

import (
	"fmt"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/hcmut-hub/tkb/core"
	"github.com/hcmut-hub/tkb/core/catalog"
	"github.com/hcmut-hub/tkb/core/schedule"
)

// BaseDate is the semester anchor used throughout the tests:
// Monday 2025-08-25.
var BaseDate = time.Date(2025, 8, 25, 0, 0, 0, 0, time.Local)

func NewConfig() *core.Config {
	return &core.Config{
		AppName:  "TKB",
		Env:      "TEST",
		TestMode: true,
		Build:    "test",
		Semester: core.SemesterConfig{BaseDate: BaseDate},
		Search: core.SearchConfig{
			Threshold:      0.45,
			CodeWeight:     3,
			NameWeight:     2,
			LecturerWeight: 1,
			Limit:          200,
			Debounce:       250 * time.Millisecond,
		},
	}
}

func NewValidate() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	schedule.InitValidators(validate, translator)
	return validate, translator
}

// SampleCatalog builds a small synthetic catalog covering the interesting
// cases: multiple campuses within one course, a Sunday schedule, an
// undetermined weekday and a shared lecturer across courses.
func SampleCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			ID:         "c-co2003",
			CourseCode: "CO2003",
			CourseName: "Cấu trúc dữ liệu và giải thuật",
			Groups: []catalog.Group{
				{
					LTGroup:    "L01",
					Lecturer:   "Nguyễn Văn An",
					BTLecturer: "Trần Thị Bình",
					Schedules: []catalog.Schedule{
						{Thu: "Thứ 2", Tiet: "6 - 11 - 12", Phong: "H1-101", CS: "1", TuanHoc: "1111100"},
						{Thu: "Thứ 2", Tiet: "2 - 3", Phong: "H2-201", CS: "2", TuanHoc: "11111"},
					},
				},
				{
					LTGroup:  "L02",
					Lecturer: "Lê Minh Châu",
					Schedules: []catalog.Schedule{
						{Thu: "CN", Tiet: "2 - 3", Phong: "H6-202", CS: "1", TuanHoc: "1"},
					},
				},
			},
		},
		{
			ID:         "c-co2004",
			CourseCode: "CO2004",
			CourseName: "Lập trình hướng đối tượng",
			Groups: []catalog.Group{
				{
					LTGroup:  "L01",
					Lecturer: "Nguyễn Văn An",
					Schedules: []catalog.Schedule{
						{Thu: "Thứ 4", Tiet: "4 - 5", Phong: "B4-303", CS: "1", TuanHoc: "111"},
					},
				},
			},
		},
		{
			ID:         "c-mt1003",
			CourseCode: "MT1003",
			CourseName: "Giải tích 1",
			Groups: []catalog.Group{
				{
					LTGroup:  "L01",
					Lecturer: "Phạm Quốc Dũng",
					Schedules: []catalog.Schedule{
						{Thu: "chưa xác định", Phong: "------", CS: "1", TuanHoc: "1111"},
					},
				},
			},
		},
		{
			ID:         "c-ph1003",
			CourseCode: "PH1003",
			CourseName: "Vật lý đại cương A1",
			Groups: []catalog.Group{
				{
					LTGroup: "L01",
					Schedules: []catalog.Schedule{
						{Thu: "Thứ 7", Tiet: "7 - 8", Phong: "H3-105", CS: "2", TuanHoc: "0101"},
					},
				},
			},
		},
	}
}

// Logger is a no-op core.Logger for tests; Fatal panics so a test fails
// loudly instead of exiting the process.
type Logger struct{}

var _ core.Logger = (*Logger)(nil)

func NewLogger() *Logger { return &Logger{} }

func (Logger) Debug(msg string, args ...interface{}) {}
func (Logger) Info(msg string, args ...interface{})  {}
func (Logger) Warn(msg string, args ...interface{})  {}
func (Logger) Error(msg string, args ...interface{}) {}
func (Logger) Fatal(msg string, args ...interface{}) {
	panic(fmt.Sprintf("fatal: %s %v", msg, args))
}
