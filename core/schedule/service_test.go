package schedule

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/hcmut-hub/tkb/core"
	"github.com/hcmut-hub/tkb/core/catalog"
)

// fakeRepo is an in-memory StateRepository with injectable failures.
type fakeRepo struct {
	filters  *Filters
	personal []PersonalEntry

	failGetFilters  error
	failGetPersonal error
}

var _ StateRepository = (*fakeRepo)(nil)

func (r *fakeRepo) GetFilters() (Filters, bool, error) {
	if r.failGetFilters != nil {
		return Filters{}, false, r.failGetFilters
	}
	if r.filters == nil {
		return Filters{}, false, nil
	}
	return *r.filters, true, nil
}

func (r *fakeRepo) SaveFilters(f Filters) error { r.filters = &f; return nil }
func (r *fakeRepo) DeleteFilters() error        { r.filters = nil; return nil }

func (r *fakeRepo) GetPersonal() ([]PersonalEntry, error) {
	if r.failGetPersonal != nil {
		return nil, r.failGetPersonal
	}
	return r.personal, nil
}

func (r *fakeRepo) SavePersonal(entries []PersonalEntry) error { r.personal = entries; return nil }
func (r *fakeRepo) DeletePersonal() error                      { r.personal = nil; return nil }

type fakeNotifSvc struct {
	mu   sync.Mutex
	sent []*core.Notification
}

func (svc *fakeNotifSvc) SendNotifications(notifs ...*core.Notification) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.sent = append(svc.sent, notifs...)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestValidate() *validator.Validate {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator)
	return validate
}

func setup() (*Service, *fakeRepo, *fakeNotifSvc) {
	repo := &fakeRepo{}
	notifSvc := &fakeNotifSvc{}
	svc := NewService(repo, newTestValidate(), notifSvc, nopLogger{})
	return svc, repo, notifSvc
}

var testNow = time.Date(2025, 9, 10, 12, 0, 0, 0, time.Local)

func mockNow(t *testing.T) {
	nowFunc = func() time.Time { return testNow }
	t.Cleanup(func() { nowFunc = time.Now })
}

func TestServiceFilters(t *testing.T) {
	mockNow(t)
	svc, repo, _ := setup()

	// nothing stored: defaults for the current month
	f := svc.Filters()
	want := DefaultFilters(testNow)
	if f != want {
		t.Errorf("Filters() = %+v, want %+v", f, want)
	}
	if f.ActiveCampus != catalog.CampusAll || f.SelectedLecturer != catalog.LecturerAll {
		t.Errorf("defaults must use the \"all\" sentinels; got %+v", f)
	}
	if f.ViewMonth != 9 || f.ViewYear != 2025 {
		t.Errorf("defaults must show the current month; got %d/%d", f.ViewMonth, f.ViewYear)
	}

	// a broken store falls open to defaults
	repo.failGetFilters = errors.New("boom")
	if got := svc.Filters(); got != want {
		t.Errorf("Filters() with broken store = %+v, want defaults", got)
	}
}

func TestServiceSetFiltersSanitizes(t *testing.T) {
	mockNow(t)
	svc, _, _ := setup()

	f, err := svc.SetFilters(Filters{
		SearchQ:      "giai tich",
		ViewMonth:    42, // out of range
		FilterByDate: true,
		SelectedDate: "not-a-date",
	})
	if err != nil {
		t.Fatalf("SetFilters() error = %v", err)
	}
	if f.ActiveCampus != catalog.CampusAll || f.SelectedLecturer != catalog.LecturerAll {
		t.Errorf("empty campus/lecturer must be repaired; got %+v", f)
	}
	if f.ViewMonth != 9 || f.ViewYear != 2025 {
		t.Errorf("out-of-range month must reset to current; got %d/%d", f.ViewMonth, f.ViewYear)
	}
	if f.SelectedDate != "" || f.FilterByDate {
		t.Errorf("a malformed date must clear the date selection; got %+v", f)
	}
	if f.SearchQ != "giai tich" {
		t.Errorf("SearchQ = %q, want it preserved", f.SearchQ)
	}

	// a stored state comes back as saved
	if got := svc.Filters(); got != f {
		t.Errorf("Filters() = %+v, want %+v", got, f)
	}
}

func TestServiceClearFilters(t *testing.T) {
	mockNow(t)
	svc, _, _ := setup()

	if _, err := svc.SetFilters(Filters{
		SearchQ:          "co2003",
		ActiveCampus:     "2",
		SelectedLecturer: "Nguyễn Văn An",
		SelectedCourse:   "c-co2003",
		ViewMonth:        12,
		ViewYear:         2026,
	}); err != nil {
		t.Fatalf("SetFilters() error = %v", err)
	}

	f, err := svc.ClearFilters()
	if err != nil {
		t.Fatalf("ClearFilters() error = %v", err)
	}
	if f.SearchQ != "" || f.SelectedCourse != "" ||
		f.ActiveCampus != catalog.CampusAll || f.SelectedLecturer != catalog.LecturerAll {
		t.Errorf("ClearFilters() must reset the selection; got %+v", f)
	}
	// the displayed calendar month survives a clear
	if f.ViewMonth != 12 || f.ViewYear != 2026 {
		t.Errorf("ClearFilters() must keep the view month; got %d/%d", f.ViewMonth, f.ViewYear)
	}
}

func TestServiceReset(t *testing.T) {
	mockNow(t)
	svc, repo, _ := setup()

	if _, err := svc.SetFilters(Filters{ViewMonth: 12, ViewYear: 2026}); err != nil {
		t.Fatalf("SetFilters() error = %v", err)
	}
	f, err := svc.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if f != DefaultFilters(testNow) {
		t.Errorf("Reset() = %+v, want fresh defaults", f)
	}
	if repo.filters != nil {
		t.Error("Reset() must remove the stored state")
	}
}

func validEntry() PersonalEntry {
	return PersonalEntry{
		Semester:   "20251",
		CourseCode: "CO2003",
		CourseName: "Cấu trúc dữ liệu và giải thuật",
		Credits:    4,
		Group:      "L01",
		Day:        "Thứ 2",
		TimePeriod: "2 - 3",
		Room:       "H1-101",
		Campus:     "1",
		Weeks:      "11111",
	}
}

func TestServiceImportPersonal(t *testing.T) {
	mockNow(t)
	svc, repo, notifSvc := setup()

	entries, err := svc.ImportPersonal([]PersonalEntry{validEntry()})
	if err != nil {
		t.Fatalf("ImportPersonal() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ImportPersonal() returned %d entries, want 1", len(entries))
	}
	if entries[0].ID == "" {
		t.Error("imported entries must get a generated id")
	}
	if entries[0].TimeRange != "07:00 - 09:00" {
		t.Errorf("TimeRange = %q, want it derived from the period list", entries[0].TimeRange)
	}
	if len(repo.personal) != 1 {
		t.Errorf("stored %d entries, want 1", len(repo.personal))
	}
	if len(notifSvc.sent) != 1 || notifSvc.sent[0].Event != "personal_schedule.imported" {
		t.Errorf("notifications sent = %+v, want one personal_schedule.imported", notifSvc.sent)
	}

	// a second import appends
	if _, err := svc.ImportPersonal([]PersonalEntry{validEntry()}); err != nil {
		t.Fatalf("ImportPersonal() error = %v", err)
	}
	if len(repo.personal) != 2 {
		t.Errorf("stored %d entries after second import, want 2", len(repo.personal))
	}
}

func TestServiceImportPersonalInvalid(t *testing.T) {
	mockNow(t)
	svc, repo, _ := setup()

	noCode := validEntry()
	noCode.CourseCode = ""
	badCode := validEntry()
	badCode.CourseCode = "CO 2003"
	badDay := validEntry()
	badDay.Day = "someday"

	tests := []struct {
		name    string
		entries []PersonalEntry
	}{
		{name: "no entries", entries: nil},
		{name: "missing course code", entries: []PersonalEntry{noCode}},
		{name: "non-alphanumeric course code", entries: []PersonalEntry{badCode}},
		{name: "unknown weekday label", entries: []PersonalEntry{badDay}},
		{name: "one bad entry rejects the batch", entries: []PersonalEntry{validEntry(), noCode}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.ImportPersonal(tt.entries); err == nil {
				t.Error("ImportPersonal() error = nil, want a validation error")
			}
		})
	}
	if len(repo.personal) != 0 {
		t.Errorf("invalid imports must store nothing; stored %d", len(repo.personal))
	}
}

func TestServicePersonal(t *testing.T) {
	mockNow(t)
	svc, repo, _ := setup()

	entries, err := svc.Personal()
	if err != nil {
		t.Fatalf("Personal() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Personal() = %v, want empty", entries)
	}

	if _, err := svc.ImportPersonal([]PersonalEntry{validEntry()}); err != nil {
		t.Fatalf("ImportPersonal() error = %v", err)
	}
	if entries, _ = svc.Personal(); len(entries) != 1 {
		t.Errorf("Personal() = %d entries, want 1", len(entries))
	}

	if err := svc.ClearPersonal(); err != nil {
		t.Fatalf("ClearPersonal() error = %v", err)
	}
	if len(repo.personal) != 0 {
		t.Error("ClearPersonal() must remove the stored entries")
	}
}
