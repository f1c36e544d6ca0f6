package schedule

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hcmut-hub/tkb/core"
)

var nowFunc = time.Now // mockable

type (
	// StateRepository is the local-storage analog: a small per-device blob
	// store for the filter state and the personal schedule. Get reports
	// ok=false when nothing is stored; implementations treat unreadable
	// stored data the same way.
	StateRepository interface {
		GetFilters() (Filters, bool, error)
		SaveFilters(Filters) error
		DeleteFilters() error
		GetPersonal() ([]PersonalEntry, error)
		SavePersonal([]PersonalEntry) error
		DeletePersonal() error
	}

	Service struct {
		repo     StateRepository
		validate *validator.Validate
		notifSvc core.NotificationService
		logger   core.Logger
	}
)

func NewService(repo StateRepository, validate *validator.Validate, notifSvc core.NotificationService, logger core.Logger) *Service {
	return &Service{repo: repo, validate: validate, notifSvc: notifSvc, logger: logger}
}

// Filters returns the persisted state, falling back to defaults when
// nothing usable is stored. Fail-open: a broken store never breaks the UI.
func (svc *Service) Filters() Filters {
	f, ok, err := svc.repo.GetFilters()
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("loading filter state: %v; using defaults", err), err)
		return DefaultFilters(nowFunc())
	}
	if !ok {
		return DefaultFilters(nowFunc())
	}
	return f.sanitized()
}

// SetFilters persists the new state. Called on every state change after
// initial load.
func (svc *Service) SetFilters(f Filters) (Filters, error) {
	f = f.sanitized()
	if err := svc.repo.SaveFilters(f); err != nil {
		return Filters{}, errors.Wrap(err, "saving filter state")
	}
	return f, nil
}

// ClearFilters resets the selection to defaults but keeps the displayed
// calendar month and the stored blob.
func (svc *Service) ClearFilters() (Filters, error) {
	cur := svc.Filters()
	f := DefaultFilters(nowFunc())
	f.ViewMonth = cur.ViewMonth
	f.ViewYear = cur.ViewYear
	return svc.SetFilters(f)
}

// Reset removes the stored state entirely and returns a fresh default.
func (svc *Service) Reset() (Filters, error) {
	if err := svc.repo.DeleteFilters(); err != nil {
		return Filters{}, errors.Wrap(err, "deleting filter state")
	}
	return DefaultFilters(nowFunc()), nil
}

// sanitized repairs out-of-range persisted values instead of rejecting them.
func (f Filters) sanitized() Filters {
	if f.ActiveCampus == "" {
		f.ActiveCampus = DefaultFilters(nowFunc()).ActiveCampus
	}
	if f.SelectedLecturer == "" {
		f.SelectedLecturer = DefaultFilters(nowFunc()).SelectedLecturer
	}
	if f.ViewMonth < 1 || f.ViewMonth > 12 || f.ViewYear == 0 {
		now := nowFunc()
		f.ViewMonth = int(now.Month())
		f.ViewYear = now.Year()
	}
	if _, ok := f.SelectedDateTime(); !ok {
		f.SelectedDate = ""
		f.FilterByDate = false
	}
	return f
}

// ImportPersonal validates and stores user-supplied entries, appending to
// what is already stored. Invalid input is the system's one hard failure:
// it surfaces as a validation error naming the offending entry and field.
func (svc *Service) ImportPersonal(entries []PersonalEntry) ([]PersonalEntry, error) {
	if len(entries) == 0 {
		return nil, core.NewValidationError(errors.New("no entries to import"))
	}
	for i := range entries {
		if err := entries[i].Validate(svc.validate); err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		entries[i].ID = uuid.New().String()
	}

	stored, err := svc.repo.GetPersonal()
	if err != nil {
		svc.logger.Warn(fmt.Sprintf("loading personal schedule: %v; starting fresh", err), err)
		stored = nil
	}
	stored = append(stored, entries...)
	if err := svc.repo.SavePersonal(stored); err != nil {
		return nil, errors.Wrap(err, "saving personal schedule")
	}

	svc.notifSvc.SendNotifications(&core.Notification{
		Event:   "personal_schedule.imported",
		Message: fmt.Sprintf("%d entries imported", len(entries)),
		Fields:  map[string]string{"total": fmt.Sprint(len(stored))},
		At:      nowFunc(),
	})
	return entries, nil
}

// Personal returns the stored personal schedule, empty when none.
func (svc *Service) Personal() ([]PersonalEntry, error) {
	entries, err := svc.repo.GetPersonal()
	if err != nil {
		return nil, errors.Wrap(err, "loading personal schedule")
	}
	return entries, nil
}

// ClearPersonal removes the stored personal schedule.
func (svc *Service) ClearPersonal() error {
	return errors.Wrap(svc.repo.DeletePersonal(), "deleting personal schedule")
}
