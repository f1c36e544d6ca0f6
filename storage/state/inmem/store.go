package inmemstate

import (
	"sync"

	"github.com/hcmut-hub/tkb/core/schedule"
)

// Store is the in-memory StateRepository, used by tests and as the
// fallback when no state path is configured.
type Store struct {
	mutex    sync.RWMutex
	filters  *schedule.Filters
	personal []schedule.PersonalEntry
}

var _ schedule.StateRepository = (*Store)(nil) // interface compliance check

func NewStore() *Store {
	return &Store{}
}

func (st *Store) GetFilters() (schedule.Filters, bool, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	if st.filters == nil {
		return schedule.Filters{}, false, nil
	}
	return *st.filters, true, nil
}

func (st *Store) SaveFilters(f schedule.Filters) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.filters = &f
	return nil
}

func (st *Store) DeleteFilters() error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.filters = nil
	return nil
}

func (st *Store) GetPersonal() ([]schedule.PersonalEntry, error) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()

	entries := make([]schedule.PersonalEntry, len(st.personal))
	copy(entries, st.personal)
	return entries, nil
}

func (st *Store) SavePersonal(entries []schedule.PersonalEntry) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.personal = make([]schedule.PersonalEntry, len(entries))
	copy(st.personal, entries)
	return nil
}

func (st *Store) DeletePersonal() error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	st.personal = nil
	return nil
}
