// Package filestate persists the session state to a single JSON file,
// mirroring the browser local-storage contract: read at mount, written on
// every change, removed on explicit reset, last write wins. Malformed
// content is treated as absent, never as an error the caller must handle.
package filestate

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/hcmut-hub/tkb/core/schedule"
)

type (
	blob struct {
		Filters  *schedule.Filters        `json:"schedule_filters,omitempty"`
		Personal []schedule.PersonalEntry `json:"personal_schedule,omitempty"`
	}

	Store struct {
		mutex sync.Mutex
		path  string
	}
)

var _ schedule.StateRepository = (*Store)(nil) // interface compliance check

func NewStore(path string) *Store {
	return &Store{path: path}
}

// read loads the blob; a missing or unreadable file yields an empty blob.
func (st *Store) read() blob {
	var b blob
	data, err := os.ReadFile(st.path)
	if err != nil {
		return blob{}
	}
	if err := json.Unmarshal(data, &b); err != nil {
		return blob{}
	}
	return b
}

func (st *Store) write(b blob) error {
	if b.Filters == nil && len(b.Personal) == 0 {
		// nothing left; drop the file like localStorage.removeItem
		if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "removing %s", st.path)
		}
		return nil
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshaling state")
	}
	return errors.Wrapf(os.WriteFile(st.path, data, 0o644), "writing %s", st.path)
}

func (st *Store) GetFilters() (schedule.Filters, bool, error) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	b := st.read()
	if b.Filters == nil {
		return schedule.Filters{}, false, nil
	}
	return *b.Filters, true, nil
}

func (st *Store) SaveFilters(f schedule.Filters) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	b := st.read()
	b.Filters = &f
	return st.write(b)
}

func (st *Store) DeleteFilters() error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	b := st.read()
	b.Filters = nil
	return st.write(b)
}

func (st *Store) GetPersonal() ([]schedule.PersonalEntry, error) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	return st.read().Personal, nil
}

func (st *Store) SavePersonal(entries []schedule.PersonalEntry) error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	b := st.read()
	b.Personal = entries
	return st.write(b)
}

func (st *Store) DeletePersonal() error {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	b := st.read()
	b.Personal = nil
	return st.write(b)
}
