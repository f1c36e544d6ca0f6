package inmemstate

import (
	"testing"

	"github.com/hcmut-hub/tkb/core/schedule"
)

func TestStoreFilters(t *testing.T) {
	st := NewStore()

	if _, ok, _ := st.GetFilters(); ok {
		t.Fatal("GetFilters() on a fresh store reported stored state")
	}

	want := schedule.Filters{SearchQ: "co2003", ActiveCampus: "all", SelectedLecturer: "all", ViewMonth: 9, ViewYear: 2025}
	if err := st.SaveFilters(want); err != nil {
		t.Fatalf("SaveFilters() error = %v", err)
	}
	got, ok, _ := st.GetFilters()
	if !ok || got != want {
		t.Errorf("GetFilters() = %+v ok=%v, want %+v", got, ok, want)
	}

	_ = st.DeleteFilters()
	if _, ok, _ := st.GetFilters(); ok {
		t.Error("GetFilters() after delete reported stored state")
	}
}

func TestStorePersonalIsolation(t *testing.T) {
	st := NewStore()

	entries := []schedule.PersonalEntry{{ID: "1", CourseCode: "CO2003"}}
	if err := st.SavePersonal(entries); err != nil {
		t.Fatalf("SavePersonal() error = %v", err)
	}

	// mutating the caller's slice must not affect the stored copy
	entries[0].CourseCode = "mutated"
	got, _ := st.GetPersonal()
	if len(got) != 1 || got[0].CourseCode != "CO2003" {
		t.Errorf("GetPersonal() = %+v, want the stored copy untouched", got)
	}

	// and mutating the returned slice must not either
	got[0].CourseCode = "mutated"
	again, _ := st.GetPersonal()
	if again[0].CourseCode != "CO2003" {
		t.Error("GetPersonal() must return a copy")
	}
}
