package catalog

import (
	"testing"
	"time"
)

// testBase is a Monday, the week-1 anchor used by the occurrence tests.
var testBase = time.Date(2025, 8, 25, 0, 0, 0, 0, time.Local)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func singleScheduleCatalog(s Schedule) (Catalog, *Course, *Group, *Schedule) {
	cat := Catalog{
		{
			ID:         "c-test",
			CourseCode: "TS1001",
			CourseName: "Test",
			Groups:     []Group{{LTGroup: "L01", Schedules: []Schedule{s}}},
		},
	}
	c := &cat[0]
	g := &c.Groups[0]
	return cat, c, g, &g.Schedules[0]
}

func TestOccurrenceCacheDates(t *testing.T) {
	tests := []struct {
		name string
		sch  Schedule
		want []time.Time
	}{
		{
			name: "five consecutive mondays",
			sch:  Schedule{Thu: "Thứ 2", Tiet: "6 - 11 - 12", TuanHoc: "1111100"},
			want: []time.Time{
				date(2025, 8, 25), date(2025, 9, 1), date(2025, 9, 8),
				date(2025, 9, 15), date(2025, 9, 22),
			},
		},
		{
			name: "sunday closes week 1",
			sch:  Schedule{Thu: "CN", Tiet: "2 - 3", TuanHoc: "1"},
			want: []time.Time{date(2025, 8, 31)},
		},
		{
			name: "gapped weeks on thursday",
			sch:  Schedule{Thu: "Thứ 5", Tiet: "4 - 5", TuanHoc: "101001"},
			want: []time.Time{date(2025, 8, 28), date(2025, 9, 11), date(2025, 10, 2)},
		},
		{
			name: "unknown weekday expands to nothing",
			sch:  Schedule{Thu: "chưa xác định", TuanHoc: "1111"},
			want: nil,
		},
		{
			name: "empty activity string expands to nothing",
			sch:  Schedule{Thu: "Thứ 2", Tiet: "2 - 3"},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, c, g, s := singleScheduleCatalog(tt.sch)
			cache := NewOccurrenceCache(testBase, cat)

			got := cache.Dates(c, g, s)
			if len(got) != len(tt.want) {
				t.Fatalf("Dates() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !got[i].Equal(tt.want[i]) {
					t.Errorf("Dates()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
				if wd := ParseWeekday(tt.sch.Thu); wd.Known() && got[i].Weekday() != wd.TimeWeekday() {
					t.Errorf("Dates()[%d] falls on %v, want %v", i, got[i].Weekday(), wd.TimeWeekday())
				}
			}
		})
	}
}

func TestOccurrenceCacheSharedIdentity(t *testing.T) {
	// two schedule records with an identical composite identity share one
	// cache entry even though they are distinct objects
	cat := Catalog{
		{
			ID:         "c-test",
			CourseCode: "TS1001",
			CourseName: "Test",
			Groups: []Group{
				{
					LTGroup: "L01",
					Schedules: []Schedule{
						{Thu: "Thứ 2", Tiet: "2 - 3", Phong: "H1-101", CS: "1", TuanHoc: "111"},
						{Thu: "Thứ 2", Tiet: "2 - 3", Phong: "H2-202", CS: "2", TuanHoc: "111"},
					},
				},
			},
		},
	}
	c := &cat[0]
	g := &c.Groups[0]
	cache := NewOccurrenceCache(testBase, cat)

	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
	d1 := cache.Dates(c, g, &g.Schedules[0])
	d2 := cache.Dates(c, g, &g.Schedules[1])
	if len(d1) == 0 || len(d2) == 0 {
		t.Fatalf("expected occurrences for both records, got %v and %v", d1, d2)
	}
	if &d1[0] != &d2[0] {
		t.Error("records with equal identity should share one cache entry")
	}
}

func TestOccurrenceCacheOnDate(t *testing.T) {
	cat, c, g, s := singleScheduleCatalog(Schedule{Thu: "Thứ 2", TuanHoc: "11"})
	cache := NewOccurrenceCache(testBase, cat)

	// time-of-day must not matter
	if !cache.OnDate(c, g, s, time.Date(2025, 9, 1, 15, 30, 0, 0, time.Local)) {
		t.Error("OnDate() = false for an occurrence day")
	}
	if cache.OnDate(c, g, s, date(2025, 9, 2)) {
		t.Error("OnDate() = true for a day off")
	}
}

func TestOccurrenceCacheUnknownTriple(t *testing.T) {
	cat, _, _, _ := singleScheduleCatalog(Schedule{Thu: "Thứ 2", TuanHoc: "1"})
	cache := NewOccurrenceCache(testBase, cat)

	other := Catalog{{ID: "c-other", Groups: []Group{{LTGroup: "L99", Schedules: []Schedule{{Thu: "Thứ 3", TuanHoc: "1"}}}}}}
	oc := &other[0]
	og := &oc.Groups[0]
	if got := cache.Dates(oc, og, &og.Schedules[0]); got != nil {
		t.Errorf("Dates() for a triple never seen at build time = %v, want nil", got)
	}
}
