package catalog

import "testing"

func TestParsePeriods(t *testing.T) {
	tests := []struct {
		name   string
		tiet   string
		want   PeriodRange
		wantOk bool
	}{
		{name: "empty", tiet: "", wantOk: false},
		{name: "placeholder", tiet: "--", wantOk: false},
		{name: "single period", tiet: "4", want: PeriodRange{4, 4}, wantOk: true},
		{name: "dashed list", tiet: "6 - 11 - 12", want: PeriodRange{6, 12}, wantOk: true},
		{name: "unordered list", tiet: "12 - 6", want: PeriodRange{6, 12}, wantOk: true},
		{name: "adjacent pair", tiet: "2 - 3", want: PeriodRange{2, 3}, wantOk: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePeriods(tt.tiet)
			if ok != tt.wantOk {
				t.Fatalf("ParsePeriods(%q) ok = %v, want %v", tt.tiet, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParsePeriods(%q) = %+v, want %+v", tt.tiet, got, tt.want)
			}
		})
	}
}

func TestFormatPeriodRange(t *testing.T) {
	tests := []struct {
		name string
		tiet string
		want string
	}{
		{name: "no digits", tiet: "--", want: ""},
		{name: "empty", tiet: "", want: ""},
		// period 1 starts at 06:00, each period lasts an hour
		{name: "first period", tiet: "1", want: "06:00 - 07:00"},
		{name: "dashed list", tiet: "6 - 11 - 12", want: "11:00 - 18:00"},
		{name: "morning pair", tiet: "2 - 3", want: "07:00 - 09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPeriodRange(tt.tiet); got != tt.want {
				t.Errorf("FormatPeriodRange(%q) = %q, want %q", tt.tiet, got, tt.want)
			}
		})
	}
}
