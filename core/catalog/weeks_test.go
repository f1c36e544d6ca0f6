package catalog

import (
	"reflect"
	"testing"
)

func TestActiveWeeks(t *testing.T) {
	tests := []struct {
		name    string
		tuanHoc string
		want    []int
	}{
		{name: "empty", tuanHoc: "", want: nil},
		{name: "all off", tuanHoc: "--0- ", want: nil},
		{name: "single week", tuanHoc: "1", want: []int{0}},
		{name: "leading gap", tuanHoc: "--34", want: []int{2, 3}},
		{name: "interleaved", tuanHoc: "1-3-5", want: []int{0, 2, 4}},
		{name: "zeros are off", tuanHoc: "101001", want: []int{0, 2, 5}},
		{name: "any active marker", tuanHoc: "ab-c", want: []int{0, 1, 3}},
		{name: "multibyte marker is one week", tuanHoc: "à-1", want: []int{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ActiveWeeks(tt.tuanHoc); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ActiveWeeks(%q) = %v, want %v", tt.tuanHoc, got, tt.want)
			}
		})
	}
}
