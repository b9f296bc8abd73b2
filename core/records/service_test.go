package records

import (
	"testing"
	"time"
)

func TestAttendanceRate(t *testing.T) {
	day := func(d int, present bool) Attendance {
		return Attendance{Date: time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC), Present: present}
	}

	tests := []struct {
		name    string
		records []Attendance
		want    int
	}{
		{name: "empty list yields 0", records: nil, want: 0},
		{name: "all present", records: []Attendance{day(1, true), day(2, true)}, want: 100},
		{name: "none present", records: []Attendance{day(1, false), day(2, false)}, want: 0},
		{name: "rounded to nearest", records: []Attendance{day(1, true), day(2, true), day(3, false)}, want: 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttendanceRate(tt.records); got != tt.want {
				t.Errorf("AttendanceRate() = %v, want %v", got, tt.want)
			}
		})
	}
}
