package attendance

import (
	"testing"
)

func TestDaysCredited(t *testing.T) {
	cases := []struct {
		status DayStatus
		want   float64
	}{
		{DayStatusPresent, 1.0},
		{DayStatusLeave, 1.0},
		{DayStatusHalfDay, 0.5},
		{DayStatusAbsent, 0},
		{DayStatus("unknown"), 0},
	}
	for _, c := range cases {
		got := c.status.DaysCredited()
		if got != c.want {
			t.Errorf("DaysCredited(%q) = %v, want %v", c.status, got, c.want)
		}
	}
}
