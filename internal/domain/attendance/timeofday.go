package attendance

import (
	"fmt"
	"time"
)

// TimeOfDay is a timezone-naive clock time, stored as seconds since midnight.
// Attendance rules and clock events compare times of day within one calendar
// day, so a full timestamp would only get in the way.
type TimeOfDay int

// ParseTimeOfDay accepts "HH:MM:SS" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q", s)
		}
	}
	return FromClock(t), nil
}

// FromClock extracts the time-of-day component of t.
func FromClock(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(h*3600 + m*60 + s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }

func (t TimeOfDay) After(u TimeOfDay) bool { return t > u }

// Sub returns the elapsed duration from u to t.
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(int(t)-int(u)) * time.Second
}
