package booking

import (
	"time"
)

// PeriodsPerDay is the fixed number of bookable periods per room-day.
const PeriodsPerDay = 7

// periodEndTimes maps period index 1..7 to the wall-clock end of that
// period.  The table is fixed by the department timetable.
var periodEndTimes = [PeriodsPerDay]string{
	"09:40", "10:30", "11:40", "12:30", "14:20", "15:10", "16:00",
}

// SlotEndTime computes the end timestamp of the slot (date, period) in the
// server's local time zone.  It returns ErrInvalidInput when the period is
// outside [1,7] or the date is not of the form YYYY-MM-DD.
func SlotEndTime(date string, period int) (time.Time, error) {
	if period < 1 || period > PeriodsPerDay {
		return time.Time{}, ErrInvalidInput
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+periodEndTimes[period-1], time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidInput
	}
	return t, nil
}
