package localtime

import "time"

// displayLayout renders 12-hour time without a leading zero on the hour, e.g. "9:05am".
const displayLayout = "3:04pm"

// FormatTime renders the hour and minute of t as h:mma.
func FormatTime(t time.Time) string {
	return t.Format(displayLayout)
}

// Shift moves now into a flat UTC offset of whole hours. Daylight saving and
// zone rules are not consulted.
func Shift(now time.Time, utcOffsetHours int) time.Time {
	return now.In(time.FixedZone("", utcOffsetHours*60*60))
}

// Now renders now as wall-clock time at the given whole-hour UTC offset.
func Now(now time.Time, utcOffsetHours int) string {
	return FormatTime(Shift(now, utcOffsetHours))
}
