package rubytime

import "fmt"

// UTC represents Universal Coordinated Time (UTC).
const UTC = Offset(0)

// Offset represents a time zone offset from UTC with precision to the second.
type Offset Extent

// OffsetOf returns the Offset represented by a number of hours and minutes.
// If hours is non-zero, the sign of minutes is ignored, e.g.:
//   - OffsetOf(-2, 30) = -02h:30m
//   - OffsetOf(2, -30) = 02h:30m
//   - OffsetOf(0, 30) = 00h:30m
//   - OffsetOf(0, -30) = -00h:30m
func OffsetOf(hours, mins int) Offset {
	return Offset(makeOffset(hours, mins))
}

// OffsetFromSeconds converts a signed seconds-from-UTC value, as produced
// by the offset parser and zone table, into an Offset.
func OffsetFromSeconds(seconds int64) Offset {
	return Offset(seconds * oneSecond)
}

func makeOffset(hours, mins int) int64 {
	if hours == 0 {
		return int64(mins) * oneMinute
	}

	if mins < 0 {
		mins = -mins
	}

	if hours < 0 {
		return (int64(hours) * oneHour) - (int64(mins) * oneMinute)
	}
	return (int64(hours) * oneHour) + (int64(mins) * oneMinute)
}

// Seconds returns the offset as a signed count of seconds from UTC.
func (o Offset) Seconds() int64 {
	return int64(o) / oneSecond
}

// String returns the time zone designator according to ISO 8601.
// If o == 0, String returns "Z" for the UTC offset.
// In all other cases, a string in the format of ±hh:mm[:ss] is returned.
func (o Offset) String() string {
	return offsetString(int64(o), ":")
}

// offsetSeconds decomposes a signed nanosecond extent into absolute
// hours/minutes/seconds components and a sign.
func offsetSeconds(o int64) (neg bool, hours, mins, secs int) {
	if o < 0 {
		neg = true
		o = -o
	}

	total := o / oneSecond
	hours = int(total / 3600)
	mins = int((total % 3600) / 60)
	secs = int(total % 60)
	return
}

// offsetString renders a signed offset extent, separating the hour and
// minute (and, when non-zero, second) fields with sep. An empty sep
// produces the unpunctuated ±HHMM / ±HHMMSS form. A zero offset renders
// as "Z".
func offsetString(o int64, sep string) string {
	if o == 0 {
		return "Z"
	}

	neg, hours, mins, secs := offsetSeconds(o)
	sign := "+"
	if neg {
		sign = "-"
	}

	if secs == 0 {
		return fmt.Sprintf("%s%02d%s%02d", sign, hours, sep, mins)
	}
	return fmt.Sprintf("%s%02d%s%02d%s%02d", sign, hours, sep, mins, sep, secs)
}
