package rubytime

// Field identifies a single numeric component a TemporalAccessor can report,
// mirroring the handful of fields the resolver ever needs to read back off
// the date-time values it builds.
type Field int

const (
	// FieldInstantSeconds is the signed count of seconds since the Unix epoch.
	FieldInstantSeconds Field = iota
	// FieldNanoOfSecond is the nanosecond-of-second fraction, in [0, 1e9).
	FieldNanoOfSecond
	// FieldOffsetSeconds is the zone offset from UTC, in seconds.
	FieldOffsetSeconds
	// FieldYear is the proleptic year.
	FieldYear
	// FieldMonthOfYear is the month, in [1, 12].
	FieldMonthOfYear
	// FieldDayOfMonth is the day of the month, in [1, 31].
	FieldDayOfMonth
	// FieldHourOfDay is the hour of the 24-hour clock, in [0, 23].
	FieldHourOfDay
	// FieldMinuteOfHour is the minute of the hour, in [0, 59].
	FieldMinuteOfHour
	// FieldSecondOfMinute is the second of the minute, in [0, 59].
	FieldSecondOfMinute
	// FieldDayOfWeek is the day of the week, Monday=0..Sunday=6, matching
	// the Weekday type.
	FieldDayOfWeek
)

// TemporalAccessor is implemented by any date-time value that can report its
// components one field at a time. It is the seam between the parse/format
// engine and the host's own date-time types: FormatTemporal only ever reads
// through this interface, and the resolver only ever writes values that
// implement it.
type TemporalAccessor interface {
	// GetLong returns the value of f and true if f is supported, or 0 and
	// false otherwise.
	GetLong(f Field) (int64, bool)

	// IsSupported reports whether f can be retrieved with GetLong.
	IsSupported(f Field) bool
}
