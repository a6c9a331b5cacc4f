package rubytime

// OffsetDateTime combines a LocalDate, a LocalTime, and an Offset into a
// single date-time value with a fixed zone offset. It is the TemporalAccessor
// the resolver produces when a Parsed carries calendar fields (year/month/day
// and/or hour/minute/second) rather than an epoch field.
type OffsetDateTime struct {
	date   LocalDate
	time   LocalTime
	offset Offset
}

// OffsetDateTimeOf returns an OffsetDateTime that represents the specified
// year, month, day, hour, minute, second, and nanosecond, with the offset
// applied in the same manner as OffsetOf. It panics if the date or time is
// invalid.
func OffsetDateTimeOf(year int, month Month, day, hour, min, sec, nsec, offsetHours, offsetMins int) OffsetDateTime {
	return OffsetDateTime{
		date:   LocalDateOf(year, month, day),
		time:   LocalTimeOf(hour, min, sec, nsec),
		offset: OffsetOf(offsetHours, offsetMins),
	}
}

// OfLocalDateTimeOffset combines a LocalDate, LocalTime, and Offset into an
// OffsetDateTime.
func OfLocalDateTimeOffset(date LocalDate, time LocalTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{date: date, time: time, offset: offset}
}

// Date returns the LocalDate component of d.
func (d OffsetDateTime) Date() LocalDate {
	return d.date
}

// Time returns the LocalTime component of d.
func (d OffsetDateTime) Time() LocalTime {
	return d.time
}

// Offset returns the offset of d.
func (d OffsetDateTime) Offset() Offset {
	return d.offset
}

// Split returns the separate LocalDate and LocalTime that together
// represent d, alongside its offset.
func (d OffsetDateTime) Split() (LocalDate, LocalTime, Offset) {
	return d.date, d.time, d.offset
}

func (d OffsetDateTime) String() string {
	year, month, day := d.date.Date()
	hour, min, sec, nsec := fromTime(d.time.v)
	o := int64(d.offset)
	return simpleDateStr(year, int(month), day) + " " + simpleTimeStr(hour, min, sec, nsec, &o)
}

// GetLong implements TemporalAccessor.
func (d OffsetDateTime) GetLong(f Field) (int64, bool) {
	switch f {
	case FieldOffsetSeconds:
		return d.offset.Seconds(), true
	default:
		if v, ok := d.date.GetLong(f); ok {
			return v, true
		}
		return d.time.GetLong(f)
	}
}

// IsSupported implements TemporalAccessor.
func (d OffsetDateTime) IsSupported(f Field) bool {
	switch f {
	case FieldOffsetSeconds:
		return true
	default:
		return d.date.IsSupported(f) || d.time.IsSupported(f)
	}
}
