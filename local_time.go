package rubytime

// LocalTime is a time without a time zone or date component. It
// represents a time within the 24-hour clock with nanosecond precision,
// according to ISO 8601.
type LocalTime struct {
	v int64
}

// LocalTimeOf returns a LocalTime that represents the specified hour,
// minute, second, and nanosecond offset within the specified second. It
// panics if the time is invalid.
func LocalTimeOf(hour, min, sec, nsec int) LocalTime {
	out, err := makeTime(hour, min, sec, nsec)
	if err != nil {
		panic(err.Error())
	}
	return LocalTime{v: out}
}

// Clock returns the hour, minute and second represented by t.
func (t LocalTime) Clock() (hour, min, sec int) {
	hour, min, sec, _ = fromTime(t.v)
	return
}

// Nanosecond returns the nanosecond offset within the second represented
// by t, in the range [0, 999999999].
func (t LocalTime) Nanosecond() int {
	return timeNanoseconds(t.v)
}

// Compare compares t with t2. If t is before t2, it returns -1; if t is
// after t2, it returns 1; if they're the same, it returns 0.
func (t LocalTime) Compare(t2 LocalTime) int {
	return compareTimes(t.v, t2.v)
}

func (t LocalTime) String() string {
	hour, min, sec, nsec := fromTime(t.v)
	return simpleTimeStr(hour, min, sec, nsec, nil)
}

// GetLong implements TemporalAccessor.
func (t LocalTime) GetLong(f Field) (int64, bool) {
	hour, min, sec, nsec := fromTime(t.v)
	switch f {
	case FieldHourOfDay:
		return int64(hour), true
	case FieldMinuteOfHour:
		return int64(min), true
	case FieldSecondOfMinute:
		return int64(sec), true
	case FieldNanoOfSecond:
		return int64(nsec), true
	default:
		return 0, false
	}
}

// IsSupported implements TemporalAccessor.
func (t LocalTime) IsSupported(f Field) bool {
	switch f {
	case FieldHourOfDay, FieldMinuteOfHour, FieldSecondOfMinute, FieldNanoOfSecond:
		return true
	default:
		return false
	}
}
