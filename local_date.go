package rubytime

// LocalDate is a date without a time zone or time component, according to
// ISO 8601. It represents a year-month-day in the proleptic Gregorian
// calendar, but cannot represent an instant on a timeline without
// additional time offset information.
//
// The date is encoded as a Julian Day Number (JDN), so any two LocalDates
// can be compared directly as integers.
//
// The default value, 0, represents the date of the Unix epoch, 1st January
// 1970, unlike the Richards interpretation of JDNs where 0 represents 24th
// November 4714 BCE.
type LocalDate int32

// LocalDateOf returns the LocalDate that represents the specified year,
// month and day. It panics if the date is invalid or would fall outside
// the representable range.
func LocalDateOf(year int, month Month, day int) LocalDate {
	if !isDateValid(year, int(month), day) {
		panic("invalid date")
	}

	out, err := makeDate(year, int(month), day)
	if err != nil {
		panic(err.Error())
	}
	return LocalDate(out)
}

// OfDayOfYear returns the LocalDate that represents the specified day of
// the year.
func OfDayOfYear(year, day int) LocalDate {
	d, err := ofDayOfYear(year, day)
	if err != nil {
		panic(err.Error())
	}
	return LocalDate(d)
}

// OfISOWeek returns the LocalDate that represents the supplied ISO 8601
// year, week number, and weekday. See LocalDate.ISOWeek for further
// explanation of ISO week numbers.
func OfISOWeek(year, week int, day Weekday) (LocalDate, error) {
	out, err := ofISOWeek(year, week, int(day))
	return LocalDate(out), err
}

// Date returns the ISO 8601 year, month and day represented by d.
func (d LocalDate) Date() (year int, month Month, day int) {
	year, _month, day, err := fromDate(int64(d))
	if err != nil {
		panic(err.Error())
	}
	return year, Month(_month), day
}

// IsLeapYear reports whether d falls in a leap year.
func (d LocalDate) IsLeapYear() bool {
	year, _, _ := d.Date()
	return isLeapYear(year)
}

// Weekday returns the day of the week specified by d.
func (d LocalDate) Weekday() Weekday {
	// getWeekday returns Monday=1..Sunday=7; Weekday is Monday=0..Sunday=6.
	return Weekday(getWeekday(int32(d)) - 1)
}

// YearDay returns the day of the year specified by d, in the range
// [1,365] for non-leap years, and [1,366] in leap years.
func (d LocalDate) YearDay() int {
	out, err := getYearDay(int64(d))
	if err != nil {
		panic(err.Error())
	}
	return out
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs.
func (d LocalDate) ISOWeek() (isoYear, isoWeek int) {
	var err error
	if isoYear, isoWeek, err = getISOWeek(int64(d)); err != nil {
		panic(err.Error())
	}
	return
}

func (d LocalDate) String() string {
	year, month, day := d.Date()
	return simpleDateStr(year, int(month), day)
}

// GetLong implements TemporalAccessor.
func (d LocalDate) GetLong(f Field) (int64, bool) {
	year, month, day := d.Date()
	switch f {
	case FieldYear:
		return int64(year), true
	case FieldMonthOfYear:
		return int64(month), true
	case FieldDayOfMonth:
		return int64(day), true
	case FieldDayOfWeek:
		return int64(d.Weekday()), true
	default:
		return 0, false
	}
}

// IsSupported implements TemporalAccessor.
func (d LocalDate) IsSupported(f Field) bool {
	switch f {
	case FieldYear, FieldMonthOfYear, FieldDayOfMonth, FieldDayOfWeek:
		return true
	default:
		return false
	}
}

// MinLocalDate returns the earliest supported date.
func MinLocalDate() LocalDate {
	return LocalDate(minJDN)
}

// MaxLocalDate returns the latest supported date.
func MaxLocalDate() LocalDate {
	return LocalDate(maxJDN)
}
