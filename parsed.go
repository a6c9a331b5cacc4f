package rubytime

// Parsed is the mutable accumulator strptime.go fills in while consuming an
// input string against a compiled Format. Each field is an optional slot:
// present reports whether it was ever written. ParseUnresolved hands one of
// these back directly; Parse feeds it to the resolver and discards it.
type Parsed struct {
	yearWithCentury    int64
	hasYearWithCentury bool
	century            int64
	hasCentury         bool
	yearWithoutCentury int64
	hasYearWithoutCentury bool

	month    int
	hasMonth bool

	dayOfMonth    int
	hasDayOfMonth bool
	dayOfYear     int
	hasDayOfYear  bool

	hour    int
	hasHour bool
	minute    int
	hasMinute bool
	second    int
	hasSecond bool

	milliOfSecond    int
	hasMilliOfSecond bool
	nanoOfSecond     int
	hasNanoOfSecond  bool

	instantSeconds         int64
	hasInstantSeconds      bool
	instantSecondsNegative bool
	instantMillis          int64
	hasInstantMillis       bool

	// epochOrder records which of instantSeconds/instantMillis was set
	// most recently, so the resolver can implement the "last wins"
	// precedence the reference requires for mixed %s/%Q patterns.
	epochOrder []epochSet

	dayOfWeek    int
	hasDayOfWeek bool

	weekBasedYearWithCentury       int64
	hasWeekBasedYearWithCentury    bool
	weekBasedYearWithoutCentury    int64
	hasWeekBasedYearWithoutCentury bool
	weekOfYear                     int
	hasWeekOfYear                  bool

	amPm    AmPm
	hasAmPm bool

	zoneText    string
	hasZoneText bool
	offsetSeconds int64
	hasOffset     bool

	leftover string
	original string
}

type epochSet int

const (
	epochSetSeconds epochSet = iota
	epochSetMillis
)

// SetYearWithCentury records a %Y field.
func (p *Parsed) SetYearWithCentury(v int64) { p.yearWithCentury, p.hasYearWithCentury = v, true }

// YearWithCentury returns the %Y field and whether it was set.
func (p *Parsed) YearWithCentury() (int64, bool) { return p.yearWithCentury, p.hasYearWithCentury }

// SetCentury records a %C field.
func (p *Parsed) SetCentury(v int64) { p.century, p.hasCentury = v, true }

// Century returns the %C field and whether it was set.
func (p *Parsed) Century() (int64, bool) { return p.century, p.hasCentury }

// SetYearWithoutCentury records a %y field.
func (p *Parsed) SetYearWithoutCentury(v int64) {
	p.yearWithoutCentury, p.hasYearWithoutCentury = v, true
}

// YearWithoutCentury returns the %y field and whether it was set.
func (p *Parsed) YearWithoutCentury() (int64, bool) {
	return p.yearWithoutCentury, p.hasYearWithoutCentury
}

// SetMonth records a %m/%B/%b field. month is 1-12.
func (p *Parsed) SetMonth(v int) { p.month, p.hasMonth = v, true }

// Month returns the month field and whether it was set.
func (p *Parsed) Month() (int, bool) { return p.month, p.hasMonth }

// SetDayOfMonth records a %d/%e field.
func (p *Parsed) SetDayOfMonth(v int) { p.dayOfMonth, p.hasDayOfMonth = v, true }

// DayOfMonth returns the day-of-month field and whether it was set.
func (p *Parsed) DayOfMonth() (int, bool) { return p.dayOfMonth, p.hasDayOfMonth }

// SetDayOfYear records a day-of-year field. The directive table has no %j,
// so the strptime engine never calls it; resolveDate uses the field when
// it is set.
func (p *Parsed) SetDayOfYear(v int) { p.dayOfYear, p.hasDayOfYear = v, true }

// DayOfYear returns the day-of-year field and whether it was set.
func (p *Parsed) DayOfYear() (int, bool) { return p.dayOfYear, p.hasDayOfYear }

// SetHour records a %H/%k/%I/%l field as parsed (strptime.go stores %I/%l
// modulo 12). AM/PM is not applied here; resolve.go applies a %p/%P field
// to the hour at resolve time, whichever order the two were parsed in.
func (p *Parsed) SetHour(v int) { p.hour, p.hasHour = v, true }

// Hour returns the hour field and whether it was set.
func (p *Parsed) Hour() (int, bool) { return p.hour, p.hasHour }

// SetMinute records a %M field.
func (p *Parsed) SetMinute(v int) { p.minute, p.hasMinute = v, true }

// Minute returns the minute field and whether it was set.
func (p *Parsed) Minute() (int, bool) { return p.minute, p.hasMinute }

// SetSecond records a %S field. 60 is permitted (leap-second sentinel).
func (p *Parsed) SetSecond(v int) { p.second, p.hasSecond = v, true }

// Second returns the second field and whether it was set.
func (p *Parsed) Second() (int, bool) { return p.second, p.hasSecond }

// SetMilliOfSecond records a %L field.
func (p *Parsed) SetMilliOfSecond(v int) {
	p.milliOfSecond, p.hasMilliOfSecond = v, true
	p.nanoOfSecond, p.hasNanoOfSecond = v*1_000_000, true
}

// SetNanoOfSecond records a %N field.
func (p *Parsed) SetNanoOfSecond(v int) { p.nanoOfSecond, p.hasNanoOfSecond = v, true }

// NanoOfSecond returns the sub-second fraction and whether one was set (via
// %N or %L).
func (p *Parsed) NanoOfSecond() (int, bool) { return p.nanoOfSecond, p.hasNanoOfSecond }

// SetInstantSeconds records a %s field, which wins over any previously set
// %Q for the epoch derivation (last directive in source order wins). negative
// records whether the matched text carried a leading '-', since a "-0"
// input parses to the int64 value 0 and would otherwise lose its sign.
func (p *Parsed) SetInstantSeconds(v int64, negative bool) {
	p.instantSeconds, p.hasInstantSeconds = v, true
	p.instantSecondsNegative = negative
	p.epochOrder = append(p.epochOrder, epochSetSeconds)
}

// SetInstantMillis records a %Q field.
func (p *Parsed) SetInstantMillis(v int64) {
	p.instantMillis, p.hasInstantMillis = v, true
	p.epochOrder = append(p.epochOrder, epochSetMillis)
}

// EpochFields reports whether the last-written epoch source was %Q
// (lastSetMillis is false if %s was last or neither was ever seen) plus
// both raw values, for the resolver's precedence rule. secondsNegative reports whether the %s text had a leading '-',
// since that's lost once "-0" parses to the int64 value 0.
func (p *Parsed) EpochFields() (lastSetMillis bool, seconds int64, hasSeconds bool, millis int64, hasMillis bool, secondsNegative bool) {
	if len(p.epochOrder) > 0 && p.epochOrder[len(p.epochOrder)-1] == epochSetMillis {
		lastSetMillis = true
	}
	return lastSetMillis, p.instantSeconds, p.hasInstantSeconds, p.instantMillis, p.hasInstantMillis, p.instantSecondsNegative
}

// HasEpoch reports whether any epoch field (%s or %Q) was set.
func (p *Parsed) HasEpoch() bool {
	return p.hasInstantSeconds || p.hasInstantMillis
}

// SetDayOfWeek records a %A/%a/%u/%w field. The stored value is
// Monday=0..Sunday=6, matching Weekday.
func (p *Parsed) SetDayOfWeek(v int) { p.dayOfWeek, p.hasDayOfWeek = v, true }

// DayOfWeek returns the day-of-week field and whether it was set.
func (p *Parsed) DayOfWeek() (int, bool) { return p.dayOfWeek, p.hasDayOfWeek }

// SetWeekBasedYearWithCentury records a %G field.
func (p *Parsed) SetWeekBasedYearWithCentury(v int64) {
	p.weekBasedYearWithCentury, p.hasWeekBasedYearWithCentury = v, true
}

// SetWeekBasedYearWithoutCentury records a %g field.
func (p *Parsed) SetWeekBasedYearWithoutCentury(v int64) {
	p.weekBasedYearWithoutCentury, p.hasWeekBasedYearWithoutCentury = v, true
}

// WeekBasedYear returns the ISO week-based year field and whether it was
// set, completing a bare %g's century the same way resolveDate completes
// %y: from an explicit %C if one was seen, otherwise 19 or 20 depending on
// whether the two-digit year is below 69.
func (p *Parsed) WeekBasedYear() (int64, bool) {
	if p.hasWeekBasedYearWithCentury {
		return p.weekBasedYearWithCentury, true
	}
	if p.hasWeekBasedYearWithoutCentury {
		century := int64(19)
		if p.hasCentury {
			century = p.century
		} else if p.weekBasedYearWithoutCentury < 69 {
			century = 20
		}
		return century*100 + p.weekBasedYearWithoutCentury, true
	}
	return 0, false
}

// SetWeekOfYear records a %U/%V/%W field.
func (p *Parsed) SetWeekOfYear(v int) { p.weekOfYear, p.hasWeekOfYear = v, true }

// WeekOfYear returns the week-of-year field and whether it was set.
func (p *Parsed) WeekOfYear() (int, bool) { return p.weekOfYear, p.hasWeekOfYear }

// SetAmPm records a %p/%P field.
func (p *Parsed) SetAmPm(v AmPm) { p.amPm, p.hasAmPm = v, true }

// AmPm returns the AM/PM field and whether it was set.
func (p *Parsed) AmPm() (AmPm, bool) { return p.amPm, p.hasAmPm }

// SetZoneText records the raw text a %Z directive matched, alongside the
// offset it resolved to.
func (p *Parsed) SetZoneText(text string, offsetSeconds int64) {
	p.zoneText, p.hasZoneText = text, true
	p.offsetSeconds, p.hasOffset = offsetSeconds, true
}

// SetOffsetSeconds records a %z field.
func (p *Parsed) SetOffsetSeconds(v int64) { p.offsetSeconds, p.hasOffset = v, true }

// OffsetSeconds returns the offset field and whether it was set (by %z or
// %Z).
func (p *Parsed) OffsetSeconds() (int64, bool) { return p.offsetSeconds, p.hasOffset }

// ZoneText returns the raw zone name text matched by %Z, if any.
func (p *Parsed) ZoneText() (string, bool) { return p.zoneText, p.hasZoneText }

// SetLeftover records input text remaining after the format was matched.
func (p *Parsed) SetLeftover(s string) { p.leftover = s }

// Leftover returns any unmatched trailing input.
func (p *Parsed) Leftover() string { return p.leftover }

// SetOriginal records the original input string being parsed.
func (p *Parsed) SetOriginal(s string) { p.original = s }

// Original returns the input string this Parsed was built from.
func (p *Parsed) Original() string { return p.original }
