package rubytime

import "fmt"

// ResolverOptions configures how a Parsed with missing fields is filled in
// by Resolve/Parse. The zero value defaults every missing offset to UTC.
type ResolverOptions struct {
	// DefaultOffsetSeconds is used when the Parsed carries no %z/%Z.
	DefaultOffsetSeconds int64
}

// Resolve projects p into a TemporalAccessor, following spec's precedence:
// an explicit epoch field (%s/%Q) wins outright; otherwise the calendar
// fields are assembled against the parsed or default offset, with
// 23:59:60 and 24:00:00 normalized to midnight of the following day.
func Resolve(p *Parsed, opts ResolverOptions) (TemporalAccessor, error) {
	if p.HasEpoch() {
		return resolveEpoch(p), nil
	}
	return resolveCalendar(p, opts)
}

func resolveEpoch(p *Parsed) TemporalAccessor {
	lastSetMillis, seconds, hasSeconds, millis, _, secondsNegative := p.EpochFields()

	// hasMillis with hasSeconds false implies every epoch directive ever
	// set was %Q, so lastSetMillis is necessarily true in that case too;
	// the two remaining branches already cover every reachable state.
	var sec, nsec int64
	switch {
	case lastSetMillis:
		sec = floorDiv(millis, 1000)
		nsec = euclideanMod(millis, 1000) * 1_000_000
		if n, ok := p.NanoOfSecond(); ok {
			nsec += int64(n)
		}
	case hasSeconds:
		sec = seconds
		if n, ok := p.NanoOfSecond(); ok {
			nsec = int64(n)
			// seconds and the %N fraction are parsed as independent
			// non-negative magnitudes, so a negative %s needs the usual
			// floor adjustment to land on the right real-valued instant:
			// -1 seconds plus a 0.5 fraction is -1.5, i.e. instant(-2,
			// 5e8), not instant(-1, 5e8). seconds<0 alone misses "-0",
			// which parses to the int64 value 0, so the sign bit recorded
			// separately by matchEpochDirective is checked too.
			if (seconds < 0 || secondsNegative) && nsec != 0 {
				sec--
				nsec = 1_000_000_000 - nsec
			}
		}
	}

	return InstantOf(sec, nsec)
}

func resolveCalendar(p *Parsed, opts ResolverOptions) (TemporalAccessor, error) {
	year, month, day, err := resolveDate(p)
	if err != nil {
		return nil, err
	}

	hour, min, sec, nsec, carryDay, err := resolveTime(p)
	if err != nil {
		return nil, err
	}

	offsetSeconds := opts.DefaultOffsetSeconds
	if v, ok := p.OffsetSeconds(); ok {
		offsetSeconds = v
	}

	if !isDateValid(year, month, day) {
		return nil, fmt.Errorf("rubytime: %04d-%02d-%02d is not a valid calendar date", year, month, day)
	}

	date, dateErr := makeDate(year, month, day)
	if dateErr != nil {
		return nil, dateErr
	}
	if carryDay {
		date, dateErr = addOneDay(date)
		if dateErr != nil {
			return nil, dateErr
		}
	}

	timeVal, timeErr := makeTime(hour, min, sec, int(nsec))
	if timeErr != nil {
		return nil, timeErr
	}

	return OffsetDateTime{
		date:   LocalDate(date),
		time:   LocalTime{v: timeVal},
		offset: OffsetFromSeconds(offsetSeconds),
	}, nil
}

// resolveDate implements §4.H rule 4: missing date fields default to
// 1970-01-01, with year-only parses defaulting month/day to January 1st.
func resolveDate(p *Parsed) (year, month, day int, err error) {
	year = 1970
	month = 1
	day = 1

	if y, ok := p.YearWithCentury(); ok {
		year = int(y)
	} else if y, ok := p.YearWithoutCentury(); ok {
		century := int64(19)
		if c, ok := p.Century(); ok {
			century = c
		} else if y < 69 {
			century = 20
		}
		year = int(century*100 + y)
	}

	if m, ok := p.Month(); ok {
		month = m
	}
	if d, ok := p.DayOfMonth(); ok {
		day = d
		return year, month, day, nil
	}

	if doy, ok := p.DayOfYear(); ok {
		d, derr := ofDayOfYear(year, doy)
		if derr != nil {
			return 0, 0, 0, derr
		}
		y, m, dd, ferr := fromDate(d)
		if ferr != nil {
			return 0, 0, 0, ferr
		}
		return y, m, dd, nil
	}

	// No explicit month/day: fall back to %G/%g + %V/%U/%W + %A/%a/%u/%w
	// (ISO week-based year, week number, weekday) if all three are
	// present, matching spec.md's week-based reconstruction path.
	if wby, ok := p.WeekBasedYear(); ok {
		if wk, ok := p.WeekOfYear(); ok {
			if dow, ok := p.DayOfWeek(); ok {
				d, derr := ofISOWeek(int(wby), wk, dow)
				if derr != nil {
					return 0, 0, 0, derr
				}
				y, m, dd, ferr := fromDate(d)
				if ferr != nil {
					return 0, 0, 0, ferr
				}
				return y, m, dd, nil
			}
		}
	}

	return year, month, day, nil
}

// resolveTime implements the 23:59:60 leap-second and 24:00:00 midnight
// quirks: both normalize to 00:00:00 and ask the caller to roll the date
// forward one day.
func resolveTime(p *Parsed) (hour, min, sec int, nsec int64, carryDay bool, err error) {
	if h, ok := p.Hour(); ok {
		hour = h
	}
	if m, ok := p.Minute(); ok {
		min = m
	}
	if s, ok := p.Second(); ok {
		sec = s
	}
	if n, ok := p.NanoOfSecond(); ok {
		nsec = int64(n)
	}

	if ampm, ok := p.AmPm(); ok && ampm == PM && hour < 12 {
		hour += 12
	} else if ok && ampm == AM && hour == 12 {
		hour = 0
	}

	switch {
	case hour == 24:
		if min != 0 || sec != 0 {
			return 0, 0, 0, 0, false, fmt.Errorf("rubytime: hour 24 requires minute and second to be zero")
		}
		return 0, 0, 0, nsec, true, nil
	case sec == 60:
		if hour == 23 && min == 59 {
			return 0, 0, 0, nsec, true, nil
		}
		return 0, 0, 0, 0, false, fmt.Errorf("rubytime: leap second only accepted at 23:59:60")
	}

	return hour, min, sec, nsec, false, nil
}
