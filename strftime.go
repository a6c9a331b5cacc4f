package rubytime

import (
	"fmt"
	"strings"
)

// FormatTemporal renders t against f's compiled tokens, honoring padding,
// width, case flags, and colon-count offset rendering. A directive whose
// field is unavailable on t renders as an empty run.
func FormatTemporal(f Format, t TemporalAccessor) string {
	var b strings.Builder
	renderTokens(&b, f.Tokens(), t)
	return b.String()
}

func renderTokens(b *strings.Builder, tokens []FormatToken, t TemporalAccessor) {
	for _, tok := range tokens {
		if tok.IsImmediate() {
			b.WriteString(tok.Text())
			continue
		}
		if tok.directive.class == classRecurred {
			renderTokens(b, tok.subFormat.Tokens(), t)
			continue
		}
		renderDirective(b, tok, t)
	}
}

func renderDirective(b *strings.Builder, tok FormatToken, t TemporalAccessor) {
	switch tok.directive.class {
	case classNumeric:
		renderNumeric(b, tok, t)
	case classTextual:
		renderTextual(b, tok, t)
	case classEpoch:
		renderEpoch(b, tok, t)
	case classOffset:
		renderOffset(b, tok, t)
	case classZoneName:
		renderZone(b, tok, t)
	case classLiteral:
		renderLiteral(b, tok)
	}
}

func renderLiteral(b *strings.Builder, tok FormatToken) {
	switch tok.directive.kind {
	case dirImmediateNewline:
		b.WriteByte('\n')
	case dirImmediateTab:
		b.WriteByte('\t')
	case dirImmediatePercent:
		b.WriteByte('%')
	}
}

var numericFieldByKind = map[directiveKind]Field{
	dirYearWithCentury: FieldYear,
	dirMonthOfYear:     FieldMonthOfYear,
	dirDayOfMonthZeroPadded: FieldDayOfMonth,
	dirDayOfMonthBlankPadded: FieldDayOfMonth,
	dirHourOfDayZeroPadded: FieldHourOfDay,
	dirHourOfDayBlankPadded: FieldHourOfDay,
	dirMinuteOfHour: FieldMinuteOfHour,
	dirSecondOfMinute: FieldSecondOfMinute,
	dirNanoOfSecond: FieldNanoOfSecond,
}

func renderNumeric(b *strings.Builder, tok FormatToken, t TemporalAccessor) {
	switch tok.directive.kind {
	case dirCentury, dirYearWithoutCentury:
		year, ok := t.GetLong(FieldYear)
		if !ok {
			return
		}
		var v int64
		if tok.directive.kind == dirCentury {
			v = year / 100
		} else {
			v = year % 100
			if v < 0 {
				v += 100
			}
		}
		writePadded(b, v, tok)
		return

	case dirHourOfAmPmZeroPadded, dirHourOfAmPmBlankPadded:
		hour, ok := t.GetLong(FieldHourOfDay)
		if !ok {
			return
		}
		h12 := hour % 12
		if h12 == 0 {
			h12 = 12
		}
		writePadded(b, h12, tok)
		return

	case dirDayOfWeekMondayOne, dirDayOfWeekSundayZero:
		dow, ok := t.GetLong(FieldDayOfWeek)
		if !ok {
			return
		}
		if tok.directive.kind == dirDayOfWeekMondayOne {
			writePadded(b, dow+1, tok)
		} else {
			writePadded(b, (dow+1)%7, tok)
		}
		return

	case dirMilliOfSecond:
		nsec, ok := t.GetLong(FieldNanoOfSecond)
		if !ok {
			return
		}
		writePadded(b, nsec/1_000_000, tok)
		return
	}

	field, known := numericFieldByKind[tok.directive.kind]
	if !known {
		return
	}
	v, ok := t.GetLong(field)
	if !ok {
		return
	}
	writePadded(b, v, tok)
}

func writePadded(b *strings.Builder, v int64, tok FormatToken) {
	width := tok.directive.defaultWidth
	if tok.options.width > 0 {
		width = tok.options.width
	}

	pad := tok.directive.defaultPad
	switch {
	case tok.options.noPad:
		pad = 0
	case tok.options.blankPad:
		pad = ' '
	case tok.options.zeroPad:
		pad = '0'
	}

	neg := v < 0
	if neg {
		v = -v
	}
	digits := fmt.Sprintf("%d", v)

	for pad != 0 && len(digits) < width {
		digits = string(pad) + digits
	}
	if neg {
		digits = "-" + digits
	}
	b.WriteString(digits)
}

func renderTextual(b *strings.Builder, tok FormatToken, t TemporalAccessor) {
	var name string
	switch tok.directive.kind {
	case dirDayOfWeekNameLong, dirDayOfWeekNameShort:
		dow, ok := t.GetLong(FieldDayOfWeek)
		if !ok || dow < 0 || dow > 6 {
			return
		}
		if tok.directive.kind == dirDayOfWeekNameLong {
			name = longDayNames[dow]
		} else {
			name = shortDayNames[dow]
		}
	case dirMonthOfYearFullName, dirMonthOfYearAbbreviatedName:
		month, ok := t.GetLong(FieldMonthOfYear)
		if !ok || month < 1 || month > 12 {
			return
		}
		if tok.directive.kind == dirMonthOfYearFullName {
			name = longMonthNames[month-1]
		} else {
			name = shortMonthNames[month-1]
		}
	case dirAmPmUpper, dirAmPmLower:
		hour, ok := t.GetLong(FieldHourOfDay)
		if !ok {
			return
		}
		ampm := AM
		if hour >= 12 {
			ampm = PM
		}
		if tok.directive.kind == dirAmPmLower {
			name = ampm.lowerString()
		} else {
			name = ampm.String()
		}
	}

	if tok.options.upper {
		name = strings.ToUpper(name)
	} else if tok.options.swapCase {
		name = swapCase(name)
	}
	b.WriteString(name)
}

func swapCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 32)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + 32)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func renderEpoch(b *strings.Builder, tok FormatToken, t TemporalAccessor) {
	sec, ok := t.GetLong(FieldInstantSeconds)
	if !ok {
		return
	}
	if tok.directive.kind == dirSecondsSinceEpoch {
		fmt.Fprintf(b, "%d", sec)
		return
	}

	nsec, _ := t.GetLong(FieldNanoOfSecond)
	millis, underflows, overflows := addInt64(sec*1000, nsec/1_000_000)
	if underflows || overflows {
		return
	}
	fmt.Fprintf(b, "%d", millis)
}

func renderOffset(b *strings.Builder, tok FormatToken, t TemporalAccessor) {
	seconds, ok := t.GetLong(FieldOffsetSeconds)
	if !ok {
		return
	}
	nanos := seconds * int64(Second)

	switch tok.options.colons {
	case 0:
		b.WriteString(offsetStringFixed(nanos, ""))
	case 1:
		b.WriteString(offsetStringFixed(nanos, ":"))
	case 2:
		b.WriteString(offsetStringWithSeconds(nanos, ":"))
	case 3, 4:
		_, _, _, secs := offsetSeconds(nanos)
		if secs == 0 {
			b.WriteString(offsetStringHoursOnly(nanos))
		} else {
			b.WriteString(offsetStringWithSeconds(nanos, ":"))
		}
	default:
		b.WriteString(offsetString(nanos, ":"))
	}
}

// offsetStringFixed renders the fixed 2-field ±HHMM / ±HH:MM form used by
// the 0- and 1-colon %z directives, dropping any seconds component
// entirely rather than conditionally including it.
func offsetStringFixed(o int64, sep string) string {
	if o == 0 {
		return "Z"
	}
	neg, hours, mins, _ := offsetSeconds(o)
	sign := "+"
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d%s%02d", sign, hours, sep, mins)
}

// offsetStringWithSeconds always renders the seconds field, even when zero,
// for the 2-colon %z form.
func offsetStringWithSeconds(o int64, sep string) string {
	if o == 0 {
		return "Z"
	}
	neg, hours, mins, secs := offsetSeconds(o)
	sign := "+"
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%02d%s%02d%s%02d", sign, hours, sep, mins, sep, secs)
}

// offsetStringHoursOnly renders the signed hour component, followed by
// ":MM" only when the minutes are non-zero. It is used by the 3- and
// 4-colon %z forms when the seconds component is zero.
func offsetStringHoursOnly(o int64) string {
	if o == 0 {
		return "Z"
	}
	neg, hours, mins, _ := offsetSeconds(o)
	sign := "+"
	if neg {
		sign = "-"
	}
	if mins == 0 {
		return fmt.Sprintf("%s%02d", sign, hours)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, hours, mins)
}

func renderZone(b *strings.Builder, tok FormatToken, t TemporalAccessor) {
	seconds, ok := t.GetLong(FieldOffsetSeconds)
	if !ok {
		return
	}
	b.WriteString(offsetString(seconds*int64(Second), ":"))
}
