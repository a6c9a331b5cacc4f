package rubytime

// directiveKind names a symbolic directive, independent of which specifier
// letter or flags produced it.
type directiveKind int

const (
	dirYearWithCentury directiveKind = iota
	dirCentury
	dirYearWithoutCentury
	dirMonthOfYear
	dirDayOfMonthZeroPadded
	dirDayOfMonthBlankPadded
	dirHourOfDayZeroPadded
	dirHourOfDayBlankPadded
	dirHourOfAmPmZeroPadded
	dirHourOfAmPmBlankPadded
	dirAmPmUpper
	dirAmPmLower
	dirMinuteOfHour
	dirSecondOfMinute
	dirMilliOfSecond
	dirNanoOfSecond
	dirTimeOffset
	dirTimeZoneName
	dirDayOfWeekNameLong
	dirDayOfWeekNameShort
	dirDayOfWeekMondayOne
	dirDayOfWeekSundayZero
	dirWeekBasedYearWithCentury
	dirWeekBasedYearWithoutCentury
	dirWeekOfWeekBasedYear
	dirWeekOfYearStartingSunday
	dirWeekOfYearStartingMonday
	dirSecondsSinceEpoch
	dirMillisecondsSinceEpoch
	dirMonthOfYearFullName
	dirMonthOfYearAbbreviatedName
	dirRecurred
	dirImmediateNewline
	dirImmediateTab
	dirImmediatePercent
)

// directiveClass says how the strptime/strftime engines must treat a
// directive: what it consumes on parse, and how it's sourced on format.
type directiveClass int

const (
	classNumeric directiveClass = iota
	classTextual
	classEpoch
	classOffset
	classZoneName
	classLiteral
	classRecurred
)

// directiveInfo is the static metadata the directive table returns for a
// specifier letter: its kind, parse/format class, default padding, and
// default field width.
type directiveInfo struct {
	kind         directiveKind
	class        directiveClass
	defaultPad   byte // '0' or ' ', 0 if not applicable
	defaultWidth int
	formatterOnly bool // has effectively no parse meaning outside %:::: z
}

// recurredExpansions maps a recurred directive letter to the literal
// sub-pattern it inlines into before compilation continues, per the
// reference runtime's fixed table.
var recurredExpansions = map[byte]string{
	'c': "%a %b %e %H:%M:%S %Y",
	'D': "%m/%d/%y",
	'x': "%m/%d/%y",
	'F': "%Y-%m-%d",
	'R': "%H:%M",
	'r': "%I:%M:%S %p",
	'T': "%H:%M:%S",
	'X': "%H:%M:%S",
	'v': "%e-%b-%Y",
	'+': "%a %b %e %H:%M:%S %Z %Y",
}

// directiveTable maps a specifier letter to its directiveInfo. Letters not
// present here are not recognized directives at all; the compiler falls
// back to treating the whole sequence as a literal.
var directiveTable = map[byte]directiveInfo{
	'Y': {kind: dirYearWithCentury, class: classNumeric, defaultPad: '0', defaultWidth: 4},
	'C': {kind: dirCentury, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'y': {kind: dirYearWithoutCentury, class: classNumeric, defaultPad: '0', defaultWidth: 2},

	'm': {kind: dirMonthOfYear, class: classNumeric, defaultPad: '0', defaultWidth: 2},

	'd': {kind: dirDayOfMonthZeroPadded, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'e': {kind: dirDayOfMonthBlankPadded, class: classNumeric, defaultPad: ' ', defaultWidth: 2},

	'H': {kind: dirHourOfDayZeroPadded, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'k': {kind: dirHourOfDayBlankPadded, class: classNumeric, defaultPad: ' ', defaultWidth: 2},
	'I': {kind: dirHourOfAmPmZeroPadded, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'l': {kind: dirHourOfAmPmBlankPadded, class: classNumeric, defaultPad: ' ', defaultWidth: 2},

	'P': {kind: dirAmPmLower, class: classTextual},
	'p': {kind: dirAmPmUpper, class: classTextual},

	'M': {kind: dirMinuteOfHour, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'S': {kind: dirSecondOfMinute, class: classNumeric, defaultPad: '0', defaultWidth: 2},

	'L': {kind: dirMilliOfSecond, class: classNumeric, defaultPad: '0', defaultWidth: 3},
	'N': {kind: dirNanoOfSecond, class: classNumeric, defaultPad: '0', defaultWidth: 9},

	'z': {kind: dirTimeOffset, class: classOffset},
	'Z': {kind: dirTimeZoneName, class: classZoneName},

	'A': {kind: dirDayOfWeekNameLong, class: classTextual},
	'a': {kind: dirDayOfWeekNameShort, class: classTextual},
	'u': {kind: dirDayOfWeekMondayOne, class: classNumeric, defaultPad: '0', defaultWidth: 1},
	'w': {kind: dirDayOfWeekSundayZero, class: classNumeric, defaultPad: '0', defaultWidth: 1},

	'G': {kind: dirWeekBasedYearWithCentury, class: classNumeric, defaultPad: '0', defaultWidth: 4},
	'g': {kind: dirWeekBasedYearWithoutCentury, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'V': {kind: dirWeekOfWeekBasedYear, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'U': {kind: dirWeekOfYearStartingSunday, class: classNumeric, defaultPad: '0', defaultWidth: 2},
	'W': {kind: dirWeekOfYearStartingMonday, class: classNumeric, defaultPad: '0', defaultWidth: 2},

	's': {kind: dirSecondsSinceEpoch, class: classEpoch, defaultWidth: 0},
	'Q': {kind: dirMillisecondsSinceEpoch, class: classEpoch, defaultWidth: 0},

	'B': {kind: dirMonthOfYearFullName, class: classTextual},
	'b': {kind: dirMonthOfYearAbbreviatedName, class: classTextual},
	'h': {kind: dirMonthOfYearAbbreviatedName, class: classTextual},

	'n': {kind: dirImmediateNewline, class: classLiteral},
	't': {kind: dirImmediateTab, class: classLiteral},
	'%': {kind: dirImmediatePercent, class: classLiteral},

	'c': {kind: dirRecurred, class: classRecurred},
	'D': {kind: dirRecurred, class: classRecurred},
	'x': {kind: dirRecurred, class: classRecurred},
	'F': {kind: dirRecurred, class: classRecurred},
	'R': {kind: dirRecurred, class: classRecurred},
	'r': {kind: dirRecurred, class: classRecurred},
	'T': {kind: dirRecurred, class: classRecurred},
	'X': {kind: dirRecurred, class: classRecurred},
	'v': {kind: dirRecurred, class: classRecurred},
	'+': {kind: dirRecurred, class: classRecurred},
}

// acceptsEOModifier reports whether a specifier letter tolerates a trailing
// E/O modifier as a no-op, rather than degrading the directive to a literal.
// The reference runtime accepts E/O on most calendar and clock fields.
func acceptsEOModifier(specifier byte) bool {
	switch specifier {
	case 'Y', 'C', 'y', 'm', 'd', 'e', 'H', 'k', 'I', 'l', 'M', 'S', 'u', 'w', 'G', 'g', 'V', 'U', 'W':
		return true
	default:
		return false
	}
}

// acceptsColonModifier reports whether a specifier accepts one or more
// leading colons; only %z does, per spec.
func acceptsColonModifier(specifier byte) bool {
	return specifier == 'z'
}
