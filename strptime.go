package rubytime

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseUnresolved drives the strptime engine: it consumes input against f's
// compiled tokens and returns the populated accumulator without resolving
// it into a temporal accessor. Use Parse when a TemporalAccessor is wanted
// directly.
func ParseUnresolved(f Format, input string) (*Parsed, error) {
	p := &Parsed{}
	p.SetOriginal(input)

	cursor := 0
	if err := matchTokens(f.Tokens(), input, &cursor, p, f.Tokens()); err != nil {
		return nil, err
	}

	p.SetLeftover(input[cursor:])
	return p, nil
}

func matchTokens(tokens []FormatToken, input string, cursor *int, p *Parsed, root []FormatToken) error {
	for _, tok := range tokens {
		if tok.IsImmediate() {
			if err := matchImmediate(tok.Text(), input, cursor); err != nil {
				return err
			}
			continue
		}

		if tok.directive.class == classRecurred {
			if err := matchTokens(tok.subFormat.Tokens(), input, cursor, p, root); err != nil {
				return err
			}
			continue
		}

		if err := matchDirective(tok, input, cursor, p); err != nil {
			return err
		}
	}
	return nil
}

// matchImmediate matches a literal text run. A run of pattern whitespace
// matches any nonzero run of input whitespace, rather than requiring an
// exact byte match.
func matchImmediate(literal, input string, cursor *int) error {
	li := 0
	for li < len(literal) {
		if isASCIISpace(literal[li]) {
			wsStart := li
			for li < len(literal) && isASCIISpace(literal[li]) {
				li++
			}
			_ = wsStart

			matched := 0
			for *cursor+matched < len(input) && isASCIISpace(input[*cursor+matched]) {
				matched++
			}
			if matched == 0 {
				return newParseError(UnmatchedLiteral, *cursor, literal, input)
			}
			*cursor += matched
			continue
		}

		if *cursor >= len(input) || input[*cursor] != literal[li] {
			return newParseError(UnmatchedLiteral, *cursor, literal, input)
		}
		*cursor++
		li++
	}
	return nil
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

func matchDirective(tok FormatToken, input string, cursor *int, p *Parsed) error {
	switch tok.directive.class {
	case classNumeric:
		return matchNumericDirective(tok, input, cursor, p)
	case classTextual:
		return matchTextualDirective(tok, input, cursor, p)
	case classEpoch:
		return matchEpochDirective(tok, input, cursor, p)
	case classOffset:
		return matchOffsetDirective(tok, input, cursor, p)
	case classZoneName:
		return matchZoneDirective(input, cursor, p)
	case classLiteral:
		return matchLiteralDirective(tok, input, cursor)
	default:
		return nil
	}
}

func matchLiteralDirective(tok FormatToken, input string, cursor *int) error {
	var text string
	switch tok.directive.kind {
	case dirImmediateNewline:
		text = "\n"
	case dirImmediateTab:
		text = "\t"
	case dirImmediatePercent:
		text = "%"
	}
	return matchImmediate(text, input, cursor)
}

// readDigitRun consumes up to maxWidth ASCII digits (an optional leading
// sign first, if allowSign), returning the substring consumed. maxWidth <=
// 0 means unbounded.
func readDigitRun(input string, cursor *int, maxWidth int, allowSign bool) string {
	start := *cursor
	i := *cursor
	if allowSign && i < len(input) && (input[i] == '+' || input[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(input) && (maxWidth <= 0 || i-digitsStart < maxWidth) && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	if i == digitsStart {
		// No digits consumed; back out any sign we tentatively ate.
		*cursor = start
		return ""
	}
	*cursor = i
	return input[start:i]
}

func matchNumericDirective(tok FormatToken, input string, cursor *int, p *Parsed) error {
	width := tok.directive.defaultWidth
	if tok.options.width > 0 {
		width = tok.options.width
	}
	allowSign := tok.directive.kind == dirYearWithCentury

	digits := readDigitRun(input, cursor, width, allowSign)
	if digits == "" {
		return newParseError(ExpectedDigits, *cursor, tok.rawText, input)
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return newParseError(NumericOverflow, *cursor, tok.rawText, input)
	}

	switch tok.directive.kind {
	case dirYearWithCentury:
		p.SetYearWithCentury(v)
	case dirCentury:
		p.SetCentury(v)
	case dirYearWithoutCentury:
		p.SetYearWithoutCentury(v)
	case dirMonthOfYear:
		p.SetMonth(int(v))
	case dirDayOfMonthZeroPadded, dirDayOfMonthBlankPadded:
		p.SetDayOfMonth(int(v))
	case dirHourOfDayZeroPadded, dirHourOfDayBlankPadded:
		p.SetHour(int(v))
	case dirHourOfAmPmZeroPadded, dirHourOfAmPmBlankPadded:
		p.SetHour(int(v) % 12)
	case dirMinuteOfHour:
		p.SetMinute(int(v))
	case dirSecondOfMinute:
		p.SetSecond(int(v))
	case dirMilliOfSecond:
		p.SetMilliOfSecond(scaleDigitsTo(digits, 3))
	case dirNanoOfSecond:
		p.SetNanoOfSecond(scaleDigitsTo(digits, 9))
	case dirDayOfWeekMondayOne:
		p.SetDayOfWeek(int(v) - 1)
	case dirDayOfWeekSundayZero:
		p.SetDayOfWeek((int(v) + 6) % 7)
	case dirWeekBasedYearWithCentury:
		p.SetWeekBasedYearWithCentury(v)
	case dirWeekBasedYearWithoutCentury:
		p.SetWeekBasedYearWithoutCentury(v)
	case dirWeekOfWeekBasedYear, dirWeekOfYearStartingSunday, dirWeekOfYearStartingMonday:
		p.SetWeekOfYear(int(v))
	}
	return nil
}

// scaleDigitsTo truncates or scales a digit run to represent a fraction
// with denominator 10^precision, matching the reference's truncate-not-
// round behavior for %N/%L (digits beyond precision are dropped; shorter
// runs are scaled up).
func scaleDigitsTo(digits string, precision int) int {
	if len(digits) > precision {
		digits = digits[:precision]
	}
	v, _ := strconv.Atoi(digits)
	for i := len(digits); i < precision; i++ {
		v *= 10
	}
	return v
}

var amPmNames = map[string]AmPm{
	"AM": AM, "A.M.": AM, "PM": PM, "P.M.": PM,
}

func matchTextualDirective(tok FormatToken, input string, cursor *int, p *Parsed) error {
	switch tok.directive.kind {
	case dirDayOfWeekNameLong, dirDayOfWeekNameShort:
		idx, n, ok := matchNamePrefix(input[*cursor:], longDayNames[:])
		if !ok {
			return newParseError(UnmatchedLiteral, *cursor, tok.rawText, input)
		}
		*cursor += n
		p.SetDayOfWeek(idx)
	case dirMonthOfYearFullName, dirMonthOfYearAbbreviatedName:
		idx, n, ok := matchNamePrefix(input[*cursor:], longMonthNames[:])
		if !ok {
			return newParseError(UnmatchedLiteral, *cursor, tok.rawText, input)
		}
		*cursor += n
		p.SetMonth(idx + 1)
	case dirAmPmUpper, dirAmPmLower:
		rest := input[*cursor:]
		matchedLen := 0
		var value AmPm
		found := false
		for name, v := range amPmNames {
			if len(rest) >= len(name) && strings.EqualFold(rest[:len(name)], name) {
				if len(name) > matchedLen {
					matchedLen, value, found = len(name), v, true
				}
			}
		}
		if !found {
			return newParseError(UnmatchedLiteral, *cursor, tok.rawText, input)
		}
		*cursor += matchedLen
		p.SetAmPm(value)
	}
	return nil
}

// matchNamePrefix performs the case-insensitive, prefix-match lookup the
// reference allows for weekday/month names: a candidate matches either when
// it's a genuine case-insensitive prefix of the input run (or vice versa,
// e.g. "Jan" -> January), or, as a narrow documented quirk, when the input
// run is the same length as the candidate and differs only in its final
// letter ("Januari" -> January, "Sundai" -> Sunday). A minimum of 3 letters
// is always required. consumed is the length of input matched: the common
// prefix for a true prefix match, or the full (equal-length) word for the
// near-miss typo quirk, so the mismatched trailing letter is consumed too
// rather than left for the next token to choke on.
func matchNamePrefix(input string, candidates []string) (index int, consumed int, ok bool) {
	letterRun := 0
	for letterRun < len(input) && unicode.IsLetter(rune(input[letterRun])) {
		letterRun++
	}
	if letterRun == 0 {
		return 0, 0, false
	}
	word := input[:letterRun]

	bestIdx, bestLen, bestConsumed := -1, 0, 0
	for i, name := range candidates {
		if name == "" {
			continue
		}
		limit := len(name)
		if len(word) < limit {
			limit = len(word)
		}
		common := 0
		for common < limit && asciiEqualFold(word[common], name[common]) {
			common++
		}
		if common < 3 {
			continue
		}

		isPrefix := common == len(word) || common == len(name)
		isNearMiss := len(word) == len(name) && common == len(name)-1
		if !isPrefix && !isNearMiss {
			continue
		}

		consumedLen := common
		if isNearMiss {
			consumedLen = len(word)
		}

		if common > bestLen {
			bestIdx, bestLen, bestConsumed = i, common, consumedLen
		}
	}
	if bestIdx < 0 {
		return 0, 0, false
	}
	return bestIdx, bestConsumed, true
}

// asciiEqualFold reports whether a and b are the same ASCII letter
// regardless of case.
func asciiEqualFold(a, b byte) bool {
	if 'A' <= a && a <= 'Z' {
		a += 'a' - 'A'
	}
	if 'A' <= b && b <= 'Z' {
		b += 'a' - 'A'
	}
	return a == b
}

func matchEpochDirective(tok FormatToken, input string, cursor *int, p *Parsed) error {
	digits := readDigitRun(input, cursor, 0, true)
	if digits == "" {
		return newParseError(ExpectedDigits, *cursor, tok.rawText, input)
	}
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return newParseError(NumericOverflow, *cursor, tok.rawText, input)
	}
	if tok.directive.kind == dirSecondsSinceEpoch {
		p.SetInstantSeconds(v, strings.HasPrefix(digits, "-"))
	} else {
		p.SetInstantMillis(v)
	}
	return nil
}

// isOffsetChar reports whether b is in the character set a %z field may
// consume.
func isOffsetChar(b byte) bool {
	return b == '+' || b == '-' || b == ':' || b == 'Z' || b == 'z' || (b >= '0' && b <= '9')
}

func matchOffsetDirective(tok FormatToken, input string, cursor *int, p *Parsed) error {
	start := *cursor
	i := *cursor
	for i < len(input) && isOffsetChar(input[i]) {
		i++
	}
	if i == start {
		return newParseError(UnrecognizedZone, *cursor, tok.rawText, input)
	}
	text := input[start:i]

	seconds, ok, err := parseOffsetText(text)
	if err != nil {
		return err
	}
	if !ok {
		return newParseError(UnrecognizedZone, start, tok.rawText, input)
	}
	*cursor = i
	p.SetOffsetSeconds(seconds)
	return nil
}

func matchZoneDirective(input string, cursor *int, p *Parsed) error {
	start := *cursor
	end := start
	for end < len(input) && (unicode.IsLetter(rune(input[end])) || input[end] == '.' || input[end] == ' ' || input[end] == '+' || input[end] == '-' || (input[end] >= '0' && input[end] <= '9') || input[end] == ':') {
		end++
	}
	for end > start {
		candidate := strings.TrimRight(input[start:end], " ")
		if candidate == "" {
			end--
			continue
		}
		if seconds, ok, err := parseOffsetText(candidate); err == nil && ok {
			*cursor = start + len(candidate)
			p.SetZoneText(candidate, seconds)
			return nil
		}
		end--
	}
	return newParseError(UnrecognizedZone, start, "%Z", input)
}
