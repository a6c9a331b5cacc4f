package rubytime

import (
	"strconv"
	"strings"
)

// unresolvedOffset is an INT_MIN value for "not an offset". Nothing in the
// package produces it: parseOffsetText reports "not an offset" through its
// ok=false return instead.
const unresolvedOffset = int64(-1) << 63

// parseOffsetText decodes an offset string against the grammars of
// spec.md §4.C, trying each in order and returning the first match. ok is
// false only for the final "not an offset" case; a malformed fraction is
// reported through err instead; offset text that the runtime cannot
// resolve to an offset but superficially looks numeric still returns
// ok=false so callers can distinguish "wrong shape" from "bad precision".
func parseOffsetText(s string) (offset int64, ok bool, err error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false, nil
	}

	if trimmed == "Z" || trimmed == "z" {
		return 0, true, nil
	}

	if v, ok := parseSignedDigitRun(trimmed); ok {
		return v, true, nil
	}

	if v, ok := parseColonOffset(trimmed); ok {
		return v, true, nil
	}

	if v, ok, perr := parseUTCOrGMTOffset(trimmed); perr != nil {
		return 0, false, perr
	} else if ok {
		return v, true, nil
	}

	if v, ok := lookupZone(trimmed); ok {
		return v, true, nil
	}

	return 0, false, nil
}

// parseSignedDigitRun implements grammar 2 of §4.C: a single sign character
// followed by 1-9 decimal digits, interpreted as hours (1-2 digits), HHMM
// (3-4), or HHMMSS (5-6). Runs longer than 6 digits are rejected.
func parseSignedDigitRun(s string) (int64, bool) {
	if len(s) < 2 {
		return 0, false
	}
	sign := int64(1)
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	digits := s[1:]
	if len(digits) == 0 || len(digits) > 6 {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	var hours, mins, secs int64
	switch len(digits) {
	case 1, 2:
		h, _ := strconv.ParseInt(digits, 10, 64)
		hours = h
	case 3, 4:
		padded := leftPad(digits, 4)
		h, _ := strconv.ParseInt(padded[0:2], 10, 64)
		m, _ := strconv.ParseInt(padded[2:4], 10, 64)
		hours, mins = h, m
	case 5, 6:
		padded := leftPad(digits, 6)
		h, _ := strconv.ParseInt(padded[0:2], 10, 64)
		m, _ := strconv.ParseInt(padded[2:4], 10, 64)
		sec, _ := strconv.ParseInt(padded[4:6], 10, 64)
		hours, mins, secs = h, m, sec
	}

	total := hours*3600 + mins*60 + secs
	if total >= 86400 {
		return 0, false
	}
	return sign * total, true
}

func leftPad(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// parseColonOffset implements grammar 3: ±HH:MM[:SS].
func parseColonOffset(s string) (int64, bool) {
	sign := int64(1)
	rest := s
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		sign = -1
		rest = rest[1:]
	}

	parts := strings.Split(rest, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, false
	}
	var nums [3]int64
	for i, p := range parts {
		if len(p) == 0 || len(p) > 2 {
			return 0, false
		}
		for j := 0; j < len(p); j++ {
			if p[j] < '0' || p[j] > '9' {
				return 0, false
			}
		}
		v, _ := strconv.ParseInt(p, 10, 64)
		nums[i] = v
	}

	total := nums[0]*3600 + nums[1]*60 + nums[2]
	if total >= 86400 {
		return 0, false
	}
	return sign * total, true
}

// fractionDenominators is the finite set of negative powers of two the
// reference runtime recognizes for a UTC±N.fffff fractional hour, from
// 2^-1 (0.5) down to 2^-8 (0.00390625).
var fractionDenominators = [8]int64{2, 4, 8, 16, 32, 64, 128, 256}

// parseUTCOrGMTOffset implements grammar 4: a UTC/GMT prefix, optional
// sign, then an hour run optionally followed by a fractional hour.
func parseUTCOrGMTOffset(s string) (int64, bool, error) {
	upper := strings.ToUpper(s)
	var rest string
	switch {
	case strings.HasPrefix(upper, "UTC"):
		rest = strings.TrimSpace(s[3:])
	case strings.HasPrefix(upper, "GMT"):
		rest = strings.TrimSpace(s[3:])
	default:
		return 0, false, nil
	}
	if rest == "" {
		return 0, true, nil
	}

	sign := int64(1)
	switch rest[0] {
	case '+':
		rest = rest[1:]
	case '-':
		sign = -1
		rest = rest[1:]
	}
	if rest == "" {
		return 0, false, nil
	}

	if v, ok := parseColonOffset(rest); ok {
		if sign < 0 {
			return -v, true, nil
		}
		return v, true, nil
	}

	dot := strings.IndexByte(rest, '.')
	var wholePart, fracPart string
	if dot < 0 {
		wholePart = rest
	} else {
		wholePart, fracPart = rest[:dot], rest[dot+1:]
	}

	if wholePart == "" || !isAllDigits(wholePart) {
		return 0, false, nil
	}
	hours, _ := strconv.ParseInt(wholePart, 10, 64)

	var fracSeconds int64
	if fracPart != "" {
		if !isAllDigits(fracPart) {
			return 0, false, nil
		}
		frac, matched, err := decodeBinaryFraction(fracPart)
		if err != nil {
			return 0, false, err
		}
		if !matched {
			return 0, false, nil
		}
		fracSeconds = int64(frac * 3600)
	}

	total := hours*3600 + fracSeconds
	if total >= 86400 {
		return 0, false, nil
	}
	return sign * total, true, nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// decodeBinaryFraction matches a decimal fraction string against the sum of
// negative powers of two the reference recognizes (0.5, 0.25, ..., down to
// 2^-8), to a tolerance of 1e-9. If the fraction cannot be
// expressed exactly within that set, it returns a FractionTooPrecise error.
func decodeBinaryFraction(digits string) (value float64, matched bool, err error) {
	want, convErr := strconv.ParseFloat("0."+digits, 64)
	if convErr != nil {
		return 0, false, nil
	}

	var sum float64
	remaining := want
	const epsilon = 1e-9
	for _, denom := range fractionDenominators {
		step := 1.0 / float64(denom)
		if remaining+epsilon >= step {
			sum += step
			remaining -= step
		}
	}

	if remaining > epsilon {
		return 0, false, newParseError(FractionTooPrecise, 0, "", digits)
	}
	return sum, true, nil
}
