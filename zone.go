package rubytime

import "strings"

// zoneOffsets is the static, case-sensitive-after-normalization zone
// abbreviation table. It is built once at package init and never mutated
// afterward, matching the "zone tables are read-only after load" contract.
var zoneOffsets = buildZoneTable()

func buildZoneTable() map[string]int64 {
	m := map[string]int64{
		"UT":  0,
		"GMT": 0,
		"UTC": 0,
		"Z":   0,

		"EST": -5 * 3600,
		"EDT": -4 * 3600,
		"CST": -6 * 3600,
		"CDT": -5 * 3600,
		"MST": -7 * 3600,
		"MDT": -6 * 3600,
		"PST": -8 * 3600,
		"PDT": -7 * 3600,

		"AKST": -9 * 3600,
		"AKDT": -8 * 3600,
		"HST":  -10 * 3600,
		"HAST": -10 * 3600,
		"HDT":  -9 * 3600,
		"HADT": -9 * 3600,

		"NST":  int64(-3*3600 - 1800),
		"NDT":  int64(-2*3600 - 1800),
		"AST":  -4 * 3600,
		"ADT":  -3 * 3600,

		"IST": 5*3600 + 1800,
		"JST": 9 * 3600,
		"KST": 9 * 3600,
		"MSK": 3 * 3600,
		"MSD": 4 * 3600,
		"SGT": 8 * 3600,

		"IDLE": 12 * 3600,
		"NZT":  12 * 3600,
		"NZST": 12 * 3600,
		"NZDT": 13 * 3600,
		"EADT": 11 * 3600,

		"WET":  0,
		"WEST": 1 * 3600,
		"CET":  1 * 3600,
		"CEST": 2 * 3600,
		"EET":  2 * 3600,
		"EEST": 3 * 3600,
		"BST":  1 * 3600,

		"AUS CENTRAL":     int64(9*3600 + 1800),
		"CEN. AUSTRALIA":  int64(9*3600 + 1800),
		"CENTRAL PACIFIC": 11 * 3600,
		"E. SOUTH AMERICA": -3 * 3600,
		"MALAY PENINSULA": 8 * 3600,
		"PACIFIC":         -8 * 3600,
	}

	// Military alphabet zones: A..M (skipping J) are +1h..+12h, N..Y are
	// -1h..-12h. Z is in the table above; J is not in the table.
	for i, c := 0, byte('A'); c <= 'I'; i, c = i+1, c+1 {
		m[string(c)] = int64(i+1) * 3600
	}
	for i, c := 0, byte('K'); c <= 'M'; i, c = i+1, c+1 {
		m[string(c)] = int64(i+10) * 3600
	}
	for i, c := 0, byte('N'); c <= 'Y'; i, c = i+1, c+1 {
		m[string(c)] = -int64(i+1) * 3600
	}

	return m
}

// normalizeZoneText upper-cases s, collapses internal whitespace runs to a
// single space, and strips leading/trailing whitespace, matching the
// normalization required before any zone-table lookup.
func normalizeZoneText(s string) string {
	fields := strings.Fields(s)
	return strings.ToUpper(strings.Join(fields, " "))
}

// daylightSuffixes lists the trailing suffixes %Z acceptance strips before
// a second lookup attempt, in whitespace-normalized (single-space) form.
var daylightSuffixes = []string{
	"DAYLIGHT TIME",
	"STANDARD TIME",
	"DUMMY TIME",
	"DST",
}

// stripDaylightSuffix removes a recognized trailing suffix from a
// normalized zone string, returning the trimmed prefix and whether a
// suffix was found.
func stripDaylightSuffix(normalized string) (string, bool) {
	for _, suffix := range daylightSuffixes {
		if strings.HasSuffix(normalized, suffix) {
			prefix := strings.TrimSpace(strings.TrimSuffix(normalized, suffix))
			if prefix != "" {
				return prefix, true
			}
		}
	}
	return normalized, false
}

// lookupZone resolves a raw zone name to an offset in seconds. It tries the
// normalized text directly, then again with a recognized daylight/standard
// suffix stripped, matching the reference %Z acceptor.
func lookupZone(raw string) (int64, bool) {
	normalized := normalizeZoneText(raw)
	if v, ok := zoneOffsets[normalized]; ok {
		return v, true
	}
	if prefix, stripped := stripDaylightSuffix(normalized); stripped {
		if v, ok := zoneOffsets[prefix]; ok {
			return v, true
		}
	}
	return 0, false
}
