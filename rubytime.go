// Package rubytime parses and formats date-time strings using the
// directive language of Ruby's strftime/strptime family, reproducing the
// reference implementation's zone-abbreviation table, epoch directives,
// and out-of-range quirks (leap seconds, hour 24, prefix-matched month and
// weekday names).
package rubytime

// Parse matches input against f and resolves the result into a
// TemporalAccessor, using opts to fill in any field the input left
// unspecified (principally the offset, which defaults to UTC).
func Parse(f Format, input string, opts ResolverOptions) (TemporalAccessor, error) {
	parsed, err := ParseUnresolved(f, input)
	if err != nil {
		return nil, err
	}
	return Resolve(parsed, opts)
}

// ResolveOffset parses a standalone offset or zone name/abbreviation
// string and returns its value in seconds. ok is false if s is neither a
// numeric offset nor a recognized zone name.
func ResolveOffset(s string) (seconds int32, ok bool) {
	v, matched, err := parseOffsetText(s)
	if err != nil || !matched {
		return 0, false
	}
	return int32(v), true
}
