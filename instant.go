package rubytime

import "fmt"

// Instant represents an instantaneous point on the timeline as a signed
// count of seconds since the Unix epoch, plus a nanosecond-of-second
// fraction. It is the accessor produced by resolve.go when a Parsed carries
// %s/%Q (epoch) fields rather than calendar fields.
type Instant struct {
	sec  int64
	nsec int32
}

// InstantOf returns the Instant representing secs seconds and nsec
// nanoseconds since the Unix epoch. nsec is normalized into [0, 1e9) using
// Euclidean division, so InstantOf(-1, -500000000) and InstantOf(-2,
// 500000000) both produce the same value, matching the Euclidean modulus
// spec.md requires for %Q.
func InstantOf(secs int64, nsec int64) Instant {
	s := secs + floorDiv(nsec, 1_000_000_000)
	n := euclideanMod(nsec, 1_000_000_000)
	return Instant{sec: s, nsec: int32(n)}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func euclideanMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Seconds returns the epoch-seconds component of i.
func (i Instant) Seconds() int64 { return i.sec }

// Nanoseconds returns the nanosecond-of-second component of i, in [0, 1e9).
func (i Instant) Nanoseconds() int32 { return i.nsec }

func (i Instant) String() string {
	if i.nsec == 0 {
		return fmt.Sprintf("%d", i.sec)
	}
	return fmt.Sprintf("%d.%09d", i.sec, i.nsec)
}

// GetLong implements TemporalAccessor.
func (i Instant) GetLong(f Field) (int64, bool) {
	switch f {
	case FieldInstantSeconds:
		return i.sec, true
	case FieldNanoOfSecond:
		return int64(i.nsec), true
	case FieldOffsetSeconds:
		return 0, true
	default:
		return 0, false
	}
}

// IsSupported implements TemporalAccessor.
func (i Instant) IsSupported(f Field) bool {
	switch f {
	case FieldInstantSeconds, FieldNanoOfSecond, FieldOffsetSeconds:
		return true
	default:
		return false
	}
}
