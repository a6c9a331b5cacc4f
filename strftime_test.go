package rubytime_test

import (
	"testing"

	"github.com/go-rubytime/rubytime"
)

func TestFormatTemporalBasic(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 13, 45, 30, 0, 0, 0)
	f := rubytime.Compile("%Y-%m-%dT%H:%M:%S")
	if got, want := rubytime.FormatTemporal(f, odt), "2021-03-05T13:45:30"; got != want {
		t.Errorf("FormatTemporal() = %q, want %q", got, want)
	}
}

func TestFormatTemporalDayOfWeek(t *testing.T) {
	// 2021-03-05 is a Friday.
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 13, 45, 30, 0, 0, 0)
	for _, tt := range []struct {
		pattern string
		want    string
	}{
		{"%A", "Friday"},
		{"%a", "Fri"},
		{"%u", "5"},
		{"%w", "5"},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			f := rubytime.Compile(tt.pattern)
			if got := rubytime.FormatTemporal(f, odt); got != tt.want {
				t.Errorf("FormatTemporal(%s) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatTemporalOffsetColonVariants(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 13, 45, 30, 0, 9, 30)
	for _, tt := range []struct {
		pattern string
		want    string
	}{
		{"%z", "+0930"},
		{"%:z", "+09:30"},
		{"%::z", "+09:30:00"},
		{"%:::z", "+09:30"},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			f := rubytime.Compile(tt.pattern)
			if got := rubytime.FormatTemporal(f, odt); got != tt.want {
				t.Errorf("FormatTemporal(%s) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatTemporalOffsetColonVariantsZeroSeconds(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 13, 45, 30, 0, 9, 0)
	f := rubytime.Compile("%:::z")
	if got, want := rubytime.FormatTemporal(f, odt), "+09"; got != want {
		t.Errorf("FormatTemporal(%%:::z) = %q, want %q", got, want)
	}
}

func TestFormatTemporalOffsetFixedFormsDropSeconds(t *testing.T) {
	date := rubytime.LocalDateOf(2021, rubytime.March, 5)
	tm := rubytime.LocalTimeOf(13, 45, 30, 0)
	offset := rubytime.OffsetFromSeconds(9*3600 + 30*60 + 45)
	odt := rubytime.OfLocalDateTimeOffset(date, tm, offset)
	for _, tt := range []struct {
		pattern string
		want    string
	}{
		{"%z", "+0930"},
		{"%:z", "+09:30"},
		{"%::z", "+09:30:45"},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			f := rubytime.Compile(tt.pattern)
			if got := rubytime.FormatTemporal(f, odt); got != tt.want {
				t.Errorf("FormatTemporal(%s) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatTemporalUTCOffsetRendersZ(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 13, 45, 30, 0, 0, 0)
	for _, pattern := range []string{"%z", "%:z", "%::z"} {
		t.Run(pattern, func(t *testing.T) {
			f := rubytime.Compile(pattern)
			if got, want := rubytime.FormatTemporal(f, odt), "Z"; got != want {
				t.Errorf("FormatTemporal(%s) = %q, want %q", pattern, got, want)
			}
		})
	}
}

func TestFormatTemporalEpochSeconds(t *testing.T) {
	i := rubytime.InstantOf(1500000000, 123456789)
	f := rubytime.Compile("%s")
	if got, want := rubytime.FormatTemporal(f, i), "1500000000"; got != want {
		t.Errorf("FormatTemporal(%%s) = %q, want %q", got, want)
	}
}

func TestFormatTemporalEpochMillis(t *testing.T) {
	i := rubytime.InstantOf(1500000000, 123456789)
	f := rubytime.Compile("%Q")
	if got, want := rubytime.FormatTemporal(f, i), "1500000000123"; got != want {
		t.Errorf("FormatTemporal(%%Q) = %q, want %q", got, want)
	}
}

func TestFormatTemporalUnavailableFieldRendersEmpty(t *testing.T) {
	i := rubytime.InstantOf(0, 0)
	f := rubytime.Compile("[%Y]")
	if got, want := rubytime.FormatTemporal(f, i), "[]"; got != want {
		t.Errorf("FormatTemporal(%%Y) on Instant = %q, want %q", got, want)
	}
}

func TestFormatTemporalDayOfWeekSupportedOnOffsetDateTime(t *testing.T) {
	// 2021-03-05 is a Friday.
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 13, 45, 30, 0, 0, 0)
	f := rubytime.Compile("<%A>")
	if got, want := rubytime.FormatTemporal(f, odt), "<Friday>"; got != want {
		t.Errorf("FormatTemporal(%%A) = %q, want %q", got, want)
	}
}

func TestFormatTemporalDayOfWeekUnsupportedOnInstantRendersEmpty(t *testing.T) {
	i := rubytime.InstantOf(0, 0)
	f := rubytime.Compile("<%A>")
	if got, want := rubytime.FormatTemporal(f, i), "<>"; got != want {
		t.Errorf("FormatTemporal(%%A) on Instant = %q, want %q", got, want)
	}
}

func TestFormatTemporalZeroPadding(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 1, 2, 3, 0, 0, 0)
	f := rubytime.Compile("%H:%M:%S")
	if got, want := rubytime.FormatTemporal(f, odt), "01:02:03"; got != want {
		t.Errorf("FormatTemporal() = %q, want %q", got, want)
	}
}

func TestFormatTemporalExplicitWidth(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(9, rubytime.March, 5, 1, 2, 3, 0, 0, 0)
	f := rubytime.Compile("%4Y")
	if got, want := rubytime.FormatTemporal(f, odt), "0009"; got != want {
		t.Errorf("FormatTemporal(%%4Y) = %q, want %q", got, want)
	}
}

func TestFormatTemporalLiteralPercent(t *testing.T) {
	odt := rubytime.OffsetDateTimeOf(2021, rubytime.March, 5, 1, 2, 3, 0, 0, 0)
	f := rubytime.Compile("100%%")
	if got, want := rubytime.FormatTemporal(f, odt), "100%"; got != want {
		t.Errorf("FormatTemporal(100%%%%) = %q, want %q", got, want)
	}
}
