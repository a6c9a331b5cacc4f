package rubytime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-rubytime/rubytime"
)

func resolve(t *testing.T, pattern, input string, opts rubytime.ResolverOptions) rubytime.TemporalAccessor {
	t.Helper()
	f := rubytime.Compile(pattern)
	acc, err := rubytime.Parse(f, input, opts)
	require.NoError(t, err)
	return acc
}

func TestResolveEpochSecondsWithNanoFraction(t *testing.T) {
	acc := resolve(t, "%s.%N", "1500000000.123456789", rubytime.ResolverOptions{})
	sec, ok := acc.GetLong(rubytime.FieldInstantSeconds)
	require.True(t, ok)
	assert.EqualValues(t, 1500000000, sec)
	nsec, ok := acc.GetLong(rubytime.FieldNanoOfSecond)
	require.True(t, ok)
	assert.EqualValues(t, 123456789, nsec)
}

func TestResolveEpochMillisPlusNanoFractionSums(t *testing.T) {
	acc := resolve(t, "%Q.%N", "1500000000456.111111111", rubytime.ResolverOptions{})
	sec, ok := acc.GetLong(rubytime.FieldInstantSeconds)
	require.True(t, ok)
	assert.EqualValues(t, 1500000000, sec)
	nsec, ok := acc.GetLong(rubytime.FieldNanoOfSecond)
	require.True(t, ok)
	assert.EqualValues(t, 567111111, nsec)
}

func TestResolveWeekBasedYearCenturyCompletion(t *testing.T) {
	// ISO week 1 of 2021, Monday, is 2021-01-04.
	acc := resolve(t, "%g-W%V-%u", "21-W01-1", rubytime.ResolverOptions{})
	year, ok := acc.GetLong(rubytime.FieldYear)
	require.True(t, ok)
	assert.EqualValues(t, 2021, year)
	month, ok := acc.GetLong(rubytime.FieldMonthOfYear)
	require.True(t, ok)
	assert.EqualValues(t, 1, month)
	day, ok := acc.GetLong(rubytime.FieldDayOfMonth)
	require.True(t, ok)
	assert.EqualValues(t, 4, day)
}

func TestResolveNegativeEpochSecondsWithFractionFloors(t *testing.T) {
	acc := resolve(t, "%s.%N", "-1.5", rubytime.ResolverOptions{})
	sec, ok := acc.GetLong(rubytime.FieldInstantSeconds)
	require.True(t, ok)
	assert.EqualValues(t, -2, sec)
	nsec, ok := acc.GetLong(rubytime.FieldNanoOfSecond)
	require.True(t, ok)
	assert.EqualValues(t, 500000000, nsec)
}

func TestResolveNegativeZeroEpochSecondsWithFractionFloors(t *testing.T) {
	// "-0" parses to the int64 value 0, which would be indistinguishable
	// from a bare unsigned "0" without tracking the sign separately.
	acc := resolve(t, "%s.%N", "-0.5", rubytime.ResolverOptions{})
	sec, ok := acc.GetLong(rubytime.FieldInstantSeconds)
	require.True(t, ok)
	assert.EqualValues(t, -1, sec)
	nsec, ok := acc.GetLong(rubytime.FieldNanoOfSecond)
	require.True(t, ok)
	assert.EqualValues(t, 500000000, nsec)
}

func TestResolveLeapSecondNormalizesToMidnightNextDay(t *testing.T) {
	acc := resolve(t, "%Y-%m-%dT%H:%M:%S", "2008-12-31T23:59:60", rubytime.ResolverOptions{})
	sec, ok := acc.GetLong(rubytime.FieldInstantSeconds)
	require.False(t, ok, "resolved calendar value should not itself support FieldInstantSeconds")

	year, _ := acc.GetLong(rubytime.FieldYear)
	month, _ := acc.GetLong(rubytime.FieldMonthOfYear)
	day, _ := acc.GetLong(rubytime.FieldDayOfMonth)
	hour, _ := acc.GetLong(rubytime.FieldHourOfDay)
	_ = sec
	assert.EqualValues(t, 2009, year)
	assert.EqualValues(t, 1, month)
	assert.EqualValues(t, 1, day)
	assert.EqualValues(t, 0, hour)
}

func TestResolveLeapSecondCarriesNanoFraction(t *testing.T) {
	acc := resolve(t, "%Y-%m-%dT%H:%M:%S.%N", "2008-12-31T23:59:60.500000000", rubytime.ResolverOptions{})
	hour, _ := acc.GetLong(rubytime.FieldHourOfDay)
	nsec, ok := acc.GetLong(rubytime.FieldNanoOfSecond)
	require.True(t, ok)
	assert.EqualValues(t, 0, hour)
	assert.EqualValues(t, 500000000, nsec)
}

func TestResolveHour24NormalizesToMidnightNextDay(t *testing.T) {
	acc := resolve(t, "%Y-%m-%d %H:%M:%S", "2021-03-05 24:00:00", rubytime.ResolverOptions{})
	year, _ := acc.GetLong(rubytime.FieldYear)
	month, _ := acc.GetLong(rubytime.FieldMonthOfYear)
	day, _ := acc.GetLong(rubytime.FieldDayOfMonth)
	assert.EqualValues(t, 2021, year)
	assert.EqualValues(t, 3, month)
	assert.EqualValues(t, 6, day)
}

func TestResolveLeapSecondRejectedOutsideTheLastMinute(t *testing.T) {
	f := rubytime.Compile("%H:%M:%S")
	_, err := rubytime.Parse(f, "12:00:60", rubytime.ResolverOptions{})
	assert.Error(t, err)
}

func TestResolveHour24RejectedWithNonzeroMinute(t *testing.T) {
	f := rubytime.Compile("%H:%M:%S")
	_, err := rubytime.Parse(f, "24:01:00", rubytime.ResolverOptions{})
	assert.Error(t, err)
}

func TestResolveMalformedCalendarDateRejected(t *testing.T) {
	f := rubytime.Compile("%Y-%m-%d")
	_, err := rubytime.Parse(f, "2021-13-40", rubytime.ResolverOptions{})
	assert.Error(t, err)
}

func TestResolveYearOnlyDefaultsToJanuaryFirst(t *testing.T) {
	acc := resolve(t, "%Y", "2021", rubytime.ResolverOptions{})
	month, _ := acc.GetLong(rubytime.FieldMonthOfYear)
	day, _ := acc.GetLong(rubytime.FieldDayOfMonth)
	assert.EqualValues(t, 1, month)
	assert.EqualValues(t, 1, day)
}

func TestResolveMissingOffsetUsesDefault(t *testing.T) {
	acc := resolve(t, "%Y-%m-%d", "2021-03-05", rubytime.ResolverOptions{DefaultOffsetSeconds: -18000})
	off, ok := acc.GetLong(rubytime.FieldOffsetSeconds)
	require.True(t, ok)
	assert.EqualValues(t, -18000, off)
}

func TestResolveExplicitOffsetOverridesDefault(t *testing.T) {
	acc := resolve(t, "%Y-%m-%d%z", "2021-03-05+0900", rubytime.ResolverOptions{DefaultOffsetSeconds: -18000})
	off, ok := acc.GetLong(rubytime.FieldOffsetSeconds)
	require.True(t, ok)
	assert.EqualValues(t, 32400, off)
}

func TestResolveISOWeekBasedDate(t *testing.T) {
	acc := resolve(t, "%G-W%V-%u", "2021-W01-1", rubytime.ResolverOptions{})
	year, _ := acc.GetLong(rubytime.FieldYear)
	month, _ := acc.GetLong(rubytime.FieldMonthOfYear)
	day, _ := acc.GetLong(rubytime.FieldDayOfMonth)
	assert.EqualValues(t, 2021, year)
	assert.EqualValues(t, 1, month)
	assert.EqualValues(t, 4, day)
}

func TestResolveAmPmReconciliation(t *testing.T) {
	acc := resolve(t, "%I:%M%p", "12:30AM", rubytime.ResolverOptions{})
	hour, _ := acc.GetLong(rubytime.FieldHourOfDay)
	assert.EqualValues(t, 0, hour)

	acc = resolve(t, "%I:%M%p", "12:30PM", rubytime.ResolverOptions{})
	hour, _ = acc.GetLong(rubytime.FieldHourOfDay)
	assert.EqualValues(t, 12, hour)
}
