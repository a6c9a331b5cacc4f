package rubytime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-rubytime/rubytime"
)

func TestParseUnresolvedBasic(t *testing.T) {
	f := rubytime.Compile("%Y-%m-%dT%H:%M:%S")
	p, err := rubytime.ParseUnresolved(f, "2021-03-05T13:45:30")
	require.NoError(t, err)

	year, ok := p.YearWithCentury()
	require.True(t, ok)
	assert.EqualValues(t, 2021, year)

	month, ok := p.Month()
	require.True(t, ok)
	assert.Equal(t, 3, month)

	day, ok := p.DayOfMonth()
	require.True(t, ok)
	assert.Equal(t, 5, day)

	hour, ok := p.Hour()
	require.True(t, ok)
	assert.Equal(t, 13, hour)
}

func TestParseUnresolvedMonthPrefixQuirk(t *testing.T) {
	f := rubytime.Compile("%B")
	p, err := rubytime.ParseUnresolved(f, "Januari")
	require.NoError(t, err)

	month, ok := p.Month()
	require.True(t, ok)
	assert.Equal(t, int(rubytime.January), month)
}

func TestParseUnresolvedWeekdayPrefixQuirk(t *testing.T) {
	f := rubytime.Compile("%A")
	p, err := rubytime.ParseUnresolved(f, "Sundai")
	require.NoError(t, err)

	dow, ok := p.DayOfWeek()
	require.True(t, ok)
	assert.Equal(t, int(rubytime.Sunday), dow)
}

func TestParseUnresolvedMonthPrefixQuirkConsumesMismatchedLetter(t *testing.T) {
	f := rubytime.Compile("%B %d")
	p, err := rubytime.ParseUnresolved(f, "Januari 5")
	require.NoError(t, err)

	month, ok := p.Month()
	require.True(t, ok)
	assert.Equal(t, int(rubytime.January), month)

	day, ok := p.DayOfMonth()
	require.True(t, ok)
	assert.Equal(t, 5, day)
}

func TestParseUnresolvedMonthGarbageRejected(t *testing.T) {
	f := rubytime.Compile("%B")
	_, err := rubytime.ParseUnresolved(f, "Decemzxyz")
	assert.Error(t, err, "a run sharing only a short, non-trailing-typo prefix must not match")
}

func TestParseUnresolvedWeekBasedYearCenturyCompletion(t *testing.T) {
	f := rubytime.Compile("%g-W%V-%u")
	p, err := rubytime.ParseUnresolved(f, "21-W01-1")
	require.NoError(t, err)

	wby, ok := p.WeekBasedYear()
	require.True(t, ok)
	assert.EqualValues(t, 2021, wby)
}

func TestParseUnresolvedLeapSecondAccepted(t *testing.T) {
	f := rubytime.Compile("%Y-%m-%dT%H:%M:%S")
	p, err := rubytime.ParseUnresolved(f, "2008-12-31T23:59:60")
	require.NoError(t, err)

	sec, ok := p.Second()
	require.True(t, ok)
	assert.Equal(t, 60, sec)
}

func TestParseUnresolvedMultipleEpochsLastWins(t *testing.T) {
	f := rubytime.Compile("%Q %s")
	p, err := rubytime.ParseUnresolved(f, "123456789 12849124")
	require.NoError(t, err)

	lastSetMillis, seconds, hasSeconds, _, hasMillis, _ := p.EpochFields()
	assert.False(t, lastSetMillis)
	assert.True(t, hasSeconds)
	assert.True(t, hasMillis)
	assert.EqualValues(t, 12849124, seconds)
}

func TestParseUnresolvedUnmatchedLiteral(t *testing.T) {
	f := rubytime.Compile("%Y-%m-%d")
	_, err := rubytime.ParseUnresolved(f, "2021/03/05")

	var perr *rubytime.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, rubytime.UnmatchedLiteral, perr.Kind)
}

func TestParseUnresolvedLeftover(t *testing.T) {
	f := rubytime.Compile("%Y")
	p, err := rubytime.ParseUnresolved(f, "2021 extra text")
	require.NoError(t, err)
	assert.Equal(t, " extra text", p.Leftover())
}

func TestParseUnresolvedAmPm(t *testing.T) {
	f := rubytime.Compile("%I%p")
	p, err := rubytime.ParseUnresolved(f, "04PM")
	require.NoError(t, err)

	ampm, ok := p.AmPm()
	require.True(t, ok)
	assert.Equal(t, rubytime.PM, ampm)
}
