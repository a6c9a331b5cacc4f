package rubytime_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-rubytime/rubytime"
)

func TestCompileLiteralOnly(t *testing.T) {
	for _, pattern := range []string{"", "hello world", "2021-03-05"} {
		t.Run(pattern, func(t *testing.T) {
			f := rubytime.Compile(pattern)
			for _, tok := range f.Tokens() {
				require.True(t, tok.IsImmediate())
			}
		})
	}
}

func TestCompileIdempotence(t *testing.T) {
	pattern := "%Y-%m-%dT%H:%M:%S%z"
	a := rubytime.Compile(pattern)
	b := rubytime.Compile(pattern)
	assert.Equal(t, len(a.Tokens()), len(b.Tokens()))
}

func TestCompilePercentSplitting(t *testing.T) {
	for n := 1; n <= 4; n++ {
		pattern := ""
		for i := 0; i < n; i++ {
			pattern += "%%"
		}
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f := rubytime.Compile(pattern)
			assert.Equal(t, n, len(f.Tokens()), "token count for %d %%%% pairs", n)
		})
	}
}

func TestCompileTrailingLonePercent(t *testing.T) {
	f := rubytime.Compile("%%%")
	require.Len(t, f.Tokens(), 2)
	assert.True(t, f.Tokens()[1].IsImmediate())
	assert.Equal(t, "%", f.Tokens()[1].Text())
}

func TestCompileUnknownDirectiveDegradesToLiteral(t *testing.T) {
	f := rubytime.Compile("%Q%!foo")
	found := false
	for _, tok := range f.Tokens() {
		if tok.IsImmediate() && tok.Text() == "%!foo" {
			found = true
		}
	}
	assert.True(t, found, "unrecognized directive should degrade to a literal run")
}

func TestCompileColonZOffsets(t *testing.T) {
	for _, pattern := range []string{"%z", "%:z", "%::z", "%:::z", "%::::z"} {
		t.Run(pattern, func(t *testing.T) {
			f := rubytime.Compile(pattern)
			require.Len(t, f.Tokens(), 1)
			assert.True(t, f.Tokens()[0].IsDirective())
		})
	}
}

func TestOnlyForFormatter(t *testing.T) {
	assert.False(t, rubytime.Compile("%Y-%m-%d").OnlyForFormatter())
	assert.True(t, rubytime.Compile("%4Y").OnlyForFormatter())
	assert.True(t, rubytime.Compile("%::::z").OnlyForFormatter())
}

func TestOnlyForFormatterColonOffsetsOneToThreeAreParseable(t *testing.T) {
	for _, pattern := range []string{"%z", "%:z", "%::z", "%:::z"} {
		t.Run(pattern, func(t *testing.T) {
			assert.False(t, rubytime.Compile(pattern).OnlyForFormatter())
		})
	}
}

func TestFormatTemporalLiteralRoundtrip(t *testing.T) {
	pattern := "just literal text"
	f := rubytime.Compile(pattern)
	out := rubytime.FormatTemporal(f, rubytime.InstantOf(0, 0))
	assert.Equal(t, pattern, out)
}
