package rubytime

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ParsedQuery is a typed extension point over a Parsed: an implementation
// shapes the accumulator's fields into whatever Output its caller wants,
// in place of a dynamic-dispatch "query object" keyed by interface{}.
type ParsedQuery[Output any] interface {
	Query(p *Parsed) Output
}

// Query runs q against p and returns its typed result.
func Query[Output any](p *Parsed, q ParsedQuery[Output]) Output {
	return q.Query(p)
}

// RationalFraction is a sub-second fraction expressed as an exact
// numerator/denominator pair, for callers that cannot accept a
// floating-point or decimal approximation.
type RationalFraction struct {
	Num int64
	Den int64
}

// ElementsMapQuery renders the fields Parsed has set into a map keyed by
// field name: year (%Y only), month, day, hour, minute, second,
// instant_seconds, instant_millis, offset_seconds, and the sub-second
// fraction (if any) expressed as a decimal.Decimal. Other fields (century,
// two-digit year, weekday, week fields, AM/PM, zone text) are not included.
type ElementsMapQuery struct{}

func (ElementsMapQuery) Query(p *Parsed) map[string]any {
	m := map[string]any{}
	putIfSet := func(key string, v int64, ok bool) {
		if ok {
			m[key] = v
		}
	}

	if y, ok := p.YearWithCentury(); ok {
		m["year"] = y
	}
	if mo, ok := p.Month(); ok {
		m["month"] = mo
	}
	if d, ok := p.DayOfMonth(); ok {
		m["day"] = d
	}
	if h, ok := p.Hour(); ok {
		m["hour"] = h
	}
	if mi, ok := p.Minute(); ok {
		m["minute"] = mi
	}
	if s, ok := p.Second(); ok {
		m["second"] = s
	}
	_, seconds, hasSeconds, millis, hasMillis, _ := p.EpochFields()
	putIfSet("instant_seconds", seconds, hasSeconds)
	putIfSet("instant_millis", millis, hasMillis)

	if off, ok := p.OffsetSeconds(); ok {
		m["offset_seconds"] = off
	}

	if n, ok := p.NanoOfSecond(); ok {
		m["fraction"] = decimal.New(int64(n), -9)
	}

	return m
}

// ElementsMapRationalQuery is ElementsMapQuery's sibling, expressing the
// sub-second fraction as an exact numerator/denominator pair instead of a
// decimal.Decimal.
type ElementsMapRationalQuery struct{}

func (ElementsMapRationalQuery) Query(p *Parsed) map[string]any {
	base := ElementsMapQuery{}.Query(p)
	delete(base, "fraction")

	if n, ok := p.NanoOfSecond(); ok {
		r := big.NewRat(int64(n), 1_000_000_000)
		base["fraction"] = RationalFraction{Num: r.Num().Int64(), Den: r.Denom().Int64()}
	}
	return base
}
