/*
engine.go - Cached facade over the classification pipeline

PURPOSE:
  Engine is what long-lived callers (the HTTP layer) hold. It adds an
  injectable Cache and collapses concurrent identical computations with
  singleflight, while producing exactly what the package-level functions
  produce.

OPERATIONS:
  Classify:  one date, memoized by (date, fingerprint of records)
  Calendar:  dedupe, index once, classify every day in a range
  Report:    Calendar plus Aggregate over the same deduplicated set

CACHE SCOPE:
  Keys do not include the rule table. Do not share one Cache between
  engines configured with different rules.

SEE ALSO:
  - cache.go: Cache interface and fingerprinting
  - cache/memory.go: bounded implementation
*/
package attendance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

type Engine struct {
	cache Cache
	rules []Rule
	group singleflight.Group
}

type Option func(*Engine)

// WithCache memoizes classifications in c. A nil c disables caching.
func WithCache(c Cache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithRules replaces the rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{rules: DefaultRules()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ClearCache drops every memoized result.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}

// Classify is the memoized form of the package-level Classify.
func (e *Engine) Classify(date string, records []Record) (ClassificationResult, error) {
	d, err := ParseDate(date)
	if err != nil {
		return ClassificationResult{}, err
	}
	return e.memo(d, Fingerprint(records), func() (ClassificationResult, error) {
		spans, err := prepareAll(records)
		if err != nil {
			return ClassificationResult{}, err
		}
		return classifyDay(d, spans, e.rules), nil
	})
}

func (e *Engine) memo(d Date, fingerprint string, compute func() (ClassificationResult, error)) (ClassificationResult, error) {
	if e.cache == nil {
		return compute()
	}
	key := CacheKey(d, fingerprint)
	if res, ok := e.cache.Get(key); ok {
		return detach(res), nil
	}
	v, err, _ := e.group.Do(key, func() (any, error) {
		res, err := compute()
		if err != nil {
			return nil, err
		}
		e.cache.Put(key, res)
		return res, nil
	})
	if err != nil {
		return ClassificationResult{}, err
	}
	return detach(v.(ClassificationResult)), nil
}

// detach gives the caller its own copy of the source record, so writes
// through it never reach the cached value.
func detach(res ClassificationResult) ClassificationResult {
	if res.Source != nil {
		src := *res.Source
		res.Source = &src
	}
	return res
}

// =============================================================================
// CALENDAR - A classified billing cycle
// =============================================================================

// Day is one classified date. ActualWorkMinutes is only computed for normal
// days and is zero otherwise.
type Day struct {
	Date              Date
	Result            ClassificationResult
	NonWorkMinutes    int
	OvertimeMinutes   int
	ActualWorkMinutes int
}

func (d Day) ActualWorkHours() decimal.Decimal { return MinutesToHours(d.ActualWorkMinutes) }

type Calendar struct {
	Range DateRange
	Days  []Day
}

// Counts tallies days by displayed category.
func (c *Calendar) Counts() map[Category]int {
	counts := make(map[Category]int)
	for _, d := range c.Days {
		counts[d.Result.Type]++
	}
	return counts
}

// Calendar deduplicates records and classifies every day of the range.
func (e *Engine) Calendar(records []Record, rangeStart, rangeEnd string) (*Calendar, error) {
	cal, _, err := e.build(records, rangeStart, rangeEnd)
	return cal, err
}

// Report is Calendar plus the cycle's Summary, computed from the same
// deduplicated records.
func (e *Engine) Report(records []Record, rangeStart, rangeEnd string) (*Calendar, Summary, error) {
	cal, ix, err := e.build(records, rangeStart, rangeEnd)
	if err != nil {
		return nil, Summary{}, err
	}
	return cal, aggregateIndex(ix, cal.Range), nil
}

func (e *Engine) build(records []Record, rangeStart, rangeEnd string) (*Calendar, *Index, error) {
	rng, err := ParseRange(rangeStart, rangeEnd)
	if err != nil {
		return nil, nil, err
	}
	deduped := Dedupe(records)
	ix, err := NewIndex(deduped)
	if err != nil {
		return nil, nil, err
	}
	fingerprint := Fingerprint(deduped)

	cal := &Calendar{Range: rng, Days: make([]Day, 0, rng.Len())}
	for _, d := range rng.Days() {
		covering := ix.covering(d)
		res, err := e.memo(d, fingerprint, func() (ClassificationResult, error) {
			return classifyDay(d, covering, e.rules), nil
		})
		if err != nil {
			return nil, nil, err
		}
		t := totalsFor(d, covering)
		day := Day{
			Date:            d,
			Result:          res,
			NonWorkMinutes:  t.nonWorkMinutes,
			OvertimeMinutes: t.overtimeMinutes,
		}
		if res.IsNormal() {
			day.ActualWorkMinutes = t.actualWorkMinutes()
		}
		cal.Days = append(cal.Days, day)
	}
	return cal, ix, nil
}
