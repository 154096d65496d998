// Package career validates and orders user-edited career timelines. Rows are
// year ranges where a missing end year means "still active"; the same rules
// run in the onboarding editor and behind the admin review actions.
package career

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// YearMin is the earliest plausible start of a professional career.
const YearMin = 1950

// YearMax returns the latest plausible year, one past the current one so a
// contract signed for next season validates.
func YearMax() int {
	return time.Now().Year() + 1
}

// NormalizeRange auto-corrects an inverted range instead of rejecting it.
func NormalizeRange(start, end *int) (*int, *int) {
	if start != nil && end != nil && *start > *end {
		return end, start
	}
	return start, end
}

// RangesOverlap treats a nil start as -inf and a nil end as +inf. Boundaries
// are exclusive: a stint ending in year Y does not conflict with one starting
// in year Y.
func RangesOverlap(aStart, aEnd, bStart, bEnd *int) bool {
	as, ae := bounds(aStart, aEnd)
	bs, be := bounds(bStart, bEnd)

	noOverlap := ae <= bs || be <= as
	return !noOverlap
}

func bounds(start, end *int) (float64, float64) {
	s := math.Inf(-1)
	e := math.Inf(1)
	if start != nil {
		s = float64(*start)
	}
	if end != nil {
		e = float64(*end)
	}
	return s, e
}

// ValidateYears checks a single row before it may be confirmed. It returns
// every violation rather than stopping at the first one.
func ValidateYears(start, end *int) []error {
	var errs []error
	if start == nil && end == nil {
		errs = append(errs, fmt.Errorf("at least one of start or end year is required"))
	}
	max := YearMax()
	if start != nil && (*start < YearMin || *start > max) {
		errs = append(errs, fmt.Errorf("start year out of range (%d-%d)", YearMin, max))
	}
	if end != nil && (*end < YearMin || *end > max) {
		errs = append(errs, fmt.Errorf("end year out of range (%d-%d)", YearMin, max))
	}
	if start != nil && end != nil && *start > *end {
		errs = append(errs, fmt.Errorf("start year must not exceed end year"))
	}
	return errs
}

// Span is the slice of a timeline row the validator and sorter care about.
type Span struct {
	StartYear *int
	EndYear   *int
	Confirmed bool
}

// OverlapsConfirmed reports whether row i overlaps any other confirmed row in
// the set. A row may not be confirmed while this holds.
func OverlapsConfirmed(rows []Span, i int) bool {
	for j, other := range rows {
		if j == i || !other.Confirmed {
			continue
		}
		if RangesOverlap(rows[i].StartYear, rows[i].EndYear, other.StartYear, other.EndYear) {
			return true
		}
	}
	return false
}

// ongoingRank substitutes for a missing end year when ordering: an open range
// sorts above every closed one.
const ongoingRank = 99999

// SortCareer returns the canonical display order, most recent first. Ongoing
// rows come before everything with an end year; ties on the effective end are
// broken by the later start.
func SortCareer[T any](rows []T, span func(T) Span) []T {
	sorted := make([]T, len(rows))
	copy(sorted, rows)

	rank := func(t T) (int, int) {
		s := span(t)
		end := ongoingRank
		if s.EndYear != nil {
			end = *s.EndYear
		}
		start := end
		if s.StartYear != nil {
			start = *s.StartYear
		}
		return end, start
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		iEnd, iStart := rank(sorted[i])
		jEnd, jStart := rank(sorted[j])
		if iEnd != jEnd {
			return iEnd > jEnd
		}
		return iStart > jStart
	})
	return sorted
}
