// Package aggregate provides the pure filter and grouping functions that
// turn the normalized recruit set into map-ready summaries.
//
// Every function here is total and deterministic: no side effects, no
// hidden state, and absence of matching data yields an empty slice rather
// than an error. Grouping preserves first-seen insertion order so that
// representative fields (city, state, coordinates taken from the first
// record of a group) are reproducible run to run.
package aggregate

import (
	"sort"
	"strings"

	"github.com/okian/gridpath/internal/domain/model"
)

// Year sanity window and fallback bounds.
const (
	// minClassYear and maxClassYear bound the exclusive window of class
	// years considered plausible when computing year bounds.
	minClassYear = 0
	maxClassYear = 2030

	// defaultMinYear and defaultMaxYear are returned by YearBounds when
	// no record carries a plausible class year. A deliberate fallback,
	// not an error condition.
	defaultMinYear = 2023
	defaultMaxYear = 2025
)

// AllColleges selects every college when passed as the college filter.
const AllColleges = "all"

// homeCountry is the only country rendered on the domestic map.
const homeCountry = "USA"

// keySeparator joins composite group keys. None of the joined fields can
// contain it after normalization.
const keySeparator = "|"

// UniqueColleges returns the distinct committedTo values in lexicographic
// ascending order.
func UniqueColleges(records []model.Recruit) []string {
	seen := make(map[string]struct{}, len(records))
	colleges := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.CommittedTo]; ok {
			continue
		}
		seen[r.CommittedTo] = struct{}{}
		colleges = append(colleges, r.CommittedTo)
	}
	sort.Strings(colleges)
	return colleges
}

// YearBounds computes the min and max class year over records whose class
// year falls strictly inside (minClassYear, maxClassYear). When the input
// is empty or no value qualifies, the fixed default range is returned.
func YearBounds(records []model.Recruit) model.YearRange {
	found := false
	bounds := model.YearRange{}
	for _, r := range records {
		if r.ClassYear <= minClassYear || r.ClassYear >= maxClassYear {
			continue
		}
		if !found {
			bounds.Min, bounds.Max = r.ClassYear, r.ClassYear
			found = true
			continue
		}
		if r.ClassYear < bounds.Min {
			bounds.Min = r.ClassYear
		}
		if r.ClassYear > bounds.Max {
			bounds.Max = r.ClassYear
		}
	}
	if !found {
		return model.YearRange{Min: defaultMinYear, Max: defaultMaxYear}
	}
	return bounds
}

// Filter returns the subsequence of records admitted by the active filter:
// class year within [startYear, endYear], both coordinates present,
// country equal to homeCountry, and, unless college is AllColleges, a
// case-insensitive substring match on committedTo.
//
// The substring match is looser than exact equality ("Ohio" matches
// "Ohio State"); that behavior is load-bearing for the dashboard and is
// kept as-is.
func Filter(records []model.Recruit, startYear, endYear int, college string) []model.Recruit {
	wantAll := college == AllColleges
	needle := strings.ToLower(college)

	out := make([]model.Recruit, 0, len(records))
	for _, r := range records {
		if r.ClassYear < startYear || r.ClassYear > endYear {
			continue
		}
		if !r.HasCoordinates() {
			continue
		}
		if r.Country != homeCountry {
			continue
		}
		if !wantAll && !strings.Contains(strings.ToLower(r.CommittedTo), needle) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Pathways groups filtered records by (school, committedTo). The first
// record observed for a pair supplies the representative city, state and
// coordinates; every further match increments the count. Output order
// follows first-seen key order.
func Pathways(records []model.Recruit) []model.Pathway {
	index := make(map[string]int, len(records))
	out := make([]model.Pathway, 0, len(records))
	for _, r := range records {
		key := r.School + keySeparator + r.CommittedTo
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, model.Pathway{
			School:        r.School,
			College:       r.CommittedTo,
			City:          r.City,
			StateProvince: r.StateProvince,
			Latitude:      *r.Latitude,
			Longitude:     *r.Longitude,
			Count:         1,
		})
	}
	return out
}

// Cities groups filtered records by (city, stateProvince) with the same
// first-seen representative policy as Pathways.
func Cities(records []model.Recruit) []model.CityAggregate {
	index := make(map[string]int, len(records))
	out := make([]model.CityAggregate, 0, len(records))
	for _, r := range records {
		key := r.City + keySeparator + r.StateProvince
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, model.CityAggregate{
			City:          r.City,
			StateProvince: r.StateProvince,
			Latitude:      *r.Latitude,
			Longitude:     *r.Longitude,
			Count:         1,
		})
	}
	return out
}

// Colleges groups filtered records by committedTo, counting recruits per
// college in first-seen key order.
func Colleges(records []model.Recruit) []model.CollegeAggregate {
	index := make(map[string]int, len(records))
	out := make([]model.CollegeAggregate, 0, len(records))
	for _, r := range records {
		if i, ok := index[r.CommittedTo]; ok {
			out[i].Count++
			continue
		}
		index[r.CommittedTo] = len(out)
		out = append(out, model.CollegeAggregate{
			College: r.CommittedTo,
			Count:   1,
		})
	}
	return out
}
