package schema

import "sort"

// MonthKey reduces a YYYY-MM-DD date string to its YYYY-MM month key.
// Shorter inputs are returned unchanged.
func MonthKey(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}

// BuildAdoptionCurve turns per-repository first-commit months into a
// cumulative adoption curve. The curve has one point per month that appears
// in the input, in ascending order; each point counts the repositories whose
// first commit happened in that month or earlier, split by marker flag.
func BuildAdoptionCurve(firsts []RepoFirstCommit) []AdoptionPoint {
	if len(firsts) == 0 {
		return nil
	}

	type delta struct {
		with    int
		without int
	}
	byMonth := make(map[string]delta)
	for _, f := range firsts {
		d := byMonth[f.FirstMonth]
		if f.HasMarker {
			d.with++
		} else {
			d.without++
		}
		byMonth[f.FirstMonth] = d
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	curve := make([]AdoptionPoint, 0, len(months))
	withTotal, withoutTotal := 0, 0
	for _, m := range months {
		withTotal += byMonth[m].with
		withoutTotal += byMonth[m].without
		curve = append(curve, AdoptionPoint{
			Month:         m,
			WithMarker:    withTotal,
			WithoutMarker: withoutTotal,
		})
	}
	return curve
}
