package registry

import (
	"sort"
	"strings"
)

// NoSelection is the sentinel selector option meaning nothing is selected.
const NoSelection = "(select)"

// FilterRows applies the two-tier search. An empty query returns every row,
// as does restrict=false (the query then has no effect on the table at all).
// Otherwise tier 1 matches the query against the Charterer column; if any
// row matches there, tier 1 is the result. Only when the Charterer column
// matches nowhere does tier 2 run, matching against the row's columns joined
// together. Tier 2 may legitimately return no rows.
//
// Note the tier decision is global, not per row: a single Charterer match
// suppresses rows that would only have matched on a detail column. That
// asymmetry is intentional and must not be "fixed" here.
func FilterRows(t *Table, fields FieldMap, query string, restrict bool) []Row {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || !restrict {
		out := make([]Row, len(t.Rows))
		copy(out, t.Rows)
		return out
	}

	keyHeader, _ := fields.Column(FieldCharterer)

	var tier1 []Row
	for _, r := range t.Rows {
		if strings.Contains(strings.ToLower(t.Value(r, keyHeader)), q) {
			tier1 = append(tier1, r)
		}
	}
	if len(tier1) > 0 {
		return tier1
	}

	tier2 := []Row{}
	for _, r := range t.Rows {
		joined := strings.ToLower(strings.Join(r.Values, " | "))
		if strings.Contains(joined, q) {
			tier2 = append(tier2, r)
		}
	}
	return tier2
}

// SelectorOptions returns the distinct non-empty Charterer values from rows,
// sorted case-insensitively, prefixed with the NoSelection sentinel.
func SelectorOptions(t *Table, fields FieldMap, rows []Row) []string {
	keyHeader, _ := fields.Column(FieldCharterer)

	seen := make(map[string]bool)
	opts := []string{}
	for _, r := range rows {
		v := t.Value(r, keyHeader)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		opts = append(opts, v)
	}
	sort.Slice(opts, func(i, j int) bool {
		return strings.ToLower(opts[i]) < strings.ToLower(opts[j])
	})
	return append([]string{NoSelection}, opts...)
}
