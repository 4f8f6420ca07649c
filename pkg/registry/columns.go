package registry

import (
	"fmt"
	"strings"
)

// Field is a semantic attribute of a counterparty, independent of how the
// sheet's column headers happen to be spelled.
type Field string

const (
	FieldStatus       Field = "Status"
	FieldCharterer    Field = "Charterer"
	FieldCompany      Field = "Company"
	FieldOwnership    Field = "Parent company/ownership"
	FieldAddress      Field = "Address"
	FieldPool         Field = "Pool Agreement"
	FieldSP           Field = "S&P"
	FieldMoodys       Field = "Moody's"
	FieldInfoSpectrum Field = "InfoSpectrum"
	FieldDynamar      Field = "Dynamar"
	FieldSanctions    Field = "Sanctions Check"
	FieldComments     Field = "Comments"
)

// Candidate header names per field, most specific first. Source sheets vary
// in header spelling across deployments, so each field carries the spellings
// seen in the wild.
var fieldCandidates = map[Field][]string{
	FieldStatus:       {"Status"},
	FieldCharterer:    {"Charterer"},
	FieldCompany:      {"Company"},
	FieldOwnership:    {"Parent Company/Ownership", "Ownership", "Parent Company"},
	FieldAddress:      {"Address"},
	FieldPool:         {"Pool Agreement"},
	FieldSP:           {"S&P", "S&P Rating", "S&P rating"},
	FieldMoodys:       {"Moody", "Moody's", "Moody's Rating"},
	FieldInfoSpectrum: {"InfoSpectrum", "Info Spectrum", "Infospectrum Rating"},
	FieldDynamar:      {"Dynamar", "Dynamar Rating"},
	FieldSanctions:    {"Sanctions Check", "Sanction Check", "Sanctions"},
	FieldComments:     {"Comment", "Comments"},
}

// AllFields lists every semantic field in display order.
var AllFields = []Field{
	FieldStatus,
	FieldCharterer,
	FieldCompany,
	FieldOwnership,
	FieldAddress,
	FieldSanctions,
	FieldPool,
	FieldSP,
	FieldMoodys,
	FieldInfoSpectrum,
	FieldDynamar,
	FieldComments,
}

// requiredFields must all resolve or the sheet is unusable.
var requiredFields = []Field{
	FieldStatus,
	FieldCharterer,
	FieldCompany,
	FieldOwnership,
	FieldAddress,
}

// Headers containing any of these substrings are rendered as multiline text.
var longTextHints = []string{"address", "comment", "remarks", "notes", "pool"}

// FieldMap holds the header resolved for each semantic field, plus a
// per-header multiline rendering hint. Built once per sheet load.
type FieldMap struct {
	columns  map[Field]string
	longText map[string]bool
}

// Column returns the header resolved for f, or ok=false if none matched.
func (m FieldMap) Column(f Field) (string, bool) {
	h, ok := m.columns[f]
	return h, ok
}

// Value reads f's cell from row r, or "" when the field is unresolved.
func (m FieldMap) Value(t *Table, r Row, f Field) string {
	h, ok := m.columns[f]
	if !ok {
		return ""
	}
	return t.Value(r, h)
}

// LongText reports whether header should be rendered as a multiline field.
func (m FieldMap) LongText(header string) bool {
	return m.longText[header]
}

// findColumn resolves one field against the actual headers. Exact
// case-insensitive matches win outright; only if no candidate matches
// exactly does the substring pass run, scanning headers in sheet order.
// Exact-first keeps "Status" from landing on a "Sanctions Status" column
// when a real "Status" header exists.
func findColumn(headers []string, candidates []string) string {
	lowered := make(map[string]string, len(headers))
	for _, h := range headers {
		if _, ok := lowered[strings.ToLower(h)]; !ok {
			lowered[strings.ToLower(h)] = h
		}
	}
	for _, cand := range candidates {
		if h, ok := lowered[strings.ToLower(cand)]; ok {
			return h
		}
	}
	for _, h := range headers {
		hl := strings.ToLower(h)
		for _, cand := range candidates {
			if strings.Contains(hl, strings.ToLower(cand)) {
				return h
			}
		}
	}
	return ""
}

// ResolveColumns maps every semantic field onto the sheet's headers. All
// required fields must resolve; failures are aggregated into a single error
// naming every missing field.
func ResolveColumns(headers []string) (FieldMap, error) {
	m := FieldMap{
		columns:  make(map[Field]string),
		longText: make(map[string]bool),
	}
	for f, cands := range fieldCandidates {
		if h := findColumn(headers, cands); h != "" {
			m.columns[f] = h
		}
	}
	for _, h := range headers {
		hl := strings.ToLower(h)
		for _, hint := range longTextHints {
			if strings.Contains(hl, hint) {
				m.longText[h] = true
				break
			}
		}
	}

	var missing []string
	for _, f := range requiredFields {
		if _, ok := m.columns[f]; !ok {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return FieldMap{}, fmt.Errorf("missing required columns in the sheet: %s", strings.Join(missing, ", "))
	}
	return m, nil
}
