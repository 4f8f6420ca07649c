package api

import "counterparty/pkg/registry"

// tableRow is one row of the list view: the display columns plus the
// external row number, carried through untouched so a later edit can
// address the row exactly.
type tableRow struct {
	Row       int    `json:"row"`
	Status    string `json:"status"`
	Charterer string `json:"charterer"`
	Company   string `json:"company"`
	Ownership string `json:"ownership"`
	Address   string `json:"address"`
}

type searchResponse struct {
	Rows    []tableRow `json:"rows"`
	Options []string   `json:"options"`
}

// candidate labels one row among several sharing a Charterer value, for
// user-driven disambiguation.
type candidate struct {
	Row     int    `json:"row"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

type disambiguationResponse struct {
	Ambiguous  bool        `json:"ambiguous"`
	Candidates []candidate `json:"candidates"`
}

type detailResponse struct {
	Row          int    `json:"row"`
	Badge        string `json:"badge"`
	Category     string `json:"category"`
	Charterer    string `json:"charterer"`
	Company      string `json:"company"`
	Ownership    string `json:"ownership"`
	Address      string `json:"address"`
	Sanctions    string `json:"sanctions"`
	PoolClause   string `json:"pool_agreement,omitempty"`
	SP           string `json:"sp"`
	Moodys       string `json:"moodys"`
	InfoSpectrum string `json:"infospectrum"`
	Dynamar      string `json:"dynamar"`
	Comments     string `json:"comments"`
}

type schemaField struct {
	Header    string `json:"header"`
	Multiline bool   `json:"multiline"`
}

type unlockRequest struct {
	Password string `json:"password"`
}

type unlockResponse struct {
	Token string `json:"token"`
}

type adminStatusResponse struct {
	Unlocked bool `json:"unlocked"`
}

type submitRequest struct {
	Values map[string]string `json:"values"`
}

type ackResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func buildTableRow(s *snapshot, r registry.Row) tableRow {
	return tableRow{
		Row:       r.Address,
		Status:    s.fields.Value(s.table, r, registry.FieldStatus),
		Charterer: s.fields.Value(s.table, r, registry.FieldCharterer),
		Company:   s.fields.Value(s.table, r, registry.FieldCompany),
		Ownership: s.fields.Value(s.table, r, registry.FieldOwnership),
		Address:   s.fields.Value(s.table, r, registry.FieldAddress),
	}
}

func buildCandidate(s *snapshot, r registry.Row) candidate {
	return candidate{
		Row:     r.Address,
		Company: s.fields.Value(s.table, r, registry.FieldCompany),
		Status:  s.fields.Value(s.table, r, registry.FieldStatus),
	}
}

func buildDetail(s *snapshot, r registry.Row) detailResponse {
	rawStatus := s.fields.Value(s.table, r, registry.FieldStatus)
	return detailResponse{
		Row:          r.Address,
		Badge:        registry.StatusBadge(rawStatus),
		Category:     registry.ClassifyStatus(rawStatus).String(),
		Charterer:    s.fields.Value(s.table, r, registry.FieldCharterer),
		Company:      s.fields.Value(s.table, r, registry.FieldCompany),
		Ownership:    s.fields.Value(s.table, r, registry.FieldOwnership),
		Address:      s.fields.Value(s.table, r, registry.FieldAddress),
		Sanctions:    orPlaceholder(s.fields.Value(s.table, r, registry.FieldSanctions)),
		PoolClause:   s.fields.Value(s.table, r, registry.FieldPool),
		SP:           orPlaceholder(s.fields.Value(s.table, r, registry.FieldSP)),
		Moodys:       orPlaceholder(s.fields.Value(s.table, r, registry.FieldMoodys)),
		InfoSpectrum: orPlaceholder(s.fields.Value(s.table, r, registry.FieldInfoSpectrum)),
		Dynamar:      orPlaceholder(s.fields.Value(s.table, r, registry.FieldDynamar)),
		Comments:     orPlaceholder(s.fields.Value(s.table, r, registry.FieldComments)),
	}
}

// orPlaceholder renders empty or unresolved optional values as "—".
func orPlaceholder(v string) string {
	if v == "" {
		return registry.Placeholder
	}
	return v
}

// formOrder returns the headers in form layout order: the priority columns
// first, then every remaining header in sheet order.
func formOrder(s *snapshot) []string {
	priority := []registry.Field{
		registry.FieldStatus,
		registry.FieldCharterer,
		registry.FieldCompany,
		registry.FieldOwnership,
		registry.FieldAddress,
	}
	seen := make(map[string]bool)
	var ordered []string
	for _, f := range priority {
		if h, ok := s.fields.Column(f); ok && !seen[h] {
			seen[h] = true
			ordered = append(ordered, h)
		}
	}
	for _, h := range s.table.Headers {
		if !seen[h] {
			seen[h] = true
			ordered = append(ordered, h)
		}
	}
	return ordered
}
