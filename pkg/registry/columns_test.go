package registry

import (
	"strings"
	"testing"
)

func TestFindColumn(t *testing.T) {
	tests := []struct {
		name       string
		headers    []string
		candidates []string
		want       string
	}{
		{
			name:       "exact match",
			headers:    []string{"Charterer", "Status", "Company"},
			candidates: []string{"Status"},
			want:       "Status",
		},
		{
			name:       "exact match is case-insensitive",
			headers:    []string{"charterer", "STATUS"},
			candidates: []string{"Status"},
			want:       "STATUS",
		},
		{
			name:       "exact match beats substring even when substring header comes first",
			headers:    []string{"Sanctions Status", "Status"},
			candidates: []string{"Status"},
			want:       "Status",
		},
		{
			name:       "substring fallback",
			headers:    []string{"Charterer Name", "Company"},
			candidates: []string{"Charterer"},
			want:       "Charterer Name",
		},
		{
			name:       "first candidate wins on exact pass",
			headers:    []string{"Ownership", "Parent Company"},
			candidates: []string{"Parent Company/Ownership", "Ownership", "Parent Company"},
			want:       "Ownership",
		},
		{
			name:       "headers scanned in order on substring pass",
			headers:    []string{"Moody's 2024", "Moody's Rating (old)"},
			candidates: []string{"Moody"},
			want:       "Moody's 2024",
		},
		{
			name:       "no match",
			headers:    []string{"Charterer", "Company"},
			candidates: []string{"Address"},
			want:       "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := findColumn(tt.headers, tt.candidates)
			if got != tt.want {
				t.Errorf("findColumn(%v, %v) = %q, want %q", tt.headers, tt.candidates, got, tt.want)
			}
		})
	}
}

func TestResolveColumns(t *testing.T) {
	headers := []string{
		"Status", "Charterer", "Company", "Parent Company/Ownership",
		"Address", "Sanctions Check", "Comments", "S&P Rating",
		"Moody's", "InfoSpectrum", "Dynamar", "Pool Agreement",
	}
	m, err := ResolveColumns(headers)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}

	wantCols := map[Field]string{
		FieldStatus:       "Status",
		FieldCharterer:    "Charterer",
		FieldCompany:      "Company",
		FieldOwnership:    "Parent Company/Ownership",
		FieldAddress:      "Address",
		FieldSanctions:    "Sanctions Check",
		FieldComments:     "Comments",
		FieldSP:           "S&P Rating",
		FieldMoodys:       "Moody's",
		FieldInfoSpectrum: "InfoSpectrum",
		FieldDynamar:      "Dynamar",
		FieldPool:         "Pool Agreement",
	}
	for f, want := range wantCols {
		got, ok := m.Column(f)
		if !ok || got != want {
			t.Errorf("Column(%q) = %q, %v; want %q", f, got, ok, want)
		}
	}
}

func TestResolveColumnsOptionalDegrade(t *testing.T) {
	// Only the required columns; every optional field stays unresolved
	// without an error.
	m, err := ResolveColumns([]string{"Status", "Charterer", "Company", "Ownership", "Address"})
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	for _, f := range []Field{FieldPool, FieldSP, FieldMoodys, FieldInfoSpectrum, FieldDynamar, FieldSanctions, FieldComments} {
		if h, ok := m.Column(f); ok {
			t.Errorf("Column(%q) resolved to %q, want unresolved", f, h)
		}
	}
}

func TestResolveColumnsMissingRequired(t *testing.T) {
	_, err := ResolveColumns([]string{"Charterer", "Company"})
	if err == nil {
		t.Fatal("expected error for missing required columns")
	}
	for _, name := range []string{"Status", "Parent company/ownership", "Address"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing field %q", err, name)
		}
	}
	if strings.Contains(err.Error(), "Charterer") {
		t.Errorf("error %q names a resolved field", err)
	}
}

func TestLongTextHints(t *testing.T) {
	m, err := ResolveColumns([]string{
		"Status", "Charterer", "Company", "Ownership", "Address",
		"Comments", "Internal Notes", "Pool Agreement", "Remarks",
	})
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	tests := []struct {
		header string
		want   bool
	}{
		{"Address", true},
		{"Comments", true},
		{"Internal Notes", true},
		{"Pool Agreement", true},
		{"Remarks", true},
		{"Status", false},
		{"Charterer", false},
		{"Company", false},
	}
	for _, tt := range tests {
		if got := m.LongText(tt.header); got != tt.want {
			t.Errorf("LongText(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
