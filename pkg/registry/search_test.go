package registry

import (
	"reflect"
	"testing"
)

func searchFixture(t *testing.T) (*Table, FieldMap) {
	t.Helper()
	table, err := BuildTable([][]string{
		{"Charterer", "Status", "Company", "Parent Company/Ownership", "Address", "Comments"},
		{"Vitol", "approved", "Vitol SA", "Vitol Group", "Geneva", "reliable"},
		{"Shell", "pending", "Shell Trading", "Shell plc", "London", "tanker pool"},
		{"Aramco", "rejected", "Saudi Aramco", "State", "Dhahran", "works with Vitol"},
		{"", "approved", "Nameless Co", "", "Nowhere", ""},
	})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	fields, err := ResolveColumns(table.Headers)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	return table, fields
}

func addresses(rows []Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Address
	}
	return out
}

func TestFilterRows(t *testing.T) {
	table, fields := searchFixture(t)

	tests := []struct {
		name     string
		query    string
		restrict bool
		want     []int
	}{
		{
			name:     "empty query returns everything",
			query:    "",
			restrict: true,
			want:     []int{2, 3, 4, 5},
		},
		{
			name:     "tier 1 match on charterer",
			query:    "vitol",
			restrict: true,
			want:     []int{2},
		},
		{
			// "Vitol" also appears in Aramco's comments, but a tier-1
			// match exists so tier 2 never runs.
			name:     "tier 1 suppresses tier 2",
			query:    "Vitol",
			restrict: true,
			want:     []int{2},
		},
		{
			name:     "tier 2 fallback on any column",
			query:    "london",
			restrict: true,
			want:     []int{3},
		},
		{
			name:     "tier 2 with no matches is empty, not fatal",
			query:    "xyz123",
			restrict: true,
			want:     []int{},
		},
		{
			name:     "restrict off bypasses the filter entirely",
			query:    "vitol",
			restrict: false,
			want:     []int{2, 3, 4, 5},
		},
		{
			name:     "query whitespace is trimmed",
			query:    "  shell  ",
			restrict: true,
			want:     []int{3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := addresses(FilterRows(table, fields, tt.query, tt.restrict))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterRows(%q, %v) addresses = %v, want %v", tt.query, tt.restrict, got, tt.want)
			}
		})
	}
}

func TestFilterRowsCopies(t *testing.T) {
	table, fields := searchFixture(t)
	rows := FilterRows(table, fields, "", true)
	rows[0] = Row{}
	if table.Rows[0].Address != 2 {
		t.Error("filter result aliases the snapshot's row slice")
	}
}

func TestSelectorOptions(t *testing.T) {
	table, fields := searchFixture(t)

	// Full set: sorted case-insensitively, empty key skipped, sentinel first.
	opts := SelectorOptions(table, fields, table.Rows)
	want := []string{NoSelection, "Aramco", "Shell", "Vitol"}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("SelectorOptions = %v, want %v", opts, want)
	}

	// Empty filter result still carries the sentinel.
	opts = SelectorOptions(table, fields, nil)
	if !reflect.DeepEqual(opts, []string{NoSelection}) {
		t.Errorf("SelectorOptions(empty) = %v, want sentinel only", opts)
	}
}

func TestSelectorOptionsDistinct(t *testing.T) {
	table, err := BuildTable([][]string{
		{"Charterer", "Status", "Company", "Ownership", "Address"},
		{"Shell", "approved", "Shell A", "", ""},
		{"shell trading", "pending", "Shell B", "", ""},
		{"Shell", "rejected", "Shell C", "", ""},
	})
	if err != nil {
		t.Fatalf("BuildTable: %v", err)
	}
	fields, err := ResolveColumns(table.Headers)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	opts := SelectorOptions(table, fields, table.Rows)
	want := []string{NoSelection, "Shell", "shell trading"}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("SelectorOptions = %v, want %v", opts, want)
	}
}
