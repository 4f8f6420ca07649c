package registry

import "errors"

// FirstDataRow is the external row number of the first data row; row 1 is
// the header row.
const FirstDataRow = 2

// ErrNoData reports a sheet with no header row or no data rows.
var ErrNoData = errors.New("sheet is empty or has no data rows")

// Row is one data row. Address is the 1-based row number the row occupies
// in the external sheet, captured at load time and never recomputed; it is
// the sole identity used for write-back. Values is ordered exactly like
// Table.Headers.
type Row struct {
	Address int
	Values  []string
}

// Table is an immutable snapshot of the external sheet. Filtering and
// sorting for display operate on row references and never reorder or
// renumber the underlying rows.
type Table struct {
	Headers []string
	Rows    []Row

	cols map[string]int // first position of each header name
}

// BuildTable constructs a snapshot from raw sheet values (row 0 = headers).
// Every cell is normalized with CleanCell; short rows are padded with empty
// strings to the header width. Fewer than two rows is a fatal load condition.
func BuildTable(values [][]string) (*Table, error) {
	if len(values) < 2 {
		return nil, ErrNoData
	}

	headers := make([]string, len(values[0]))
	cols := make(map[string]int, len(values[0]))
	for i, h := range values[0] {
		headers[i] = CleanCell(h)
		if _, ok := cols[headers[i]]; !ok {
			cols[headers[i]] = i
		}
	}

	rows := make([]Row, 0, len(values)-1)
	for i, raw := range values[1:] {
		cells := make([]string, len(headers))
		for j := range headers {
			if j < len(raw) {
				cells[j] = CleanCell(raw[j])
			}
		}
		rows = append(rows, Row{Address: i + FirstDataRow, Values: cells})
	}

	return &Table{Headers: headers, Rows: rows, cols: cols}, nil
}

// Value reads the cell under header from r. Duplicate header names resolve
// to the first occurrence. Unknown headers read as "".
func (t *Table) Value(r Row, header string) string {
	i, ok := t.cols[header]
	if !ok || i >= len(r.Values) {
		return ""
	}
	return r.Values[i]
}

// RowAt returns the row with the given external address.
func (t *Table) RowAt(address int) (Row, bool) {
	for _, r := range t.Rows {
		if r.Address == address {
			return r, true
		}
	}
	return Row{}, false
}
