package registry

import "errors"

// Writer is the subset of the sheet client the edit protocol needs.
type Writer interface {
	AppendRow(values []string) error
	UpdateRow(address int, values []string) error
}

// WriteAuth is the session-scoped admin capability. The edit protocol takes
// it explicitly so the write gate is testable without a session.
type WriteAuth interface {
	Unlocked() bool
}

var (
	// ErrLocked reports a write attempted without an unlocked admin session.
	ErrLocked = errors.New("admin session is locked")
	// ErrKeyRequired reports a submission with an empty Charterer value.
	ErrKeyRequired = errors.New("charterer is required")
	// ErrRowNotFound reports an update addressed at a row that no longer
	// resolves in the current snapshot.
	ErrRowNotFound = errors.New("no row at the selected address")
)

// Editor implements the row edit protocol against a sheet writer.
type Editor struct {
	writer Writer
}

func NewEditor(w Writer) *Editor {
	return &Editor{writer: w}
}

// RowVector builds the header-ordered value vector for a write. Values are
// keyed by header; headers absent from values contribute empty strings.
// Every value is normalized before write-back.
func RowVector(headers []string, values map[string]string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = CleanCell(values[h])
	}
	return out
}

// Append adds a new record at the end of the sheet. The only mandatory
// field is the Charterer; everything else may be empty.
func (e *Editor) Append(auth WriteAuth, t *Table, fields FieldMap, values map[string]string) error {
	if !auth.Unlocked() {
		return ErrLocked
	}
	if err := requireKey(fields, values); err != nil {
		return err
	}
	return e.writer.AppendRow(RowVector(t.Headers, values))
}

// Update overwrites the full width of the row at address. The address comes
// from the load-time snapshot, never recomputed from content; partial-column
// updates are not supported.
func (e *Editor) Update(auth WriteAuth, t *Table, fields FieldMap, address int, values map[string]string) error {
	if !auth.Unlocked() {
		return ErrLocked
	}
	if _, ok := t.RowAt(address); !ok {
		return ErrRowNotFound
	}
	if err := requireKey(fields, values); err != nil {
		return err
	}
	return e.writer.UpdateRow(address, RowVector(t.Headers, values))
}

func requireKey(fields FieldMap, values map[string]string) error {
	keyHeader, _ := fields.Column(FieldCharterer)
	if CleanCell(values[keyHeader]) == "" {
		return ErrKeyRequired
	}
	return nil
}

// Candidates returns every row whose Charterer equals key exactly. More
// than one candidate means the caller must ask the user to disambiguate by
// row address; the first match is never picked silently.
func Candidates(t *Table, fields FieldMap, key string) []Row {
	keyHeader, _ := fields.Column(FieldCharterer)
	var out []Row
	for _, r := range t.Rows {
		if t.Value(r, keyHeader) == key {
			out = append(out, r)
		}
	}
	return out
}
