package sheets

// Store is the contract the registry service has with the external
// spreadsheet: a full read of the sheet, an append at the end, and a
// full-width overwrite of one row.
type Store interface {
	ReadAll() ([][]string, error)
	AppendRow(values []string) error
	UpdateRow(address int, values []string) error
}

// ColumnLetter converts a 1-based column index to its A1 letter form:
// 1→A, 26→Z, 27→AA. Bijective base-26, no zero digit.
func ColumnLetter(n int) string {
	letters := []byte{}
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return string(letters)
}
