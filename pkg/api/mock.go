package api

type updateCall struct {
	Address int
	Values  []string
}

// mockStore implements sheets.Store for tests, capturing every write and
// counting reads so cache behavior is observable.
type mockStore struct {
	Values    [][]string
	ReadErr   error
	AppendErr error
	UpdateErr error

	ReadCalls   int
	AppendCalls [][]string
	UpdateCalls []updateCall
}

func (m *mockStore) ReadAll() ([][]string, error) {
	m.ReadCalls++
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return m.Values, nil
}

func (m *mockStore) AppendRow(values []string) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.AppendCalls = append(m.AppendCalls, values)
	return nil
}

func (m *mockStore) UpdateRow(address int, values []string) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	m.UpdateCalls = append(m.UpdateCalls, updateCall{Address: address, Values: values})
	return nil
}
