package crontab

// MemoryStore implements Store in memory for testing.
// Writes counts successful Write calls; WriteErr and ReadErr inject failures.
type MemoryStore struct {
	Table    Table
	Writes   int
	ReadErr  error
	WriteErr error
}

// NewMemoryStore creates a MemoryStore holding a copy of lines
func NewMemoryStore(lines ...string) *MemoryStore {
	return &MemoryStore{Table: append(Table{}, lines...)}
}

// Read returns a copy of the stored table
func (s *MemoryStore) Read() (Table, error) {
	if s.ReadErr != nil {
		return nil, s.ReadErr
	}
	return append(Table{}, s.Table...), nil
}

// Write replaces the stored table
func (s *MemoryStore) Write(t Table) error {
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.Table = append(Table{}, t...)
	s.Writes++
	return nil
}

var _ Store = (*MemoryStore)(nil)
