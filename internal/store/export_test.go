package store

// ExecRaw runs a statement directly against the store's database.
func ExecRaw(s *SQLiteStore, query string, args ...interface{}) error {
	_, err := s.db.Exec(query, args...)
	return err
}
