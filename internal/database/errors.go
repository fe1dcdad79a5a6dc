package database

// StorageError marks a failure of the underlying storage medium (file
// unwritable, database locked by another process, corruption). Stores wrap
// driver errors in it so callers can tell a medium failure apart from
// domain errors. Nothing retries; recovery is the caller's problem.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "storage: " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
