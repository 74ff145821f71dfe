package store

import "fmt"

// DalError wraps any failure reported by the storage engine. Op describes
// what the store was doing, e.g. "inserting task".
type DalError struct {
	Op  string
	Err error
}

func (e *DalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DalError) Unwrap() error {
	return e.Err
}

func dalError(op string, err error) error {
	return &DalError{Op: op, Err: err}
}
