package repository

import "errors"

var (
	ErrNotFound  = errors.New("resource not found")
	ErrInvalidID = errors.New("invalid id")
)

// StoreError wraps any failure reported by the record store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
