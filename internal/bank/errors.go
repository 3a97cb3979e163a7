package bank

import (
	"errors"
	"fmt"
)

// ErrBankTooLarge indicates the bank payload exceeded the size cap.
var ErrBankTooLarge = errors.New("question bank too large")

// NetworkError indicates the bank could not be retrieved. StatusCode is the
// HTTP status of a non-success response, or 0 when the request never got
// a response.
type NetworkError struct {
	StatusCode int
	URL        string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch question bank: HTTP %d for %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("fetch question bank from %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// InvalidBankError indicates the bank payload was retrieved but does not
// have the expected shape.
type InvalidBankError struct {
	Err error
}

func (e *InvalidBankError) Error() string {
	return fmt.Sprintf("invalid question bank: %v", e.Err)
}

func (e *InvalidBankError) Unwrap() error { return e.Err }
