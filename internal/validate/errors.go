// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct validation failure category.
//
// Design: Sentinel errors (not error types) because validation failures
// don't carry additional context beyond the category. Detailed messages
// are provided by wrapping these with fmt.Errorf in the validation functions.

package validate

import "errors"

var (
	// ErrInvalidQuery indicates a query construction received an unsatisfiable
	// input (empty term set, blank phrase, negative proximity distance). This
	// is a caller programming error, surfaced immediately and never retried.
	ErrInvalidQuery = errors.New("invalid query construction")
	// ErrInvalidID indicates a document identifier outside the accepted range.
	ErrInvalidID = errors.New("invalid document id")
	// ErrContentTooLarge is returned when document content exceeds the configured limit.
	ErrContentTooLarge = errors.New("content too large")
)
