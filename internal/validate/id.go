// id.go implements document identifier validation.
//
// Separated because identifier rules belong to the store's identity model,
// not the query grammar. Stored identifiers are SQLite rowids, which are
// always >= 1 on fresh tables; a non-positive identifier on insert means
// "auto-assign" and is handled before this check runs.

package validate

import "fmt"

// ID validates an explicit document identifier.
//
// Validation rules:
//   - Must be >= 1 (stored identifiers are rowids; zero and negative
//     values are reserved to request auto-assignment)
func ID(id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: must be >= 1, got %d", ErrInvalidID, id)
	}
	return nil
}

// Content validates document content size.
//
// Validation rules:
//   - Max length enforced if maxLen > 0 (0 means no limit)
//
// Only size is validated, not format. Documents can contain any UTF-8 text.
// The limit prevents accidental storage of huge files that would bloat the
// SQLite database.
func Content(content string, maxLen int64) error {
	if maxLen > 0 && int64(len(content)) > maxLen {
		return ErrContentTooLarge
	}
	return nil
}
