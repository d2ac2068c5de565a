// Package validate provides input validation for docdex's domain types.
//
// This package enforces data integrity rules at the boundary between user
// input and the query/storage layers. Each validation function returns nil
// on success or a descriptive error on failure.
//
// # Design Philosophy
//
// Validation stays minimal: clearly unsatisfiable inputs (empty term sets,
// negative distances, out-of-range identifiers) are rejected, and nothing
// beyond that, so legitimate use cases are never ruled out.
//
// # Validation Functions
//
// Terms validates term sequences for boolean and proximity queries.
// Token validates single-word tokens for prefix queries.
// Distance validates proximity distance bounds.
// ID validates document identifiers.
// Content validates document body size limits.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrInvalidQuery, ErrInvalidID, ErrContentTooLarge). Use errors.Is() for
// type-safe error checking:
//
//	if errors.Is(err, validate.ErrInvalidQuery) {
//	    // handle invalid query construction
//	}
package validate
