// query.go implements validation for query construction inputs.
//
// Separated because query validation guards a different boundary than
// document validation: these checks run before any canonical query string
// is built, catching unsatisfiable intents (an AND of nothing, a prefix of
// whitespace) as caller programming errors rather than engine rejections.

package validate

import (
	"fmt"
	"strings"
	"unicode"
)

// Terms validates a term sequence for boolean and proximity queries.
//
// Validation rules:
//   - The sequence must contain at least one term (no well-defined
//     "AND of nothing")
//   - Every term must contain at least one non-whitespace character
func Terms(terms []string) error {
	if len(terms) == 0 {
		return fmt.Errorf("%w: empty term sequence", ErrInvalidQuery)
	}
	for i, t := range terms {
		if strings.TrimSpace(t) == "" {
			return fmt.Errorf("%w: blank term at position %d", ErrInvalidQuery, i)
		}
	}
	return nil
}

// Token validates a single-word token for prefix queries.
//
// Validation rules:
//   - Must be non-empty
//   - Must not contain whitespace (a multi-word prefix query is undefined)
func Token(token string) error {
	if token == "" {
		return fmt.Errorf("%w: empty prefix token", ErrInvalidQuery)
	}
	if strings.IndexFunc(token, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: prefix token %q contains whitespace", ErrInvalidQuery, token)
	}
	return nil
}

// Distance validates a proximity distance bound. Zero is legal (terms must
// be adjacent); negative distances are unsatisfiable.
func Distance(d int) error {
	if d < 0 {
		return fmt.Errorf("%w: proximity distance must be >= 0, got %d", ErrInvalidQuery, d)
	}
	return nil
}
