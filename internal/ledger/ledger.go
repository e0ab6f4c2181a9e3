// Package ledger implements the shared-expense ledger core: composing new
// bill splits and partitioning a user's visible splits into debts owed and
// debts receivable. All functions are pure; persistence lives in storage.
package ledger

import (
	"fmt"
	"strings"
)

// FieldError describes a single failed validation precondition.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationError reports which preconditions of a split failed. The caller
// must not persist the split when this is returned; no state has changed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid split"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s: %s", f.Field, f.Error)
	}
	return "invalid split: " + strings.Join(msgs, "; ")
}
