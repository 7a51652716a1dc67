package asm

import (
	"errors"
	"fmt"
)

// ErrLookup is matched by every LookupError.
var ErrLookup = errors.New("lookup failed")

// LookupError reports text missing from the comp, dest or jump tables, or a
// symbol missing from the resolved symbol table.
type LookupError struct {
	Field string
	Text  string
	Line  int
}

func (e *LookupError) Error() string {
	if e.Field == "symbol" {
		return fmt.Sprintf("undefined symbol %q on line %d", e.Text, e.Line)
	}
	return fmt.Sprintf("unknown %s %q on line %d", e.Field, e.Text, e.Line)
}

func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}
