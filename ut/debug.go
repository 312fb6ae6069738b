package ut

import (
	"fmt"
	"runtime"
)

// DebugInfo captures assertion context.
type DebugInfo struct {
	Expr string
	File string
	Line int
}

// LastAssertion records the most recent assertion failure.
var LastAssertion DebugInfo

// Assert checks a caller contract. A false cond records the failing
// expression and call site, then panics; contract violations are bugs
// in the caller, not recoverable errors.
func Assert(cond bool, expr string) {
	if cond {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	LastAssertion = DebugInfo{Expr: expr, File: file, Line: line}
	panic(fmt.Sprintf("assertion failed: %s (%s:%d)", expr, file, line))
}

// DbgReset clears recorded assertion state.
func DbgReset() {
	LastAssertion = DebugInfo{}
}
