package types

import "fmt"

// ModelEntry is a single value in a counterexample model, kept exactly as
// the solver printed it.
type ModelEntry string

// Model is a variable valuation extracted from the checker's output. Before
// renaming the keys are the checker's decorated variable names; after
// renaming they are source-level variable names.
type Model map[string]ModelEntry

// NamingMap records, for every emitted procedure, which intermediate
// language names correspond to which source-level variables. An empty
// string value marks a generated name that has no source counterpart.
type NamingMap map[string]map[string]string

// VerificationError is one failed proof obligation reported by the checker.
type VerificationError struct {
	Procedure string
	File      string
	Line      int
	Column    int
	Message   string
	Model     Model
}

func (e *VerificationError) String() string {
	return fmt.Sprintf("%s(%d,%d): %s", e.File, e.Line, e.Column, e.Message)
}

// Result is the outcome of one verification run.
type Result struct {
	Errors []*VerificationError
}

// Success reports whether every proof obligation was discharged.
func (r *Result) Success() bool {
	return len(r.Errors) == 0
}
