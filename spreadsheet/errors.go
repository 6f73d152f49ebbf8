package spreadsheet

import "errors"

// ErrInvalidPosition is returned by any operation taking a Position that
// lies outside the grid bounds.
var ErrInvalidPosition = errors.New("invalid position")

// ErrCircularDependency is returned by SetCell when the candidate body
// would close a cycle in the reference graph. The cell's previous body and
// edges are left untouched.
var ErrCircularDependency = errors.New("circular dependency")

// ErrFormulaException wraps a formula-parser failure on text beginning with
// '='. The cell's previous body and edges are left untouched.
var ErrFormulaException = errors.New("formula exception")
