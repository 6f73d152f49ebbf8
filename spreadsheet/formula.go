package spreadsheet

// Lookup resolves a single referenced Position to the float64 a formula
// should see. It implements the coercion contract §4.H:
//   - an invalid Position yields FormulaError(Ref);
//   - an absent cell yields 0.0;
//   - a numeric cell yields its number;
//   - a string cell yields 0.0 if empty, else the parsed decimal, or
//     FormulaError(Value) if the whole string doesn't parse as a decimal
//     number;
//   - a cell already holding a FormulaError re-raises it unchanged.
//
// The Sheet builds this function; formulas never see a Sheet directly.
type Lookup func(Position) (float64, *FormulaError)

// Formula is the opaque, externally-supplied parsed expression. The core
// never constructs one itself — SetCell is handed one by whatever grammar
// package the caller wired in (exprformula in this repository).
type Formula interface {
	// Evaluate computes the formula's value against the current sheet
	// state, resolving references through lookup. It returns either a
	// finite number or a FormulaError, never both.
	Evaluate(lookup Lookup) (float64, *FormulaError)

	// ReferencedCells lists, deduplicated, every Position this formula
	// reads. Order is whatever the grammar produced; the core only
	// relies on set semantics.
	ReferencedCells() []Position

	// RenderExpression renders the formula back to source text, without
	// the leading '='.
	RenderExpression() string
}

// Parser is the pluggable grammar contract: given formula source text
// (without the leading '='), produce a Formula or a parse error that will
// surface to callers as ErrFormulaException.
type Parser func(expression string) (Formula, error)
