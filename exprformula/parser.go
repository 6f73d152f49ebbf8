// Package exprformula is the external formula collaborator the spreadsheet
// core is deliberately ignorant of: it parses arithmetic expressions over
// A1-style cell references using github.com/expr-lang/expr and satisfies
// spreadsheet.Formula.
package exprformula

import (
	"fmt"
	"math"
	"regexp"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jiocb86/gridflow/spreadsheet"
)

// cellRefPattern matches spreadsheet-style cell references: one to three
// letters followed by one to seven digits, on a word boundary so it
// doesn't also swallow function names or numeric literals.
var cellRefPattern = regexp.MustCompile(`\b[A-Za-z]{1,3}[0-9]{1,7}\b`)

// Formula is an expr-compiled program plus the ordered, deduplicated list
// of cell positions it references.
type Formula struct {
	source  string
	program *vm.Program
	refs    []spreadsheet.Position
}

// Parse compiles expression (the formula text with the leading '=' already
// stripped) against the built-in function set and the cell references it
// finds in the text.
//
// Every reference token is first rewritten to its canonical uppercase A1
// form (e.g. "a1" and "A1" both become "A1") so the same position always
// compiles to the same expr identifier — Evaluate's env is keyed by
// Position.A1(), which is always canonical, and compile-time and run-time
// identifiers must agree exactly.
func Parse(expression string) (spreadsheet.Formula, error) {
	normalized, refs := extractReferences(expression)

	env := make(map[string]any, len(refs))
	for _, pos := range refs {
		env[pos.A1()] = float64(0)
	}

	options := append(compilerOptions(), expr.Env(env))
	program, err := expr.Compile(normalized, options...)
	if err != nil {
		return nil, fmt.Errorf("compile formula %q: %w", expression, err)
	}

	return &Formula{source: normalized, program: program, refs: refs}, nil
}

// extractReferences rewrites every cell-reference token in expression to
// its canonical Position.A1() spelling and returns the normalized text
// alongside the deduplicated, first-occurrence-ordered positions found.
func extractReferences(expression string) (string, []spreadsheet.Position) {
	seen := make(map[spreadsheet.Position]bool)
	refs := make([]spreadsheet.Position, 0)

	normalized := cellRefPattern.ReplaceAllStringFunc(expression, func(token string) string {
		pos, err := spreadsheet.PositionFromA1(token)
		if err != nil {
			// Not actually a reference (a zero row, e.g. "A0"); left
			// untouched, and expr will reject it at compile time if it
			// isn't a valid identifier use either way.
			return token
		}

		if !seen[pos] {
			seen[pos] = true
			refs = append(refs, pos)
		}
		return pos.A1()
	})

	return normalized, refs
}

// Evaluate resolves every reference up front (the grammar is pure
// arithmetic, so every reference is always consumed) and short-circuits on
// the first FormulaError a lookup produces. A non-finite program result is
// reported as FormulaError(Arithmetic).
func (f *Formula) Evaluate(lookup spreadsheet.Lookup) (float64, *spreadsheet.FormulaError) {
	env := make(map[string]any, len(f.refs))
	for _, pos := range f.refs {
		value, ferr := lookup(pos)
		if ferr != nil {
			return 0, ferr
		}
		env[pos.A1()] = value
	}

	output, err := expr.Run(f.program, env)
	if err != nil {
		fe := spreadsheet.NewFormulaError(spreadsheet.ErrorValue)
		return 0, &fe
	}

	result, ok := toFloat(output)
	if !ok {
		fe := spreadsheet.NewFormulaError(spreadsheet.ErrorValue)
		return 0, &fe
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		fe := spreadsheet.NewFormulaError(spreadsheet.ErrorArithmetic)
		return 0, &fe
	}

	return result, nil
}

func (f *Formula) ReferencedCells() []spreadsheet.Position { return f.refs }

func (f *Formula) RenderExpression() string { return f.source }

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
