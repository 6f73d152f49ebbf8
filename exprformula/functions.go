package exprformula

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// compilerOptions returns the shared expr.Compile options: no stray
// builtins (so a cell reference can never accidentally shadow one), and
// the aggregate functions every formula gets for free.
//
// Grounded in the teacher's MathFunctions.go, simplified because every
// value in this engine is already a float64 — there's no need for the
// teacher's generic `any`-typed runtime arithmetic helpers.
func compilerOptions() []expr.Option {
	return []expr.Option{
		expr.DisableAllBuiltins(),
		sumFunction,
		avgFunction,
		minFunction,
		maxFunction,
	}
}

var sumFunction = expr.Function("SUM", func(args ...any) (any, error) {
	var total float64
	for _, arg := range args {
		n, err := argFloat(arg)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return total, nil
})

var avgFunction = expr.Function("AVERAGE", func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("AVERAGE: no arguments")
	}
	var total float64
	for _, arg := range args {
		n, err := argFloat(arg)
		if err != nil {
			return nil, err
		}
		total += n
	}
	return total / float64(len(args)), nil
})

var minFunction = expr.Function("MIN", func(args ...any) (any, error) {
	return extremum(args, func(a, b float64) bool { return a < b })
})

var maxFunction = expr.Function("MAX", func(args ...any) (any, error) {
	return extremum(args, func(a, b float64) bool { return a > b })
})

func extremum(args []any, better func(a, b float64) bool) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no arguments")
	}
	best, err := argFloat(args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		n, err := argFloat(arg)
		if err != nil {
			return nil, err
		}
		if better(n, best) {
			best = n
		}
	}
	return best, nil
}

func argFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("unsupported argument type %T", v)
	}
}
