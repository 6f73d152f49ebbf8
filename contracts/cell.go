// Package contracts holds the wire types, service interfaces, and sentinel
// errors shared between the HTTP surface and its collaborators — the same
// split the teacher keeps between its handlers and its repository/executor
// layer.
package contracts

import "errors"

// CellResponse is the wire shape returned by every cell-affecting endpoint:
// the text as stored, and its computed result (a FormulaError's display
// token, on failure).
type CellResponse struct {
	Value        string `json:"value"`
	Result       string `json:"result"`
	CanonicalKey string `json:"-"`
}

// CellList is the wire shape for GET /api/v1/:sheet_id, keyed by each cell's
// canonical A1 id.
type CellList map[string]*CellResponse

var (
	ErrSheetNotFound = errors.New("sheet not found")
	ErrCellNotFound  = errors.New("cell not found")
	ErrInvalidCellID = errors.New("invalid cell id")
)
