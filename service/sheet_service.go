package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jiocb86/gridflow/contracts"
	"github.com/jiocb86/gridflow/exprformula"
	"github.com/jiocb86/gridflow/spreadsheet"
)

// guardedSheet pairs a sheet with the mutex that serializes access to it —
// the core stays single-threaded per spec, the service layer is what makes
// many sheets safe under concurrent HTTP handlers.
type guardedSheet struct {
	mu    sync.Mutex
	sheet *spreadsheet.Sheet
}

// InMemorySheetService is the multi-sheet façade over the engine, grounded
// in the teacher's SheetRepository — same method surface, same
// canonicalize-then-dispatch shape, minus the bbolt-backed persistence:
// the engine already holds the authoritative in-memory state.
type InMemorySheetService struct {
	mu            sync.Mutex
	sheets        map[string]*guardedSheet
	canonicalizer *Canonicalizer
	dispatcher    contracts.WebhookDispatcher
}

func NewInMemorySheetService(canonicalizer *Canonicalizer, dispatcher contracts.WebhookDispatcher) *InMemorySheetService {
	return &InMemorySheetService{
		sheets:        make(map[string]*guardedSheet),
		canonicalizer: canonicalizer,
		dispatcher:    dispatcher,
	}
}

func (s *InMemorySheetService) sheetFor(sheetID string, create bool) (*guardedSheet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs, ok := s.sheets[sheetID]
	if !ok {
		if !create {
			return nil, false
		}
		gs = &guardedSheet{sheet: spreadsheet.NewSheet(exprformula.Parse)}
		s.sheets[sheetID] = gs
	}
	return gs, true
}

// SetCell canonicalizes cellID, writes it into the sheet's position, and on
// success notifies the webhook dispatcher with the cell itself plus every
// transitively recomputed dependent — walking the sheet's own graph, no
// separate dependency tree kept.
func (s *InMemorySheetService) SetCell(sheetID string, cellID string, value string) (*contracts.CellResponse, error) {
	canonicalKey := s.canonicalizer.Canonicalize(cellID)
	pos, err := spreadsheet.PositionFromA1(canonicalKey)
	if err != nil {
		return nil, fmt.Errorf("cell_id %q: %w", cellID, contracts.ErrInvalidCellID)
	}

	gs, _ := s.sheetFor(sheetID, true)
	gs.mu.Lock()
	defer gs.mu.Unlock()

	response := &contracts.CellResponse{Value: value, CanonicalKey: canonicalKey}

	if err := gs.sheet.SetCell(pos, value); err != nil {
		response.Result = err.Error()
		return response, translateEngineError(err)
	}

	cell, _ := gs.sheet.GetCell(pos)
	response.Result = cell.GetValue().String()

	if s.dispatcher != nil {
		cells := s.collectNotification(gs.sheet, pos, response)
		s.dispatcher.Notify(sheetID, cells)
	}

	return response, nil
}

func (s *InMemorySheetService) collectNotification(sheet *spreadsheet.Sheet, pos spreadsheet.Position, changed *contracts.CellResponse) []*contracts.CellResponse {
	dependents, err := sheet.TransitiveDependents(pos)
	if err != nil || len(dependents) == 0 {
		return []*contracts.CellResponse{changed}
	}

	cells := make([]*contracts.CellResponse, 0, len(dependents)+1)
	cells = append(cells, changed)

	for _, depPos := range dependents {
		cell, err := sheet.GetCell(depPos)
		if err != nil || cell == nil {
			continue
		}
		cells = append(cells, &contracts.CellResponse{
			Value:        cell.GetText(),
			Result:       cell.GetValue().String(),
			CanonicalKey: depPos.A1(),
		})
	}

	return cells
}

func (s *InMemorySheetService) GetCell(sheetID string, cellID string) (*contracts.CellResponse, error) {
	canonicalKey := s.canonicalizer.Canonicalize(cellID)
	pos, err := spreadsheet.PositionFromA1(canonicalKey)
	if err != nil {
		return nil, fmt.Errorf("cell_id %q: %w", cellID, contracts.ErrInvalidCellID)
	}

	gs, ok := s.sheetFor(sheetID, false)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sheetID, contracts.ErrSheetNotFound)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	cell, err := gs.sheet.GetCell(pos)
	if err != nil {
		return nil, fmt.Errorf("cell_id %q: %w", cellID, contracts.ErrInvalidCellID)
	}
	if cell == nil {
		return nil, fmt.Errorf("%s: %w", cellID, contracts.ErrCellNotFound)
	}

	return &contracts.CellResponse{
		Value:        cell.GetText(),
		Result:       cell.GetValue().String(),
		CanonicalKey: canonicalKey,
	}, nil
}

func (s *InMemorySheetService) GetCellList(sheetID string) (contracts.CellList, error) {
	gs, ok := s.sheetFor(sheetID, false)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sheetID, contracts.ErrSheetNotFound)
	}

	gs.mu.Lock()
	defer gs.mu.Unlock()

	size := gs.sheet.GetPrintableSize()
	list := contracts.CellList{}

	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			p := spreadsheet.Position{Row: row, Col: col}
			cell, err := gs.sheet.GetCell(p)
			if err != nil || cell == nil {
				continue
			}
			if cell.GetText() == "" {
				continue
			}
			list[p.A1()] = &contracts.CellResponse{
				Value:        cell.GetText(),
				Result:       cell.GetValue().String(),
				CanonicalKey: p.A1(),
			}
		}
	}

	return list, nil
}

func translateEngineError(err error) error {
	switch {
	case errors.Is(err, spreadsheet.ErrInvalidPosition):
		return fmt.Errorf("%w: %v", contracts.ErrInvalidCellID, err)
	default:
		return err
	}
}

var _ contracts.SheetService = (*InMemorySheetService)(nil)
