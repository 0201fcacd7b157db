package tableui

import "testing"

func TestWalkTableCellsSimpleGrid(t *testing.T) {
	table := buildTable(2, 3, nil)
	positions := walkTableCells(table)

	if len(positions) != 6 {
		t.Fatalf("expected 6 cell positions, got %d", len(positions))
	}
	wantCols := []int{0, 1, 2, 0, 1, 2}
	for i, pos := range positions {
		if pos.Column != wantCols[i] {
			t.Errorf("cell %d: column = %d, want %d", i, pos.Column, wantCols[i])
		}
	}
	if count := tableColumnCount(table); count != 3 {
		t.Errorf("tableColumnCount = %d, want 3", count)
	}
}

func TestWalkTableCellsColspan(t *testing.T) {
	// Row 0: [A colspan=2][B]  Row 1: [C][D][E]
	table := NewElement(TableElement, nil,
		NewElement(RowElement, nil,
			NewElement(CellElement, map[string]string{"colspan": "2"}),
			NewElement(CellElement, nil),
		),
		NewElement(RowElement, nil,
			NewElement(CellElement, nil),
			NewElement(CellElement, nil),
			NewElement(CellElement, nil),
		),
	)

	positions := walkTableCells(table)
	wantCols := []int{0, 2, 0, 1, 2}
	for i, pos := range positions {
		if pos.Column != wantCols[i] {
			t.Errorf("cell %d: column = %d, want %d", i, pos.Column, wantCols[i])
		}
	}
	if positions[1].RightmostColumn() != 2 {
		t.Errorf("B rightmost column = %d, want 2", positions[1].RightmostColumn())
	}
	if positions[0].RightmostColumn() != 1 {
		t.Errorf("A rightmost column = %d, want 1", positions[0].RightmostColumn())
	}
	if count := tableColumnCount(table); count != 3 {
		t.Errorf("tableColumnCount = %d, want 3", count)
	}
}

func TestWalkTableCellsRowspan(t *testing.T) {
	// Row 0: [A rowspan=2][B][C]  Row 1: [D][E], which shift right past A.
	table := NewElement(TableElement, nil,
		NewElement(RowElement, nil,
			NewElement(CellElement, map[string]string{"rowspan": "2"}),
			NewElement(CellElement, nil),
			NewElement(CellElement, nil),
		),
		NewElement(RowElement, nil,
			NewElement(CellElement, nil),
			NewElement(CellElement, nil),
		),
	)

	positions := walkTableCells(table)
	wantCols := []int{0, 1, 2, 1, 2}
	for i, pos := range positions {
		if pos.Column != wantCols[i] {
			t.Errorf("cell %d: column = %d, want %d", i, pos.Column, wantCols[i])
		}
	}
	if count := tableColumnCount(table); count != 3 {
		t.Errorf("tableColumnCount = %d, want 3", count)
	}
}

func TestWalkTableCellsRowspanAndColspan(t *testing.T) {
	// Row 0: [A rowspan=2 colspan=2][B]  Row 1: [C]  Row 2: [D][E][F]
	table := NewElement(TableElement, nil,
		NewElement(RowElement, nil,
			NewElement(CellElement, map[string]string{"rowspan": "2", "colspan": "2"}),
			NewElement(CellElement, nil),
		),
		NewElement(RowElement, nil,
			NewElement(CellElement, nil),
		),
		NewElement(RowElement, nil,
			NewElement(CellElement, nil),
			NewElement(CellElement, nil),
			NewElement(CellElement, nil),
		),
	)

	positions := walkTableCells(table)
	wantCols := []int{0, 2, 2, 0, 1, 2}
	for i, pos := range positions {
		if pos.Column != wantCols[i] {
			t.Errorf("cell %d: column = %d, want %d", i, pos.Column, wantCols[i])
		}
	}
}

func TestColumnIndexTracker(t *testing.T) {
	tracker := NewColumnIndexTracker()
	cell := NewElement(CellElement, nil)

	if _, known := tracker.Lookup(cell); known {
		t.Error("fresh tracker should not know the cell")
	}

	tracker.Record(cell, 2)
	idx, known := tracker.Lookup(cell)
	if !known || idx != 2 {
		t.Errorf("Lookup = (%d, %v), want (2, true)", idx, known)
	}

	tracker.Record(cell, 4)
	if idx, _ := tracker.Lookup(cell); idx != 4 {
		t.Errorf("Lookup after re-record = %d, want 4", idx)
	}
	if tracker.Len() != 1 {
		t.Errorf("Len = %d, want 1", tracker.Len())
	}
}
