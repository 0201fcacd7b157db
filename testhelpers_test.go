package tableui

import (
	"strconv"
	"testing"
	"time"
)

// buildTable creates a rows×cols table with empty cells.
func buildTable(rows, cols int, attrs map[string]string) *Element {
	rowEls := make([]*Element, 0, rows)
	for r := 0; r < rows; r++ {
		cells := make([]*Element, 0, cols)
		for c := 0; c < cols; c++ {
			cells = append(cells, NewElement(CellElement, nil))
		}
		rowEls = append(rowEls, NewElement(RowElement, nil, cells...))
	}
	return NewElement(TableElement, attrs, rowEls...)
}

// gridMeasurer lays out a rendered table inside a container of the given
// pixel width: the table takes its figure width percentage of the container
// (or all of it), columns follow the colgroup percentages (or split evenly).
func gridMeasurer(containerPx float64) Measurer {
	return func(figure *ViewElement) {
		tablePx := containerPx
		if pct, ok := parsePercent(figure.Style("width")); ok {
			tablePx = containerPx * pct / 100
		}
		figure.SetMeasuredWidth(tablePx)

		tableView := figure.ChildNamed(ViewTable)
		if tableView == nil {
			return
		}
		tableView.SetMeasuredWidth(tablePx)

		var colPx []float64
		if cg := tableView.ChildNamed(ViewColgroup); cg != nil {
			for _, pct := range colgroupWidths(cg) {
				colPx = append(colPx, tablePx*pct/100)
			}
		}

		for _, tr := range tableView.ChildrenNamed(ViewRow) {
			tds := tr.ChildrenNamed(ViewCell)
			col := 0
			for _, td := range tds {
				span := 1
				if v, ok := td.Attribute("colspan"); ok {
					if n, err := strconv.Atoi(v); err == nil && n > 0 {
						span = n
					}
				}
				px := 0.0
				for i := 0; i < span; i++ {
					if col+i < len(colPx) {
						px += colPx[col+i]
					} else {
						px += tablePx / float64(len(tds))
					}
				}
				td.SetMeasuredWidth(px)
				col += span
			}
		}
	}
}

// fixture wires a document, renderer and resize controller around one table
// rendered in a 1000px container.
type fixture struct {
	doc      *Document
	renderer *Renderer
	resize   *ColumnResize
	table    *Element
}

const fixtureContainerPx = 1000

func newFixture(t *testing.T, rows, cols int, attrs map[string]string) *fixture {
	t.Helper()

	doc := NewDocument()
	renderer := NewRenderer(doc)
	renderer.ViewRoot().SetMeasuredWidth(fixtureContainerPx)
	renderer.SetMeasurer(gridMeasurer(fixtureContainerPx))
	resize := NewColumnResize(doc, renderer)

	// Deterministic clock: every observation advances well past the drag
	// throttle interval.
	tick := 0
	resize.now = func() time.Time {
		tick++
		return time.Unix(0, int64(tick)*int64(2*dragThrottleInterval))
	}

	table := buildTable(rows, cols, attrs)
	doc.Change(func(w *Writer) {
		w.AppendChild(doc.Root(), table)
	})

	return &fixture{doc: doc, renderer: renderer, resize: resize, table: table}
}

// handleFor returns the resize handle inside the cell at the given row and
// cell index.
func (f *fixture) handleFor(t *testing.T, row, cell int) *ViewElement {
	t.Helper()
	rows := f.table.ChildrenNamed(RowElement)
	if row >= len(rows) {
		t.Fatalf("no row %d", row)
	}
	cells := rows[row].ChildrenNamed(CellElement)
	if cell >= len(cells) {
		t.Fatalf("no cell %d in row %d", cell, row)
	}
	td := f.renderer.ViewFor(cells[cell])
	if td == nil {
		t.Fatalf("cell (%d,%d) has no rendered view", row, cell)
	}
	handle := td.ChildWithClass(ColumnResizerClass)
	if handle == nil {
		t.Fatalf("cell (%d,%d) has no resize handle", row, cell)
	}
	return handle
}

// columnWidthsAttr returns the table's columnWidths attribute ("" if absent).
func (f *fixture) columnWidthsAttr() string {
	attr, _ := f.table.Attribute(ColumnWidthsAttribute)
	return attr
}

// tableWidthAttr returns the table's tableWidth attribute ("" if absent).
func (f *fixture) tableWidthAttr() string {
	attr, _ := f.table.Attribute(TableWidthAttribute)
	return attr
}

// insertCellAt inserts a fresh cell at the given index in every row.
func (f *fixture) insertCellAt(index int) {
	f.doc.Change(func(w *Writer) {
		for _, row := range f.table.ChildrenNamed(RowElement) {
			w.InsertChild(row, index, NewElement(CellElement, nil))
		}
	})
}

// removeCellAt removes the cell at the given index from every row.
func (f *fixture) removeCellAt(index int) {
	f.doc.Change(func(w *Writer) {
		for _, row := range f.table.ChildrenNamed(RowElement) {
			w.RemoveChild(row, index)
		}
	})
}
