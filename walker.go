package tableui

// CellPosition locates a cell within its table's column grid, resolving
// colspan/rowspan so that merged cells occupy their full column range.
type CellPosition struct {
	Cell    *Element
	Row     int
	Column  int // leftmost column the cell occupies
	Colspan int
	Rowspan int
}

// RightmostColumn returns the last column index the cell occupies.
func (p CellPosition) RightmostColumn() int {
	return p.Column + p.Colspan - 1
}

// walkTableCells yields every cell of the table with its resolved grid
// position, in row-major order. Rows are the table's tableRow children;
// cells spanning multiple rows reserve their columns in the rows below.
func walkTableCells(table *Element) []CellPosition {
	var positions []CellPosition

	// pending[col] = number of rows, current one included, still covered by
	// a rowspan. Decremented at the end of every row.
	pending := make(map[int]int)

	for rowIdx, row := range table.ChildrenNamed(RowElement) {
		col := 0
		for _, cell := range row.ChildrenNamed(CellElement) {
			for pending[col] > 0 {
				col++
			}
			colspan := cell.intAttribute("colspan")
			rowspan := cell.intAttribute("rowspan")
			positions = append(positions, CellPosition{
				Cell:    cell,
				Row:     rowIdx,
				Column:  col,
				Colspan: colspan,
				Rowspan: rowspan,
			})
			if rowspan > 1 {
				for c := col; c < col+colspan; c++ {
					pending[c] = rowspan
				}
			}
			col += colspan
		}
		// Row finished, consume one row of every pending rowspan.
		for c, n := range pending {
			if n <= 1 {
				delete(pending, c)
			} else {
				pending[c] = n - 1
			}
		}
	}
	return positions
}

// tableColumnCount returns the table's column count under span rules.
func tableColumnCount(table *Element) int {
	count := 0
	for _, pos := range walkTableCells(table) {
		if end := pos.Column + pos.Colspan; end > count {
			count = end
		}
	}
	return count
}
