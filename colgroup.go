package tableui

// View classes used by the resize interaction.
const (
	// ColumnResizerClass marks the drag-handle affordance inside each cell.
	ColumnResizerClass = "table-column-resizer"

	// ResizerActiveClass marks the handle being dragged.
	ResizerActiveClass = "table-column-resizer_active"

	// ResizedTableClass marks a figure whose table carries explicit widths.
	ResizedTableClass = "table-resized"
)

// ensureResizerHandles appends a drag-handle element to every cell that does
// not have one yet. Idempotent; runs after every render pass.
func ensureResizerHandles(tableView *ViewElement) {
	for _, tr := range tableView.ChildrenNamed(ViewRow) {
		for _, td := range tr.ChildrenNamed(ViewCell) {
			if td.ChildWithClass(ColumnResizerClass) != nil {
				continue
			}
			handle := NewViewElement("div")
			handle.AddClass(ColumnResizerClass)
			td.AppendChild(handle)
		}
	}
}

// ensureColgroup returns the table's colgroup, synthesizing one sized from
// the given percentage widths when the table has none yet.
func ensureColgroup(tableView *ViewElement, percents []float64) *ViewElement {
	if colgroup := tableView.ChildNamed(ViewColgroup); colgroup != nil {
		return colgroup
	}
	colgroup := NewViewElement(ViewColgroup)
	for _, pct := range percents {
		col := NewViewElement(ViewCol)
		col.SetStyle("width", formatPercent(pct))
		colgroup.AppendChild(col)
	}
	tableView.InsertChild(0, colgroup)
	return colgroup
}

// colgroupWidths reads the percentage widths off a colgroup's col children.
func colgroupWidths(colgroup *ViewElement) []float64 {
	cols := colgroup.ChildrenNamed(ViewCol)
	widths := make([]float64, 0, len(cols))
	for _, col := range cols {
		if v, ok := parsePercent(col.Style("width")); ok {
			widths = append(widths, v)
		}
	}
	return widths
}

// syncColgroupWidths writes percentage widths onto a colgroup's cols.
// Extra cols keep their current width; missing cols are appended.
func syncColgroupWidths(colgroup *ViewElement, percents []float64) {
	cols := colgroup.ChildrenNamed(ViewCol)
	for i, pct := range percents {
		if i < len(cols) {
			cols[i].SetStyle("width", formatPercent(pct))
			continue
		}
		col := NewViewElement(ViewCol)
		col.SetStyle("width", formatPercent(pct))
		colgroup.AppendChild(col)
	}
}

// RefreshTable restores a table's colgroup after layout or selection
// changes. A table that has width data but lost its rendered colgroup (it
// was just inserted via paste or undo) is force re-rendered from its
// attributes. A recoverable rendering gap, not an error.
func (p *ColumnResize) RefreshTable(table *Element) {
	if !table.HasAttribute(ColumnWidthsAttribute) {
		return
	}
	figure := p.renderer.ViewFor(table)
	if figure == nil {
		p.renderer.RenderTable(table)
		return
	}
	tableView := figure.ChildNamed(ViewTable)
	if tableView == nil || tableView.ChildNamed(ViewColgroup) == nil {
		p.renderer.RenderTable(table)
	}
}
