package tableui

// widthsPostFixer reconciles the columnWidths attribute of every table
// touched by the batch against the table's current structure. It runs inside
// the document's fixed-point loop and reports whether it wrote anything, so
// a pass that changes nothing terminates the loop.
//
// Guarantees after any pass: the attribute has exactly one entry per column
// and its values sum to 100.
func (p *ColumnResize) widthsPostFixer(w *Writer, b *Batch) bool {
	changed := false
	for _, table := range b.ChangedTables() {
		if p.fixTableWidths(w, table) {
			changed = true
		}
	}
	return changed
}

// fixTableWidths reconciles a single table. Returns true if the attribute
// was rewritten.
func (p *ColumnResize) fixTableWidths(w *Writer, table *Element) bool {
	attr, ok := table.Attribute(ColumnWidthsAttribute)
	if !ok {
		return false
	}

	widths := normalizeColumnWidths(parseColumnWidths(attr))
	positions := walkTableCells(table)

	// Insert/delete are each applied once per pass; the remaining cells only
	// refresh their tracked indexes. A second structural change in the same
	// batch is caught by the next fixed-point round.
	insertionSeen := false
	deletionSeen := false

	for _, pos := range positions {
		stored, known := p.tracker.Lookup(pos.Cell)
		if !known {
			// First observation is never a structural change.
			p.tracker.Record(pos.Cell, pos.Column)
			continue
		}
		switch {
		case stored < pos.Column:
			// Columns were inserted to the cell's left.
			if !insertionSeen {
				insertionSeen = true
				widths = spliceWidths(widths, stored, pos.Column-stored, p.columnMinWidthPercent(table))
			}
		case stored > pos.Column:
			// Columns were removed to the cell's left.
			if !deletionSeen {
				deletionSeen = true
				widths = removeWidthsDonatingLeft(widths, pos.Column, stored-pos.Column)
			}
		}
		p.tracker.Record(pos.Cell, pos.Column)
	}

	// Trailing insertion/deletion: structure and sequence length can still
	// disagree when columns changed at the table's end.
	columnCount := tableColumnCount(table)
	if len(widths) < columnCount {
		widths = spliceWidths(widths, len(widths), columnCount-len(widths), p.columnMinWidthPercent(table))
	} else if len(widths) > columnCount && columnCount > 0 {
		widths = removeWidthsDonatingLeft(widths, columnCount, len(widths)-columnCount)
	}

	out := formatColumnWidths(normalizeColumnWidths(widths))
	if out == attr {
		return false
	}
	w.SetAttribute(table, ColumnWidthsAttribute, out)
	return true
}

// columnMinWidthPercent converts the pixel minimum column width into a
// percentage of the table's rendered width. Falls back to a fixed percentage
// when the table has no measured rendering yet.
func (p *ColumnResize) columnMinWidthPercent(table *Element) float64 {
	figure := p.renderer.ViewFor(table)
	if figure == nil {
		return ColumnMinWidthPercent
	}
	tablePx := figure.MeasuredWidth()
	if tableView := figure.ChildNamed(ViewTable); tableView != nil && tableView.MeasuredWidth() > 0 {
		tablePx = tableView.MeasuredWidth()
	}
	if tablePx <= 0 {
		return ColumnMinWidthPercent
	}
	return roundPercent(pixelsToPercent(ColumnMinWidthPixels, tablePx))
}
