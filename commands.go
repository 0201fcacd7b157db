package tableui

// ResizeColumnWidthsCommand sets a table's columnWidths attribute in one
// transaction. Executing while not executable is a silent no-op; callers
// check IsEnabled first.
type ResizeColumnWidthsCommand struct {
	doc    *Document
	plugin *ColumnResize
}

// IsEnabled reports whether the command may execute.
func (c *ResizeColumnWidthsCommand) IsEnabled() bool {
	return c.plugin.IsEnabled() && !c.doc.IsReadOnly()
}

// Execute writes the normalized width sequence onto the table.
func (c *ResizeColumnWidthsCommand) Execute(table *Element, columnWidths []float64) {
	if !c.IsEnabled() || table == nil {
		return
	}
	c.doc.Change(func(w *Writer) {
		w.SetAttribute(table, ColumnWidthsAttribute, formatColumnWidths(normalizeColumnWidths(columnWidths)))
	})
}

// ResizeTableWidthCommand sets a table's own width together with its column
// widths in one transaction, so change listeners never observe the two out
// of sync.
type ResizeTableWidthCommand struct {
	doc    *Document
	plugin *ColumnResize
}

// IsEnabled reports whether the command may execute.
func (c *ResizeTableWidthCommand) IsEnabled() bool {
	return c.plugin.IsEnabled() && !c.doc.IsReadOnly()
}

// Execute writes the table width (a "<number>%" token, or "" to remove it
// and return the table to auto width) and the normalized column widths.
func (c *ResizeTableWidthCommand) Execute(table *Element, tableWidth string, columnWidths []float64) {
	if !c.IsEnabled() || table == nil {
		return
	}
	c.doc.Change(func(w *Writer) {
		if tableWidth == "" {
			w.RemoveAttribute(table, TableWidthAttribute)
		} else {
			w.SetAttribute(table, TableWidthAttribute, tableWidth)
		}
		w.SetAttribute(table, ColumnWidthsAttribute, formatColumnWidths(normalizeColumnWidths(columnWidths)))
	})
}
