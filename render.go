package tableui

// Measurer assigns pixel widths to a freshly rendered subtree. The embedder
// (rendering backend in production, the test harness in tests) walks the
// subtree and calls SetMeasuredWidth on the elements it lays out.
type Measurer func(root *ViewElement)

// Renderer downcasts model tables into their rendered view form and keeps
// the model↔view binding maps the resize interaction relies on.
//
// A rendered table has the shape:
//
//	figure.table [style width: tableWidth]
//	  table
//	    colgroup            (only when columnWidths is set)
//	      col [style width: <pct>] ...
//	    tr
//	      td ...
type Renderer struct {
	doc      *Document
	viewRoot *ViewElement
	toView   map[*Element]*ViewElement
	toModel  map[*ViewElement]*Element
	measurer Measurer
}

// NewRenderer creates a renderer bound to the document and subscribes it to
// change notifications: every settled batch re-renders the touched tables.
func NewRenderer(doc *Document) *Renderer {
	r := &Renderer{
		doc:      doc,
		viewRoot: NewViewElement("$root"),
		toView:   make(map[*Element]*ViewElement),
		toModel:  make(map[*ViewElement]*Element),
	}
	doc.AddChangeListener(func(b *Batch) {
		for _, table := range b.ChangedTables() {
			r.RenderTable(table)
		}
	})
	return r
}

// ViewRoot returns the root of the rendered tree.
func (r *Renderer) ViewRoot() *ViewElement { return r.viewRoot }

// SetMeasurer installs the embedder's layout hook. It runs after every table
// (re)render with the new figure as root.
func (r *Renderer) SetMeasurer(m Measurer) { r.measurer = m }

// ViewFor returns the view element bound to a model element (figure for a
// table, td for a cell), or nil.
func (r *Renderer) ViewFor(e *Element) *ViewElement { return r.toView[e] }

// ModelFor returns the model element bound to a view element, or nil.
func (r *Renderer) ModelFor(v *ViewElement) *Element { return r.toModel[v] }

// RenderDocument renders every table under the document root.
func (r *Renderer) RenderDocument() {
	for _, table := range r.doc.Root().ChildrenNamed(TableElement) {
		r.RenderTable(table)
	}
}

// RenderTable (re)builds the rendered form of one table from its current
// model attributes and structure, replacing any previous rendering in place.
// This is also the forced re-render used when a table's colgroup went
// missing (e.g. the table was just reinserted by paste or undo).
func (r *Renderer) RenderTable(table *Element) *ViewElement {
	figure := r.buildFigure(table)

	if old := r.toView[table]; old != nil {
		r.unbind(old)
		if parent := old.Parent(); parent != nil {
			for i, c := range parent.Children() {
				if c == old {
					parent.RemoveChild(old)
					parent.InsertChild(i, figure)
					break
				}
			}
		}
	} else {
		r.viewRoot.AppendChild(figure)
	}

	r.toView[table] = figure
	r.toModel[figure] = table

	if r.measurer != nil {
		r.measurer(figure)
	}
	return figure
}

// buildFigure downcasts a model table into a fresh view subtree and binds
// its cells.
func (r *Renderer) buildFigure(table *Element) *ViewElement {
	figure := NewViewElement(ViewFigure)
	figure.AddClass("table")
	if width, ok := table.Attribute(TableWidthAttribute); ok {
		figure.SetStyle("width", width)
	}

	tableView := NewViewElement(ViewTable)
	figure.AppendChild(tableView)

	if attr, ok := table.Attribute(ColumnWidthsAttribute); ok {
		figure.AddClass(ResizedTableClass)
		colgroup := NewViewElement(ViewColgroup)
		for _, w := range parseColumnWidths(attr) {
			col := NewViewElement(ViewCol)
			col.SetStyle("width", formatPercent(w))
			colgroup.AppendChild(col)
		}
		tableView.AppendChild(colgroup)
	}

	for _, row := range table.ChildrenNamed(RowElement) {
		tr := NewViewElement(ViewRow)
		tableView.AppendChild(tr)
		for _, cell := range row.ChildrenNamed(CellElement) {
			td := NewViewElement(ViewCell)
			if v, ok := cell.Attribute("colspan"); ok {
				td.SetAttribute("colspan", v)
			}
			if v, ok := cell.Attribute("rowspan"); ok {
				td.SetAttribute("rowspan", v)
			}
			for _, child := range cell.Children() {
				td.AppendChild(downcastInline(child))
			}
			tr.AppendChild(td)
			r.toView[cell] = td
			r.toModel[td] = cell
		}
	}

	ensureResizerHandles(tableView)
	return figure
}

// unbind drops the binding entries of a discarded view subtree.
func (r *Renderer) unbind(root *ViewElement) {
	root.Walk(func(v *ViewElement) {
		if m, ok := r.toModel[v]; ok {
			delete(r.toModel, v)
			if r.toView[m] == v {
				delete(r.toView, m)
			}
		}
	})
}

// UpcastTable converts a rendered table (a figure subtree) back into a model
// table element, reading tableWidth from the figure's width style and
// columnWidths from the colgroup's col width styles.
func UpcastTable(figure *ViewElement) *Element {
	table := NewElement(TableElement, nil)
	if width := figure.Style("width"); width != "" {
		table.attrs[TableWidthAttribute] = width
	}

	tableView := figure.ChildNamed(ViewTable)
	if tableView == nil {
		return table
	}
	if colgroup := tableView.ChildNamed(ViewColgroup); colgroup != nil {
		if widths := colgroupWidths(colgroup); len(widths) > 0 {
			table.attrs[ColumnWidthsAttribute] = formatColumnWidths(widths)
		}
	}

	for _, tr := range tableView.ChildrenNamed(ViewRow) {
		row := NewElement(RowElement, nil)
		row.parent = table
		table.children = append(table.children, row)
		for _, td := range tr.ChildrenNamed(ViewCell) {
			cell := NewElement(CellElement, nil)
			if v, ok := td.Attribute("colspan"); ok {
				cell.attrs["colspan"] = v
			}
			if v, ok := td.Attribute("rowspan"); ok {
				cell.attrs["rowspan"] = v
			}
			for _, child := range td.Children() {
				if inline := upcastInline(child); inline != nil {
					inline.parent = cell
					cell.children = append(cell.children, inline)
				}
			}
			cell.parent = row
			row.children = append(row.children, cell)
		}
	}
	return table
}
