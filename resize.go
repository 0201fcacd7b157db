package tableui

import "time"

// dragThrottleInterval coalesces drag updates to at most one application per
// interval, bounding view-mutation frequency under fast pointer movement.
const dragThrottleInterval = 50 * time.Millisecond

// resizeSession holds the transient state of one press-drag-release
// interaction. Created on pointer press, destroyed on release; at most one
// session is open at a time.
type resizeSession struct {
	startX float64

	table     *Element // model table being resized
	figure    *ViewElement
	viewTable *ViewElement
	colgroup  *ViewElement
	handle    *ViewElement

	// leftIndex is the column left of the grabbed boundary; the right column
	// is leftIndex+1 unless the boundary is the table's right edge.
	leftIndex   int
	isRightEdge bool
	isCentered  bool

	// Pixel geometry captured at press time.
	widths           []float64 // per-column pixel widths
	tableWidthPx     float64
	containerWidthPx float64

	// Serialized view state at press time, compared against on release.
	pressColsAttr    string
	pressFigureWidth string
	hadColgroup      bool

	appliedDelta float64
	lastMove     time.Time
}

// ColumnResize is the pointer-driven column resizing controller. It owns the
// column index tracker, registers the width post-fixer on the document, and
// turns press/drag/release pointer input into speculative view updates and,
// on release, command executions.
//
// The pointer lifecycle is an explicit state machine: idle when session is
// nil, pressed/dragging while a session is open. Release always returns to
// idle.
type ColumnResize struct {
	doc      *Document
	renderer *Renderer
	tracker  *ColumnIndexTracker

	enabled bool
	rtl     bool

	session *resizeSession
	now     func() time.Time

	// ResizeTableWidth changes the table's own width plus its columns;
	// ResizeColumnWidths redistributes columns only.
	ResizeTableWidth   *ResizeTableWidthCommand
	ResizeColumnWidths *ResizeColumnWidthsCommand
}

// Option configures the resize controller at construction time.
type Option func(*ColumnResize)

// WithRightToLeft creates the controller for right-to-left content.
func WithRightToLeft() Option {
	return func(p *ColumnResize) { p.rtl = true }
}

// WithDisabled creates the controller with the feature switched off; the
// width post-fixer still runs.
func WithDisabled() Option {
	return func(p *ColumnResize) { p.enabled = false }
}

// NewColumnResize creates the resizing controller, wires its commands and
// registers the width post-fixer with the document.
func NewColumnResize(doc *Document, renderer *Renderer, opts ...Option) *ColumnResize {
	p := &ColumnResize{
		doc:      doc,
		renderer: renderer,
		tracker:  NewColumnIndexTracker(),
		enabled:  true,
		now:      time.Now,
	}
	p.ResizeTableWidth = &ResizeTableWidthCommand{doc: doc, plugin: p}
	p.ResizeColumnWidths = &ResizeColumnWidthsCommand{doc: doc, plugin: p}
	doc.AddPostFixer(p.widthsPostFixer)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetEnabled toggles the resizing feature.
func (p *ColumnResize) SetEnabled(enabled bool) { p.enabled = enabled }

// IsEnabled reports whether the feature is enabled.
func (p *ColumnResize) IsEnabled() bool { return p.enabled }

// SetRightToLeft sets the content text direction. In right-to-left content a
// rightward pointer drag shrinks the grabbed column.
func (p *ColumnResize) SetRightToLeft(rtl bool) { p.rtl = rtl }

// IsResizing reports whether a resize session is open. Embedders use this to
// suppress default pointer behavior while a drag is active; that suppression
// path must not mutate any state.
func (p *ColumnResize) IsResizing() bool { return p.session != nil }

// Tracker returns the column index tracker.
func (p *ColumnResize) Tracker() *ColumnIndexTracker { return p.tracker }

// isResizingAllowed gates every session transition: feature enabled,
// document writable, commands executable.
func (p *ColumnResize) isResizingAllowed() bool {
	return p.enabled && !p.doc.IsReadOnly() &&
		p.ResizeTableWidth.IsEnabled() && p.ResizeColumnWidths.IsEnabled()
}

// PointerDown opens a resize session when the target is a resize handle and
// resizing is allowed. Returns true if a session was opened. Only the
// rendered view is mutated; the document model stays untouched until
// release.
func (p *ColumnResize) PointerDown(target *ViewElement, x float64) bool {
	if p.session != nil {
		return false
	}
	if target == nil || !target.HasClass(ColumnResizerClass) {
		return false
	}
	if !p.isResizingAllowed() {
		return false
	}

	td := target.Ancestor(ViewCell)
	viewTable := target.Ancestor(ViewTable)
	figure := target.Ancestor(ViewFigure)
	if td == nil || viewTable == nil || figure == nil {
		return false
	}
	cell := p.renderer.ModelFor(td)
	if cell == nil {
		return false
	}
	table := cell.Ancestor(TableElement)
	if table == nil {
		return false
	}

	widths := p.columnPixelWidths(table)
	if len(widths) == 0 {
		return false
	}
	tablePx := sumWidths(widths)

	leftIndex := -1
	for _, pos := range walkTableCells(table) {
		if pos.Cell == cell {
			leftIndex = pos.RightmostColumn()
			break
		}
	}
	if leftIndex < 0 {
		return false
	}

	containerPx := 0.0
	if parent := figure.Parent(); parent != nil {
		containerPx = parent.MeasuredWidth()
	}
	if containerPx <= 0 {
		// No measured container, the table cannot grow past itself.
		containerPx = tablePx
	}

	// Synthesize a colgroup from the pixel snapshot if the table has none.
	hadColgroup := viewTable.ChildNamed(ViewColgroup) != nil
	percents := make([]float64, len(widths))
	for i, w := range widths {
		percents[i] = pixelsToPercent(w, tablePx)
	}
	colgroup := ensureColgroup(viewTable, percents)
	figure.AddClass(ResizedTableClass)

	// Fix the enclosing block's width to its current rendered percentage so
	// outer-edge drags are relative to a stable container fraction.
	figure.SetStyle("width", formatPercent(pixelsToPercent(tablePx, containerPx)))
	target.AddClass(ResizerActiveClass)

	p.session = &resizeSession{
		startX:           x,
		table:            table,
		figure:           figure,
		viewTable:        viewTable,
		colgroup:         colgroup,
		handle:           target,
		leftIndex:        leftIndex,
		isRightEdge:      leftIndex == len(widths)-1,
		isCentered:       !table.HasAttribute(AlignmentAttribute),
		widths:           widths,
		tableWidthPx:     tablePx,
		containerWidthPx: containerPx,
		pressColsAttr:    formatColumnWidths(colgroupWidths(colgroup)),
		pressFigureWidth: figure.Style("width"),
		hadColgroup:      hadColgroup,
	}
	return true
}

// PointerMove applies a drag update. Updates are throttled; a move that
// produces no width change is skipped entirely. A move with no buttons
// pressed means the pointer left the surface mid-drag and ends the session.
// Returns true if the view was updated.
func (p *ColumnResize) PointerMove(x float64, buttonsDown bool) bool {
	s := p.session
	if s == nil {
		return false
	}
	if !buttonsDown {
		p.PointerUp()
		return false
	}
	now := p.now()
	if !s.lastMove.IsZero() && now.Sub(s.lastMove) < dragThrottleInterval {
		return false
	}

	multiplier := 1.0
	if p.rtl {
		multiplier = -1
	}
	// A centered table grows symmetrically, so dragging its own edge moves
	// the table width by twice the pointer delta.
	if s.isRightEdge && s.isCentered {
		multiplier *= 2
	}
	dx := (x - s.startX) * multiplier

	lower := minf(-(s.widths[s.leftIndex]-ColumnMinWidthPixels), 0)
	var upperBound float64
	if s.isRightEdge {
		upperBound = s.containerWidthPx - s.tableWidthPx
	} else {
		upperBound = s.widths[s.leftIndex+1] - ColumnMinWidthPixels
	}
	dx = clampf(dx, lower, maxf(upperBound, 0))

	if dx == s.appliedDelta {
		return false
	}
	s.appliedDelta = dx
	s.lastMove = now

	leftPx := s.widths[s.leftIndex] + dx
	if s.isRightEdge {
		// Outer-edge drag: the table itself grows or shrinks. Only the left
		// column's pixel width changed, but every percentage is relative to
		// the new table width, so all columns are rescaled and the sum stays
		// at 100.
		newTablePx := s.tableWidthPx + dx
		percents := make([]float64, len(s.widths))
		for i, w := range s.widths {
			px := w
			if i == s.leftIndex {
				px = leftPx
			}
			percents[i] = pixelsToPercent(px, newTablePx)
		}
		syncColgroupWidths(s.colgroup, percents)
		s.figure.SetStyle("width", formatPercent(pixelsToPercent(newTablePx, s.containerWidthPx)))
	} else {
		// Internal boundary: width moves between the two adjacent columns,
		// the table's own width never changes.
		rightPx := s.widths[s.leftIndex+1] - dx
		cols := s.colgroup.ChildrenNamed(ViewCol)
		if s.leftIndex < len(cols) {
			cols[s.leftIndex].SetStyle("width", formatPercent(pixelsToPercent(leftPx, s.tableWidthPx)))
		}
		if s.leftIndex+1 < len(cols) {
			cols[s.leftIndex+1].SetStyle("width", formatPercent(pixelsToPercent(rightPx, s.tableWidthPx)))
		}
	}
	return true
}

// PointerUp closes the session. If the view's widths differ from the values
// the model held at press time and resizing is still allowed, the final
// widths are committed through a command; otherwise the speculative view
// changes are discarded. The session is cleared regardless of outcome.
func (p *ColumnResize) PointerUp() {
	s := p.session
	if s == nil {
		return
	}
	p.session = nil
	s.handle.RemoveClass(ResizerActiveClass)

	finalCols := colgroupWidths(s.colgroup)
	finalColsAttr := formatColumnWidths(finalCols)
	finalFigureWidth := s.figure.Style("width")

	changed := finalColsAttr != s.pressColsAttr || finalFigureWidth != s.pressFigureWidth
	if changed && p.isResizingAllowed() {
		if s.isRightEdge && finalFigureWidth != s.pressFigureWidth {
			p.ResizeTableWidth.Execute(s.table, finalFigureWidth, finalCols)
		} else {
			p.ResizeColumnWidths.Execute(s.table, finalCols)
		}
		return
	}

	// Nothing to commit (or resizing became disallowed mid-session): the
	// model was never touched, so restoring the view needs no compensating
	// document edit.
	p.restoreViewAfterSession(s)
}

// restoreViewAfterSession rolls the view back to what the model implies,
// removing the speculative colgroup and width styling if the table had no
// prior resize state.
func (p *ColumnResize) restoreViewAfterSession(s *resizeSession) {
	if v, ok := s.table.Attribute(TableWidthAttribute); ok {
		s.figure.SetStyle("width", v)
	} else {
		s.figure.RemoveStyle("width")
	}

	if attr, ok := s.table.Attribute(ColumnWidthsAttribute); ok {
		syncColgroupWidths(s.colgroup, parseColumnWidths(attr))
		return
	}
	if s.hadColgroup {
		syncColgroupWidths(s.colgroup, parseColumnWidths(s.pressColsAttr))
		return
	}
	s.viewTable.RemoveChild(s.colgroup)
	s.figure.RemoveClass(ResizedTableClass)
}

// columnPixelWidths measures the table's per-column pixel widths from the
// rendered view: each column takes the minimum outer width among the cells
// it contains, with a merged cell contributing its width split across the
// columns it spans. Observed cells are recorded in the tracker.
func (p *ColumnResize) columnPixelWidths(table *Element) []float64 {
	count := tableColumnCount(table)
	if count == 0 {
		return nil
	}
	widths := make([]float64, count)
	for i := range widths {
		widths[i] = -1
	}

	for _, pos := range walkTableCells(table) {
		p.tracker.Record(pos.Cell, pos.Column)
		td := p.renderer.ViewFor(pos.Cell)
		if td == nil {
			continue
		}
		px := td.MeasuredWidth()
		if px <= 0 {
			continue
		}
		share := px / float64(pos.Colspan)
		for c := pos.Column; c <= pos.RightmostColumn(); c++ {
			if widths[c] < 0 || share < widths[c] {
				widths[c] = share
			}
		}
	}

	// Columns with no measured cell fall back to the minimum width.
	for i := range widths {
		if widths[i] < 0 {
			widths[i] = ColumnMinWidthPixels
		}
	}
	return widths
}
