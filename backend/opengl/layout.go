package opengl

import (
	"strconv"

	"github.com/go-rich-edit/tableui"
)

// Default layout metrics, in pixels.
const (
	defaultMargin      = 24.0
	defaultRowHeight   = 36.0
	defaultTableGap    = 24.0
	defaultHandleWidth = 6.0
	cellInset          = 1.0
)

// Theme colors.
var (
	colorTableBg     = Color{0.16, 0.17, 0.20, 1}
	colorCellBg      = Color{0.22, 0.23, 0.27, 1}
	colorHandle      = Color{0.35, 0.55, 0.85, 0.35}
	colorHandleHot   = Color{0.45, 0.70, 1.00, 0.9}
	colorResizedEdge = Color{0.45, 0.70, 1.00, 0.25}
)

// handleRegion is the hit area of one resize handle.
type handleRegion struct {
	rect tableui.Rect
	view *tableui.ViewElement
}

// Scene is one frame's worth of drawable rectangles plus the pointer hit
// regions of the resize handles.
type Scene struct {
	Rects   []Rect
	handles []handleRegion
}

// HandleAt returns the resize handle under the point, or nil.
func (s *Scene) HandleAt(x, y float64) *tableui.ViewElement {
	// Later regions draw on top, so scan back to front.
	for i := len(s.handles) - 1; i >= 0; i-- {
		if s.handles[i].rect.Contains(tableui.Vec2{X: x, Y: y}) {
			return s.handles[i].view
		}
	}
	return nil
}

// Layout computes the pixel geometry of the rendered tables inside the
// window. The same geometry feeds three consumers: the measurer hook on the
// view renderer, the rectangle list handed to the OpenGL renderer, and the
// pointer hit regions.
type Layout struct {
	ContainerWidth float64

	Margin      float64
	RowHeight   float64
	TableGap    float64
	HandleWidth float64
}

// NewLayout creates a layout for the given container width.
func NewLayout(containerWidth float64) *Layout {
	return &Layout{
		ContainerWidth: containerWidth,
		Margin:         defaultMargin,
		RowHeight:      defaultRowHeight,
		TableGap:       defaultTableGap,
		HandleWidth:    defaultHandleWidth,
	}
}

// contentWidth is the container width available to tables.
func (l *Layout) contentWidth() float64 {
	return l.ContainerWidth - 2*l.Margin
}

// Measure implements the view renderer's measurer hook: it assigns pixel
// widths to a freshly rendered figure subtree. The figure takes its width
// style's percentage of the content area (all of it when auto); columns
// follow the colgroup, or split evenly without one.
func (l *Layout) Measure(figure *tableui.ViewElement) {
	content := l.contentWidth()
	tablePx := content
	if pct, ok := parsePercentStyle(figure.Style("width")); ok {
		tablePx = content * pct / 100
	}
	figure.SetMeasuredWidth(tablePx)

	tableView := figure.ChildNamed(tableui.ViewTable)
	if tableView == nil {
		return
	}
	tableView.SetMeasuredWidth(tablePx)

	colPx := l.columnPixels(tableView, tablePx)
	for _, tr := range tableView.ChildrenNamed(tableui.ViewRow) {
		tds := tr.ChildrenNamed(tableui.ViewCell)
		col := 0
		for _, td := range tds {
			span := colspanOf(td)
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

// columnPixels resolves the per-column pixel widths of a table view.
func (l *Layout) columnPixels(tableView *tableui.ViewElement, tablePx float64) []float64 {
	colgroup := tableView.ChildNamed(tableui.ViewColgroup)
	if colgroup == nil {
		return nil
	}
	var out []float64
	for _, col := range colgroup.ChildrenNamed(tableui.ViewCol) {
		if pct, ok := parsePercentStyle(col.Style("width")); ok {
			out = append(out, tablePx*pct/100)
		}
	}
	return out
}

// Build lays out every figure under the view root top to bottom and returns
// the frame's scene.
func (l *Layout) Build(root *tableui.ViewElement) *Scene {
	scene := &Scene{}
	y := l.Margin
	for _, figure := range root.ChildrenNamed(tableui.ViewFigure) {
		y = l.buildFigure(scene, figure, y) + l.TableGap
	}
	return scene
}

// buildFigure emits one table's rectangles starting at the given y offset
// and returns the y offset below it. Tables without an explicit width style
// fill the content area; sized tables are centered in it.
func (l *Layout) buildFigure(scene *Scene, figure *tableui.ViewElement, y float64) float64 {
	tableView := figure.ChildNamed(tableui.ViewTable)
	if tableView == nil {
		return y
	}
	tablePx := figure.MeasuredWidth()
	if tablePx <= 0 {
		tablePx = l.contentWidth()
	}
	x := l.Margin + (l.contentWidth()-tablePx)/2

	rows := tableView.ChildrenNamed(tableui.ViewRow)
	tableH := float64(len(rows)) * l.RowHeight

	bg := colorTableBg
	if figure.HasClass(tableui.ResizedTableClass) {
		bg = blend(colorTableBg, colorResizedEdge)
	}
	scene.Rects = append(scene.Rects, Rect{
		X: float32(x), Y: float32(y),
		W: float32(tablePx), H: float32(tableH),
		Color: bg,
	})

	for r, tr := range rows {
		cellX := x
		rowY := y + float64(r)*l.RowHeight
		for _, td := range tr.ChildrenNamed(tableui.ViewCell) {
			w := td.MeasuredWidth()
			scene.Rects = append(scene.Rects, Rect{
				X: float32(cellX + cellInset), Y: float32(rowY + cellInset),
				W: float32(w - 2*cellInset), H: float32(l.RowHeight - 2*cellInset),
				Color: colorCellBg,
			})
			if handle := td.ChildWithClass(tableui.ColumnResizerClass); handle != nil {
				hx := cellX + w - l.HandleWidth
				color := colorHandle
				if handle.HasClass(tableui.ResizerActiveClass) {
					color = colorHandleHot
				}
				scene.Rects = append(scene.Rects, Rect{
					X: float32(hx), Y: float32(rowY),
					W: float32(l.HandleWidth), H: float32(l.RowHeight),
					Color: color,
				})
				scene.handles = append(scene.handles, handleRegion{
					rect: tableui.Rect{X: hx, Y: rowY, W: l.HandleWidth, H: l.RowHeight},
					view: handle,
				})
			}
			cellX += w
		}
	}
	return y + tableH
}

// blend composites an overlay onto a base color.
func blend(base, overlay Color) Color {
	a := overlay[3]
	return Color{
		base[0]*(1-a) + overlay[0]*a,
		base[1]*(1-a) + overlay[1]*a,
		base[2]*(1-a) + overlay[2]*a,
		1,
	}
}

// parsePercentStyle parses a "<number>%" style value.
func parsePercentStyle(s string) (float64, bool) {
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// colspanOf reads a cell's colspan attribute, defaulting to 1.
func colspanOf(td *tableui.ViewElement) int {
	v, ok := td.Attribute("colspan")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
