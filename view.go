package tableui

// View element names produced by the table renderer.
const (
	ViewFigure   = "figure"
	ViewTable    = "table"
	ViewColgroup = "colgroup"
	ViewCol      = "col"
	ViewRow      = "tr"
	ViewCell     = "td"
	ViewLink     = "a"
	ViewText     = "#text"
)

// ViewElement is a node in the rendered tree. Unlike model elements it
// carries styles, classes and an embedder-supplied measured pixel width.
type ViewElement struct {
	name     string
	attrs    map[string]string
	styles   map[string]string
	classes  map[string]bool
	children []*ViewElement
	parent   *ViewElement

	// Text content, only meaningful for ViewText nodes.
	text string

	// Outer pixel width as last measured by the embedder (backend or test).
	measuredWidth float64
}

// NewViewElement creates a view element with optional children.
func NewViewElement(name string, children ...*ViewElement) *ViewElement {
	v := &ViewElement{
		name:    name,
		attrs:   make(map[string]string),
		styles:  make(map[string]string),
		classes: make(map[string]bool),
	}
	for _, child := range children {
		child.parent = v
		v.children = append(v.children, child)
	}
	return v
}

// NewViewText creates a text node.
func NewViewText(text string) *ViewElement {
	v := NewViewElement(ViewText)
	v.text = text
	return v
}

// Name returns the element name.
func (v *ViewElement) Name() string { return v.name }

// Text returns the text content of a text node.
func (v *ViewElement) Text() string { return v.text }

// Parent returns the parent element.
func (v *ViewElement) Parent() *ViewElement { return v.parent }

// Children returns the child slice. Callers must not mutate it.
func (v *ViewElement) Children() []*ViewElement { return v.children }

// Attribute returns an attribute value and whether it is present.
func (v *ViewElement) Attribute(name string) (string, bool) {
	val, ok := v.attrs[name]
	return val, ok
}

// SetAttribute sets an attribute.
func (v *ViewElement) SetAttribute(name, value string) { v.attrs[name] = value }

// Style returns a style value ("" if unset).
func (v *ViewElement) Style(name string) string { return v.styles[name] }

// SetStyle sets a style value.
func (v *ViewElement) SetStyle(name, value string) { v.styles[name] = value }

// RemoveStyle removes a style.
func (v *ViewElement) RemoveStyle(name string) { delete(v.styles, name) }

// HasClass reports whether the class is set.
func (v *ViewElement) HasClass(class string) bool { return v.classes[class] }

// AddClass sets a class. Idempotent.
func (v *ViewElement) AddClass(class string) { v.classes[class] = true }

// RemoveClass removes a class.
func (v *ViewElement) RemoveClass(class string) { delete(v.classes, class) }

// AppendChild appends a child element.
func (v *ViewElement) AppendChild(child *ViewElement) {
	child.parent = v
	v.children = append(v.children, child)
}

// InsertChild inserts a child at the given index.
func (v *ViewElement) InsertChild(index int, child *ViewElement) {
	if index < 0 {
		index = 0
	}
	if index > len(v.children) {
		index = len(v.children)
	}
	child.parent = v
	v.children = append(v.children, nil)
	copy(v.children[index+1:], v.children[index:])
	v.children[index] = child
}

// RemoveChild removes the given child if present.
func (v *ViewElement) RemoveChild(child *ViewElement) {
	for i, c := range v.children {
		if c == child {
			v.children = append(v.children[:i], v.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// ChildNamed returns the first child with the given name, or nil.
func (v *ViewElement) ChildNamed(name string) *ViewElement {
	for _, c := range v.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns the children with the given name.
func (v *ViewElement) ChildrenNamed(name string) []*ViewElement {
	var out []*ViewElement
	for _, c := range v.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// Ancestor returns the nearest ancestor (including v itself) with the given
// name, or nil.
func (v *ViewElement) Ancestor(name string) *ViewElement {
	for n := v; n != nil; n = n.parent {
		if n.name == name {
			return n
		}
	}
	return nil
}

// ChildWithClass returns the first child carrying the class, or nil.
func (v *ViewElement) ChildWithClass(class string) *ViewElement {
	for _, c := range v.children {
		if c.classes[class] {
			return c
		}
	}
	return nil
}

// MeasuredWidth returns the last measured outer pixel width.
func (v *ViewElement) MeasuredWidth() float64 { return v.measuredWidth }

// SetMeasuredWidth records the outer pixel width. Called by the embedder
// after layout, never by the core.
func (v *ViewElement) SetMeasuredWidth(px float64) { v.measuredWidth = px }

// Walk visits v and all descendants depth-first.
func (v *ViewElement) Walk(fn func(*ViewElement)) {
	fn(v)
	for _, c := range v.children {
		c.Walk(fn)
	}
}
