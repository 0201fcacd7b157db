package tableui

// Model element names used by the table subsystem.
const (
	TableElement = "table"
	RowElement   = "tableRow"
	CellElement  = "tableCell"
	TextElement  = "$text"
)

// Attribute names carried by table elements.
const (
	TableWidthAttribute   = "tableWidth"
	ColumnWidthsAttribute = "columnWidths"
	AlignmentAttribute    = "alignment"
)

// Schema records which attributes each element name may carry.
// Attribute writes outside the schema are silently dropped.
type Schema struct {
	allowed map[string]map[string]bool
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{allowed: make(map[string]map[string]bool)}
}

// Extend declares that elements with the given name may carry the listed
// attributes. Repeated calls accumulate.
func (s *Schema) Extend(name string, attrs ...string) {
	set := s.allowed[name]
	if set == nil {
		set = make(map[string]bool)
		s.allowed[name] = set
	}
	for _, attr := range attrs {
		set[attr] = true
	}
}

// IsAllowed reports whether an element name may carry an attribute.
func (s *Schema) IsAllowed(name, attr string) bool {
	return s.allowed[name][attr]
}

// Element is a node in the document tree. Identity is pointer identity:
// the same cell keeps the same *Element across attribute and sibling edits.
type Element struct {
	name     string
	attrs    map[string]string
	children []*Element
	parent   *Element
}

// NewElement creates an element with optional attributes and children.
func NewElement(name string, attrs map[string]string, children ...*Element) *Element {
	e := &Element{name: name, attrs: make(map[string]string)}
	for k, v := range attrs {
		e.attrs[k] = v
	}
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
	return e
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// Attribute returns an attribute value and whether it is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

// Parent returns the parent element, or nil for a detached/root element.
func (e *Element) Parent() *Element { return e.parent }

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// Child returns the i-th child, or nil if out of range.
func (e *Element) Child(i int) *Element {
	if i < 0 || i >= len(e.children) {
		return nil
	}
	return e.children[i]
}

// Children returns the child slice. Callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// ChildrenNamed returns the children with the given element name.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.children {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

// Ancestor returns the nearest ancestor (including e itself) with the given
// name, or nil.
func (e *Element) Ancestor(name string) *Element {
	for n := e; n != nil; n = n.parent {
		if n.name == name {
			return n
		}
	}
	return nil
}

// Index returns the element's position among its parent's children, or -1
// for a detached element.
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	for i, c := range e.parent.children {
		if c == e {
			return i
		}
	}
	return -1
}

// intAttribute returns a positive integer attribute value, defaulting to 1.
// Used for colspan/rowspan.
func (e *Element) intAttribute(name string) int {
	v, ok := e.attrs[name]
	if !ok {
		return 1
	}
	n := 0
	for _, ch := range v {
		if ch < '0' || ch > '9' {
			return 1
		}
		n = n*10 + int(ch-'0')
	}
	if n < 1 {
		return 1
	}
	return n
}

// Batch collects the elements touched by one change transaction.
type Batch struct {
	touched []*Element
	seen    map[*Element]bool
}

func newBatch() *Batch {
	return &Batch{seen: make(map[*Element]bool)}
}

func (b *Batch) record(e *Element) {
	if e == nil || b.seen[e] {
		return
	}
	b.seen[e] = true
	b.touched = append(b.touched, e)
}

// IsEmpty reports whether the batch recorded no changes.
func (b *Batch) IsEmpty() bool { return len(b.touched) == 0 }

// Changed returns the touched elements in first-touch order.
func (b *Batch) Changed() []*Element { return b.touched }

// ChangedTables returns the unique tables containing the touched elements,
// in first-touch order. This is the differ view the width post-fixer runs on.
func (b *Batch) ChangedTables() []*Element {
	var tables []*Element
	seen := make(map[*Element]bool)
	for _, e := range b.touched {
		table := e.Ancestor(TableElement)
		if table == nil || seen[table] {
			continue
		}
		seen[table] = true
		tables = append(tables, table)
	}
	return tables
}

// PostFixer is an integrity pass run at the end of every change transaction.
// It may apply further mutations through the writer and must report whether
// it changed anything, so the fixed-point loop knows when to stop.
type PostFixer func(w *Writer, b *Batch) bool

// ChangeListener is notified once per non-empty batch, after all post-fixers
// have converged.
type ChangeListener func(b *Batch)

// Document owns a model tree and its change machinery. All mutations go
// through Change; listeners observe only settled batches.
type Document struct {
	root     *Element
	schema   *Schema
	readOnly bool

	postFixers []PostFixer
	listeners  []ChangeListener

	// Active transaction, nil outside Change.
	writer *Writer
}

// maxFixerRounds bounds the post-fixer fixed-point loop. Fixers are
// deterministic per table so this is never reached in practice.
const maxFixerRounds = 16

// NewDocument creates a document with an empty root and a schema that
// already allows the table width attributes.
func NewDocument() *Document {
	schema := NewSchema()
	schema.Extend(TableElement, TableWidthAttribute, ColumnWidthsAttribute, AlignmentAttribute)
	schema.Extend(CellElement, "colspan", "rowspan")
	return &Document{
		root:   NewElement("$root", nil),
		schema: schema,
	}
}

// Root returns the document root element.
func (d *Document) Root() *Element { return d.root }

// Schema returns the document schema.
func (d *Document) Schema() *Schema { return d.schema }

// SetReadOnly toggles the read-only state. Commands report themselves
// non-executable while the document is read-only.
func (d *Document) SetReadOnly(readOnly bool) { d.readOnly = readOnly }

// IsReadOnly reports the read-only state.
func (d *Document) IsReadOnly() bool { return d.readOnly }

// AddPostFixer registers an integrity pass. Fixers run in registration order
// inside the fixed-point loop at the end of every transaction.
func (d *Document) AddPostFixer(fixer PostFixer) {
	d.postFixers = append(d.postFixers, fixer)
}

// AddChangeListener registers a listener for settled batches.
func (d *Document) AddChangeListener(fn ChangeListener) {
	d.listeners = append(d.listeners, fn)
}

// Change runs fn inside a writer transaction. Post-fixers run at the end of
// the outermost transaction until none reports a change, then listeners are
// notified once. Nested calls join the enclosing transaction.
func (d *Document) Change(fn func(w *Writer)) *Batch {
	if d.writer != nil {
		fn(d.writer)
		return d.writer.batch
	}

	w := &Writer{doc: d, batch: newBatch()}
	d.writer = w
	fn(w)

	// Fixed-point integrity loop: repeat until no fixer reports a change.
	for round := 0; round < maxFixerRounds; round++ {
		changed := false
		for _, fixer := range d.postFixers {
			if fixer(w, w.batch) {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	d.writer = nil

	if !w.batch.IsEmpty() {
		for _, fn := range d.listeners {
			fn(w.batch)
		}
	}
	return w.batch
}

// Writer applies model mutations and records touched elements on the batch.
// Valid only inside the Change transaction that created it.
type Writer struct {
	doc   *Document
	batch *Batch
}

// SetAttribute sets an attribute on an element. Writes that are disallowed
// by the schema or that would not change the stored value are dropped, so
// redundant sets never re-trigger post-fixers.
func (w *Writer) SetAttribute(e *Element, name, value string) {
	if !w.doc.schema.IsAllowed(e.name, name) {
		return
	}
	if current, ok := e.attrs[name]; ok && current == value {
		return
	}
	e.attrs[name] = value
	w.batch.record(e)
}

// RemoveAttribute removes an attribute from an element.
func (w *Writer) RemoveAttribute(e *Element, name string) {
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	w.batch.record(e)
}

// InsertChild inserts a child at the given index of the parent.
func (w *Writer) InsertChild(parent *Element, index int, child *Element) {
	if index < 0 {
		index = 0
	}
	if index > len(parent.children) {
		index = len(parent.children)
	}
	child.parent = parent
	parent.children = append(parent.children, nil)
	copy(parent.children[index+1:], parent.children[index:])
	parent.children[index] = child
	w.batch.record(child)
	w.batch.record(parent)
}

// AppendChild appends a child to the parent.
func (w *Writer) AppendChild(parent, child *Element) {
	w.InsertChild(parent, len(parent.children), child)
}

// RemoveChild removes and returns the child at the given index, or nil if
// the index is out of range.
func (w *Writer) RemoveChild(parent *Element, index int) *Element {
	if index < 0 || index >= len(parent.children) {
		return nil
	}
	child := parent.children[index]
	parent.children = append(parent.children[:index], parent.children[index+1:]...)
	child.parent = nil
	w.batch.record(parent)
	return child
}
