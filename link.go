package tableui

// LinkHrefAttribute marks inline text as a link.
const LinkHrefAttribute = "linkHref"

// Link is the anchor attribute plugin: it teaches the schema about linkHref
// and provides the set/unset commands. Conversion is handled by
// downcastInline/upcastInline, which the table renderer applies to cell
// content.
type Link struct {
	doc *Document

	SetLink   *SetLinkCommand
	UnsetLink *UnsetLinkCommand
}

// NewLink creates the link plugin and extends the schema.
func NewLink(doc *Document) *Link {
	doc.Schema().Extend(TextElement, LinkHrefAttribute)
	return &Link{
		doc:       doc,
		SetLink:   &SetLinkCommand{doc: doc},
		UnsetLink: &UnsetLinkCommand{doc: doc},
	}
}

// SetLinkCommand applies a linkHref attribute to an inline element.
type SetLinkCommand struct {
	doc *Document
}

// IsEnabled reports whether the command may execute.
func (c *SetLinkCommand) IsEnabled() bool { return !c.doc.IsReadOnly() }

// Execute sets the link target. Silent no-op when not executable.
func (c *SetLinkCommand) Execute(e *Element, href string) {
	if !c.IsEnabled() || e == nil || href == "" {
		return
	}
	c.doc.Change(func(w *Writer) {
		w.SetAttribute(e, LinkHrefAttribute, href)
	})
}

// UnsetLinkCommand removes a linkHref attribute.
type UnsetLinkCommand struct {
	doc *Document
}

// IsEnabled reports whether the command may execute.
func (c *UnsetLinkCommand) IsEnabled() bool { return !c.doc.IsReadOnly() }

// Execute removes the link target. Silent no-op when not executable.
func (c *UnsetLinkCommand) Execute(e *Element) {
	if !c.IsEnabled() || e == nil {
		return
	}
	c.doc.Change(func(w *Writer) {
		w.RemoveAttribute(e, LinkHrefAttribute)
	})
}

// downcastInline converts inline model content to its view form. Text with
// a linkHref attribute renders wrapped in an anchor element.
func downcastInline(e *Element) *ViewElement {
	if e.Name() != TextElement {
		return NewViewElement(e.Name())
	}
	data, _ := e.Attribute("data")
	node := NewViewText(data)
	if href, ok := e.Attribute(LinkHrefAttribute); ok {
		a := NewViewElement(ViewLink)
		a.SetAttribute("href", href)
		a.AppendChild(node)
		return a
	}
	return node
}

// upcastInline converts inline view content back to model form. Returns nil
// for non-content elements (e.g. resize handles), which are dropped.
func upcastInline(v *ViewElement) *Element {
	switch v.Name() {
	case ViewText:
		return NewElement(TextElement, map[string]string{"data": v.Text()})
	case ViewLink:
		href, _ := v.Attribute("href")
		text := ""
		if t := v.ChildNamed(ViewText); t != nil {
			text = t.Text()
		}
		return NewElement(TextElement, map[string]string{
			"data":            text,
			LinkHrefAttribute: href,
		})
	}
	return nil
}
