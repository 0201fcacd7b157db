package tableui

import "testing"

func TestSetAndUnsetLink(t *testing.T) {
	doc := NewDocument()
	link := NewLink(doc)

	text := NewElement(TextElement, map[string]string{"data": "docs"})
	doc.Change(func(w *Writer) {
		w.AppendChild(doc.Root(), text)
	})

	link.SetLink.Execute(text, "https://example.com")
	if v, _ := text.Attribute(LinkHrefAttribute); v != "https://example.com" {
		t.Errorf("linkHref = %q, want the target", v)
	}

	link.UnsetLink.Execute(text)
	if text.HasAttribute(LinkHrefAttribute) {
		t.Error("linkHref survived UnsetLink")
	}
}

func TestSetLinkIgnoresEmptyTarget(t *testing.T) {
	doc := NewDocument()
	link := NewLink(doc)
	text := NewElement(TextElement, map[string]string{"data": "docs"})

	link.SetLink.Execute(text, "")
	if text.HasAttribute(LinkHrefAttribute) {
		t.Error("empty href was stored")
	}
}

func TestLinkCommandsRespectReadOnly(t *testing.T) {
	doc := NewDocument()
	link := NewLink(doc)
	text := NewElement(TextElement, map[string]string{
		"data":            "docs",
		LinkHrefAttribute: "https://example.com",
	})

	doc.SetReadOnly(true)
	if link.SetLink.IsEnabled() || link.UnsetLink.IsEnabled() {
		t.Error("link commands enabled on a read-only document")
	}
	link.SetLink.Execute(text, "https://other.example")
	link.UnsetLink.Execute(text)
	if v, _ := text.Attribute(LinkHrefAttribute); v != "https://example.com" {
		t.Errorf("linkHref = %q, read-only execution must not mutate", v)
	}
}

func TestLinkRequiresSchemaExtension(t *testing.T) {
	doc := NewDocument()
	text := NewElement(TextElement, map[string]string{"data": "docs"})

	// Without the link plugin the schema rejects the attribute.
	doc.Change(func(w *Writer) {
		w.SetAttribute(text, LinkHrefAttribute, "https://example.com")
	})
	if text.HasAttribute(LinkHrefAttribute) {
		t.Error("linkHref stored without a schema extension")
	}

	NewLink(doc)
	doc.Change(func(w *Writer) {
		w.SetAttribute(text, LinkHrefAttribute, "https://example.com")
	})
	if !text.HasAttribute(LinkHrefAttribute) {
		t.Error("linkHref rejected after the schema extension")
	}
}

func TestDowncastInline(t *testing.T) {
	plain := downcastInline(NewElement(TextElement, map[string]string{"data": "hi"}))
	if plain.Name() != ViewText || plain.Text() != "hi" {
		t.Errorf("plain text downcast to %v %q", plain.Name(), plain.Text())
	}

	linked := downcastInline(NewElement(TextElement, map[string]string{
		"data":            "hi",
		LinkHrefAttribute: "https://example.com",
	}))
	if linked.Name() != ViewLink {
		t.Fatalf("linked text downcast to %v, want an anchor", linked.Name())
	}
	if v, _ := linked.Attribute("href"); v != "https://example.com" {
		t.Errorf("anchor href = %q", v)
	}
	if inner := linked.ChildNamed(ViewText); inner == nil || inner.Text() != "hi" {
		t.Error("anchor lost its text child")
	}
}

func TestUpcastInlineDropsNonContent(t *testing.T) {
	handle := NewViewElement("div")
	handle.AddClass(ColumnResizerClass)
	if got := upcastInline(handle); got != nil {
		t.Errorf("upcastInline(handle) = %v, want nil", got)
	}
}
