package tableui

import "strings"

// MenuItem is one entry in a hierarchical dropdown or menu bar. Leaf items
// carry an action; branch items carry children.
type MenuItem struct {
	Label    string
	Action   func()
	Children []*MenuItem
}

// IsBranch reports whether the item has children.
func (m *MenuItem) IsBranch() bool { return len(m.Children) > 0 }

// ItemAt resolves a path of child indexes starting at this item. Returns
// nil if the path leaves the tree.
func (m *MenuItem) ItemAt(path ...int) *MenuItem {
	item := m
	for _, idx := range path {
		if idx < 0 || idx >= len(item.Children) {
			return nil
		}
		item = item.Children[idx]
	}
	return item
}

// FilterMenuItems returns a pruned copy of the item trees keeping every item
// whose label contains the query (case-insensitive) and every ancestor of a
// match. An empty query returns the input unchanged.
func FilterMenuItems(items []*MenuItem, query string) []*MenuItem {
	if query == "" {
		return items
	}
	needle := strings.ToLower(query)
	var out []*MenuItem
	for _, item := range items {
		if kept := filterMenuItem(item, needle); kept != nil {
			out = append(out, kept)
		}
	}
	return out
}

// filterMenuItem keeps an item if its label matches or any descendant does.
// A matching branch keeps all its children.
func filterMenuItem(item *MenuItem, needle string) *MenuItem {
	if strings.Contains(strings.ToLower(item.Label), needle) {
		return item
	}
	var kept []*MenuItem
	for _, child := range item.Children {
		if c := filterMenuItem(child, needle); c != nil {
			kept = append(kept, c)
		}
	}
	if kept == nil {
		return nil
	}
	return &MenuItem{Label: item.Label, Action: item.Action, Children: kept}
}

// MenuBar is a row of top-level dropdown menus with search filtering. It
// tracks which dropdown is open and the highlighted path inside it; the
// rendering of the widget is left to the embedder.
type MenuBar struct {
	Menus []*MenuItem

	openIndex  int    // open top-level menu, -1 when all closed
	searchText string // active filter, applies to the open dropdown
	highlight  []int  // path of the highlighted item inside the open menu
}

// NewMenuBar creates a menu bar over the given top-level menus.
func NewMenuBar(menus ...*MenuItem) *MenuBar {
	return &MenuBar{Menus: menus, openIndex: -1}
}

// Open opens the dropdown at the given top-level index and resets search
// and highlight state.
func (b *MenuBar) Open(index int) {
	if index < 0 || index >= len(b.Menus) {
		return
	}
	b.openIndex = index
	b.searchText = ""
	b.highlight = nil
}

// Close closes any open dropdown.
func (b *MenuBar) Close() {
	b.openIndex = -1
	b.searchText = ""
	b.highlight = nil
}

// IsOpen reports whether any dropdown is open.
func (b *MenuBar) IsOpen() bool { return b.openIndex >= 0 }

// OpenMenu returns the open top-level menu, or nil.
func (b *MenuBar) OpenMenu() *MenuItem {
	if b.openIndex < 0 {
		return nil
	}
	return b.Menus[b.openIndex]
}

// SearchText returns the active filter text.
func (b *MenuBar) SearchText() string { return b.searchText }

// Search sets the filter text and resets the highlight.
func (b *MenuBar) Search(text string) {
	b.searchText = text
	b.highlight = nil
}

// VisibleItems returns the open dropdown's items after filtering, or nil
// when no dropdown is open.
func (b *MenuBar) VisibleItems() []*MenuItem {
	menu := b.OpenMenu()
	if menu == nil {
		return nil
	}
	return FilterMenuItems(menu.Children, b.searchText)
}

// Highlight sets the highlighted path inside the open dropdown.
func (b *MenuBar) Highlight(path ...int) {
	b.highlight = append(b.highlight[:0], path...)
}

// HighlightedItem returns the item under the highlight path, or nil.
func (b *MenuBar) HighlightedItem() *MenuItem {
	items := b.VisibleItems()
	if len(b.highlight) == 0 || len(items) == 0 {
		return nil
	}
	first := b.highlight[0]
	if first < 0 || first >= len(items) {
		return nil
	}
	return items[first].ItemAt(b.highlight[1:]...)
}

// Confirm runs the highlighted leaf's action and closes the bar. Returns
// true if an action ran; confirming a branch or an empty highlight is a
// no-op.
func (b *MenuBar) Confirm() bool {
	item := b.HighlightedItem()
	if item == nil || item.IsBranch() || item.Action == nil {
		return false
	}
	item.Action()
	b.Close()
	return true
}
