// Package nav derives VitePress navigation structures from a documentation
// forest: the top navigation bar and the per-section sidebar map.
package nav

import "slices"

// Item is a navigation entry. It is either a leaf with a Link or a group
// with Items, never both. Collapsed is only set on sidebar groups.
type Item struct {
	Text      string `json:"text" yaml:"text"`
	Link      string `json:"link,omitempty" yaml:"link,omitempty"`
	Items     []Item `json:"items,omitempty" yaml:"items,omitempty"`
	Collapsed *bool  `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
}

// Leaf returns a link item.
func Leaf(text, link string) Item {
	return Item{Text: text, Link: link}
}

// Group returns a group item.
func Group(text string, items []Item) Item {
	return Item{Text: text, Items: items}
}

// IsGroup reports whether the item holds children.
func (i Item) IsGroup() bool {
	return len(i.Items) > 0
}

// Sidebar maps a section path ("/guide/") to its items.
type Sidebar map[string][]Item

// Sections returns the section paths in lexical order.
func (s Sidebar) Sections() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Links returns every leaf link in pre-order.
func Links(items []Item) []string {
	var out []string
	var walk func([]Item)
	walk = func(items []Item) {
		for _, it := range items {
			if it.IsGroup() {
				walk(it.Items)
				continue
			}
			out = append(out, it.Link)
		}
	}
	walk(items)
	return out
}

// Count returns the total number of items, groups included.
func Count(items []Item) int {
	n := 0
	for _, it := range items {
		n += 1 + Count(it.Items)
	}
	return n
}
