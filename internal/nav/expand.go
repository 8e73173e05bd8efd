package nav

import (
	"git.home.luguber.info/inful/docnav/internal/foundation"
	"git.home.luguber.info/inful/docnav/internal/sorting"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

// expander folds nodes into items. Level 0 is the first emitted level and
// children are emitted only while level < depth.
type expander struct {
	opts             Options
	titles           titler
	collapsed        foundation.Option[bool]
	excludeRootIndex bool
}

func newExpander(opts Options) *expander {
	opts = opts.withDefaults()
	return &expander{
		opts: opts,
		titles: titler{
			onDirectory:      opts.OnDirectory,
			onFile:           opts.OnFile,
			formatSortPrefix: opts.FormatSortPrefix,
		},
	}
}

func (e *expander) bounded(level int) bool {
	return e.opts.Depth > 0 && level >= e.opts.Depth
}

func (e *expander) sorted(nodes []*tree.Node) []*tree.Node {
	return sorting.Sorted(e.opts.Sorter, nodes, nodeName)
}

func (e *expander) items(nodes []*tree.Node, level int) []Item {
	if e.bounded(level) {
		return nil
	}
	out := make([]Item, 0, len(nodes))
	for _, n := range e.sorted(nodes) {
		if n.IsDir() {
			out = append(out, e.directory(n, level))
			continue
		}
		if e.excludeRootIndex && level == 0 && e.opts.Linker.IsIndex(n.Name) {
			continue
		}
		out = append(out, Leaf(e.titles.file(n), e.opts.Linker.ToLink(n.RelativePath, false)))
	}
	return out
}

func (e *expander) directory(n *tree.Node, level int) Item {
	text := e.titles.directory(n)
	if children := e.items(n.Children, level+1); len(children) > 0 {
		g := Group(text, children)
		g.Collapsed = e.collapsed.ToPointer()
		return g
	}
	return Leaf(text, e.fallbackLink(n, level))
}

// fallbackLink picks the link of a directory that produced no children:
// its index file, then (only when the depth bound cut it off) the first
// file beneath it, then the directory itself.
func (e *expander) fallbackLink(n *tree.Node, level int) string {
	if idx := n.IndexFile(e.opts.Linker); idx != nil {
		return e.opts.Linker.ToLink(idx.RelativePath, false)
	}
	if e.bounded(level+1) && len(n.Children) > 0 {
		if f := e.firstFile(n); f != nil {
			return e.opts.Linker.ToLink(f.RelativePath, false)
		}
	}
	return e.opts.Linker.ToLink(n.RelativePath, true)
}

// firstFile searches the subtree in display order, preferring each visited
// directory's index, so a deeper bound always re-emits the same link.
func (e *expander) firstFile(n *tree.Node) *tree.Node {
	if idx := n.IndexFile(e.opts.Linker); idx != nil {
		return idx
	}
	for _, c := range e.sorted(n.Children) {
		if !c.IsDir() {
			return c
		}
		if f := e.firstFile(c); f != nil {
			return f
		}
	}
	return nil
}

func nodeName(n *tree.Node) string {
	return n.Name
}
