package nav

import (
	"git.home.luguber.info/inful/docnav/internal/tree"
)

// GenerateNav folds the forest into the top navigation. Directories with
// emitted children become groups; the rest become links chosen by the
// index fallback. A nil forest yields an empty, non-nil slice.
func GenerateNav(forest *tree.Forest, opts Options) []Item {
	if forest == nil {
		return []Item{}
	}
	e := newExpander(opts)
	e.excludeRootIndex = e.opts.ExcludeRootIndex
	return e.items(forest.Roots, 0)
}
