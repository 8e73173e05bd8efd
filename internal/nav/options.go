package nav

import (
	"git.home.luguber.info/inful/docnav/internal/foundation"
	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/sorting"
)

// Options controls how a forest is folded into items.
type Options struct {
	Linker links.Linker
	// Sorter orders siblings. Nil sorts ascending.
	Sorter *sorting.Sorter
	// Depth bounds the number of levels emitted; 0 is unbounded.
	Depth       int
	OnDirectory DirectoryHook
	OnFile      FileHook
	// ExcludeRootIndex drops the top-level index file.
	ExcludeRootIndex bool
	// FormatSortPrefix strips sort prefixes from default display text.
	FormatSortPrefix bool
}

func (o Options) withDefaults() Options {
	if o.Linker == (links.Linker{}) {
		o.Linker = links.DefaultLinker()
	}
	if o.Sorter == nil {
		o.Sorter = sorting.New(sorting.ModeAsc)
	}
	if o.Depth < 0 {
		o.Depth = 0
	}
	return o
}

// Scope selects how sidebar sections are chosen.
type Scope string

const (
	// ScopeTree emits one section per top-level directory.
	ScopeTree Scope = "tree"
	// ScopeNav emits one section per directory that holds a Nav link.
	ScopeNav Scope = "nav"
	// ScopeAuto resolves to ScopeNav.
	ScopeAuto Scope = "auto"
)

var scopeNormalizer = normalization.NewNormalizer("sidebar scope", map[string]Scope{
	"tree": ScopeTree,
	"nav":  ScopeNav,
	"auto": ScopeAuto,
}, ScopeNav)

// ParseScope converts a config string into a Scope. Empty input means ScopeNav.
func ParseScope(raw string) (Scope, error) {
	return scopeNormalizer.Parse(raw)
}

// SidebarOptions extends Options with sidebar-only settings.
type SidebarOptions struct {
	Options
	// Collapsed is set on every group when present.
	Collapsed foundation.Option[bool]
	Scope     Scope
}
