package nav

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

// GenerateSidebar builds the section map. With ScopeTree every top-level
// directory is a section; with ScopeNav (and ScopeAuto) the sections are
// the parent directories of the Nav leaf links, so the sidebar follows
// wherever Nav truncation stopped. Each section holds the expansion of
// its directory's children with the depth counted from the section.
// Sections that expand to nothing are omitted.
func GenerateSidebar(ctx context.Context, forest *tree.Forest, navItems []Item, opts SidebarOptions) Sidebar {
	sidebar := Sidebar{}
	if forest == nil {
		return sidebar
	}

	e := newExpander(opts.Options)
	e.collapsed = opts.Collapsed

	for _, dir := range sectionDirs(ctx, forest, navItems, opts.Scope) {
		key := e.opts.Linker.ToLink(dir.RelativePath, true)
		if _, done := sidebar[key]; done {
			continue
		}
		items := e.items(dir.Children, 0)
		if len(items) == 0 {
			slog.DebugContext(ctx, "Omitting empty sidebar section", logfields.Section(key))
			continue
		}
		sidebar[key] = items
	}
	return sidebar
}

func sectionDirs(ctx context.Context, forest *tree.Forest, navItems []Item, scope Scope) []*tree.Node {
	if scope == ScopeTree {
		return forest.TopLevelDirs()
	}

	var dirs []*tree.Node
	seen := make(map[string]struct{})
	for _, link := range Links(navItems) {
		section := links.SectionOf(link)
		if _, ok := seen[section]; ok {
			continue
		}
		seen[section] = struct{}{}

		dir := forest.FindDir(section)
		if dir == nil {
			slog.DebugContext(ctx, "Skipping sidebar section without directory",
				logfields.Section(section),
				logfields.Link(link))
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs
}
