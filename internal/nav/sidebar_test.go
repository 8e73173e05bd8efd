package nav

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/foundation"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

func TestGenerateSidebar_TreeScope(t *testing.T) {
	forest := fixture(t, nil, "index.md", "guide/index.md", "guide/start.md", "api/ref.md")

	got := GenerateSidebar(t.Context(), forest, nil, SidebarOptions{Scope: ScopeTree})

	assert.Equal(t, []string{"/api/", "/guide/"}, got.Sections())
	assert.Equal(t, []Item{Leaf("ref", "/api/ref")}, got["/api/"])
	assert.Equal(t, []Item{Leaf("index", "/guide/"), Leaf("start", "/guide/start")}, got["/guide/"])
}

func TestGenerateSidebar_NavScopeFollowsTruncation(t *testing.T) {
	forest := fixture(t, nil, "about.md", "guide/sub/deep.md", "guide/sub/other.md")

	navItems := GenerateNav(forest, Options{Depth: 1})
	require.Equal(t, []Item{Leaf("about", "/about"), Leaf("guide", "/guide/sub/deep")}, navItems)

	got := GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeNav})
	assert.Equal(t, []string{"/guide/sub/"}, got.Sections())
	assert.Equal(t, []Item{Leaf("deep", "/guide/sub/deep"), Leaf("other", "/guide/sub/other")}, got["/guide/sub/"])

	treeScoped := GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeTree})
	assert.Equal(t, []string{"/guide/"}, treeScoped.Sections())
}

func TestGenerateSidebar_AutoMatchesNav(t *testing.T) {
	forest := fixture(t, nil, "guide/a.md", "guide/sub/b.md")
	navItems := GenerateNav(forest, Options{})

	assert.Equal(t,
		GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeNav}),
		GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeAuto}))
}

func TestGenerateSidebar_CollapsedOnGroupsOnly(t *testing.T) {
	forest := fixture(t, nil, "guide/a.md", "guide/sub/b.md", "guide/sub/deeper/c.md")

	for _, collapsed := range []bool{true, false} {
		got := GenerateSidebar(t.Context(), forest, nil, SidebarOptions{
			Scope:     ScopeTree,
			Collapsed: foundation.Some(collapsed),
		})

		var check func([]Item)
		groups := 0
		check = func(items []Item) {
			for _, it := range items {
				if it.IsGroup() {
					groups++
					require.NotNil(t, it.Collapsed)
					assert.Equal(t, collapsed, *it.Collapsed)
					check(it.Items)
					continue
				}
				assert.Nil(t, it.Collapsed)
			}
		}
		check(got["/guide/"])
		assert.Equal(t, 2, groups)
	}

	unset := GenerateSidebar(t.Context(), forest, nil, SidebarOptions{Scope: ScopeTree})
	for _, it := range unset["/guide/"] {
		assert.Nil(t, it.Collapsed)
	}
}

func TestGenerateSidebar_DepthIsRelativeToSection(t *testing.T) {
	forest := fixture(t, nil, "guide/a.md", "guide/sub/b.md", "guide/sub/index.md")

	got := GenerateSidebar(t.Context(), forest, nil, SidebarOptions{
		Options: Options{Depth: 1},
		Scope:   ScopeTree,
	})
	assert.Equal(t, []Item{Leaf("a", "/guide/a"), Leaf("sub", "/guide/sub/")}, got["/guide/"])
}

func TestGenerateSidebar_UnresolvableSectionsSkipped(t *testing.T) {
	forest := fixture(t, nil, "index.md", "about.md")
	navItems := []Item{Leaf("Home", "/"), Leaf("About", "/about"), Leaf("External", "/missing/page")}

	got := GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeNav})
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGenerateSidebar_LinkRootPrefix(t *testing.T) {
	linkRoot := t.TempDir()
	scanRoot := filepath.Join(linkRoot, "docs")
	files := []string{
		filepath.Join(scanRoot, "guide", "a.md"),
		filepath.Join(scanRoot, "guide", "b.md"),
	}
	forest, err := tree.Build(t.Context(), files, tree.BuildOptions{ScanRoot: scanRoot, LinkRoot: linkRoot})
	require.NoError(t, err)

	navItems := GenerateNav(forest, Options{})
	assert.Equal(t, []string{"/docs/guide/a", "/docs/guide/b"}, Links(navItems))

	got := GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeNav})
	assert.Equal(t, []string{"/docs/guide/"}, got.Sections())
	assert.Equal(t, got, GenerateSidebar(t.Context(), forest, navItems, SidebarOptions{Scope: ScopeTree}))
}

func TestGenerateSidebar_Empty(t *testing.T) {
	got := GenerateSidebar(t.Context(), fixture(t, nil), []Item{}, SidebarOptions{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, GenerateSidebar(t.Context(), nil, nil, SidebarOptions{}))
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeNav, s)

	s, err = ParseScope("TREE")
	require.NoError(t, err)
	assert.Equal(t, ScopeTree, s)

	_, err = ParseScope("sideways")
	require.Error(t, err)
}
