package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "guide/start.md", NormalizePath(`guide\start.md`))
	assert.Equal(t, "guide/start.md", NormalizePath("guide/start.md"))
	assert.Equal(t, "", NormalizePath(""))
}

func TestLinker_ToLink(t *testing.T) {
	collapse := DefaultLinker()
	literal := Linker{Extension: ".md", IndexName: "index", CollapseIndex: false}

	tests := []struct {
		name   string
		linker Linker
		path   string
		isDir  bool
		want   string
	}{
		{"file", collapse, "about.md", false, "/about"},
		{"nested file", collapse, "guide/start.md", false, "/guide/start"},
		{"directory", collapse, "guide", true, "/guide/"},
		{"directory with trailing slash", collapse, "guide/", true, "/guide/"},
		{"root directory", collapse, "", true, "/"},
		{"dot directory", collapse, ".", true, "/"},
		{"index collapses to directory", collapse, "guide/index.md", false, "/guide/"},
		{"root index collapses to root", collapse, "index.md", false, "/"},
		{"index literal", literal, "guide/index.md", false, "/guide/index"},
		{"root index literal", literal, "index.md", false, "/index"},
		{"name containing index", collapse, "guide/reindex.md", false, "/guide/reindex"},
		{"windows separators", collapse, `guide\sub\deep.md`, false, "/guide/sub/deep"},
		{"leading slash kept single", collapse, "/guide/start.md", false, "/guide/start"},
		{"prefixed link root", collapse, "docs/guide/index.md", false, "/docs/guide/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.linker.ToLink(tt.path, tt.isDir))
		})
	}
}

func TestLinker_DirectoryAndIndexAgreeOnlyWhenCollapsing(t *testing.T) {
	collapse := DefaultLinker()
	assert.Equal(t, collapse.ToLink("guide", true), collapse.ToLink("guide/index.md", false))

	literal := collapse
	literal.CollapseIndex = false
	assert.NotEqual(t, literal.ToLink("guide", true), literal.ToLink("guide/index.md", false))
}

func TestLinker_IsIndexAndBasename(t *testing.T) {
	l := DefaultLinker()
	assert.True(t, l.IsIndex("index.md"))
	assert.True(t, l.IsIndex("index"))
	assert.False(t, l.IsIndex("Index.md"))
	assert.Equal(t, "start", l.Basename("start.md"))
	assert.Equal(t, "notes", l.Basename("notes.txt"))
}

func TestSectionOf(t *testing.T) {
	assert.Equal(t, "/guide/", SectionOf("/guide/start"))
	assert.Equal(t, "/guide/", SectionOf("/guide/"))
	assert.Equal(t, "/", SectionOf("/about"))
	assert.Equal(t, "/a/b/", SectionOf("/a/b/c"))
}

func TestStripSortPrefix(t *testing.T) {
	tests := map[string]string{
		"01-intro":         "intro",
		"1. Getting Started": "Getting Started",
		"2_setup":          "setup",
		"3   spaced":       "spaced",
		"4、目录":            "目录",
		"5，说明":            "说明",
		"10.-_ mixed":      "mixed",
		"no-prefix":        "no-prefix",
		"v2 release":       "v2 release",
		"2024":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, StripSortPrefix(in), "input %q", in)
	}
}
