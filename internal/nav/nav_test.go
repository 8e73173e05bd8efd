package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/foundation"
	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/sorting"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

func TestGenerateNav_GroupsAndIndexCollapsing(t *testing.T) {
	forest := fixture(t, map[string]string{
		"guide/index.md": "Guide Home",
		"guide/start.md": "Start",
		"about.md":       "About",
	}, "guide/index.md", "guide/start.md", "about.md")

	got := GenerateNav(forest, Options{})

	want := []Item{
		Leaf("About", "/about"),
		Group("guide", []Item{
			Leaf("Guide Home", "/guide/"),
			Leaf("Start", "/guide/start"),
		}),
	}
	assert.Equal(t, want, got)
}

func TestGenerateNav_IndexKeptLiteralWithoutCollapsing(t *testing.T) {
	forest := fixture(t, nil, "guide/index.md")

	got := GenerateNav(forest, Options{Linker: links.Linker{Extension: ".md", IndexName: "index"}})

	require.Len(t, got, 1)
	assert.Equal(t, []Item{Leaf("index", "/guide/index")}, got[0].Items)
}

func TestGenerateNav_DepthFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		depth int
		want  []Item
	}{
		{
			name:  "first file when depth cuts off",
			files: []string{"guide/sub/deep.md"},
			depth: 1,
			want:  []Item{Leaf("guide", "/guide/sub/deep")},
		},
		{
			name:  "index preferred over first file",
			files: []string{"guide/a.md", "guide/index.md"},
			depth: 1,
			want:  []Item{Leaf("guide", "/guide/")},
		},
		{
			name:  "nested index preferred in subtree search",
			files: []string{"guide/sub/z.md", "guide/sub/index.md"},
			depth: 1,
			want:  []Item{Leaf("guide", "/guide/sub/")},
		},
		{
			name:  "search follows display order",
			files: []string{"guide/b.md", "guide/a/x.md"},
			depth: 1,
			want:  []Item{Leaf("guide", "/guide/a/x")},
		},
		{
			name:  "second level truncated",
			files: []string{"guide/start.md", "guide/sub/deep.md"},
			depth: 2,
			want: []Item{Group("guide", []Item{
				Leaf("start", "/guide/start"),
				Leaf("sub", "/guide/sub/deep"),
			})},
		},
		{
			name:  "unbounded",
			files: []string{"guide/sub/deep.md"},
			depth: 0,
			want: []Item{Group("guide", []Item{
				Group("sub", []Item{Leaf("deep", "/guide/sub/deep")}),
			})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest := fixture(t, nil, tt.files...)
			assert.Equal(t, tt.want, GenerateNav(forest, Options{Depth: tt.depth}))
		})
	}
}

func TestGenerateNav_ChildlessDirectoryLinksToItself(t *testing.T) {
	root := &tree.Node{Kind: tree.KindDirectory, Name: "empty", RelativePath: "empty"}
	forest := &tree.Forest{Roots: []*tree.Node{root}}

	got := GenerateNav(forest, Options{Depth: 1})
	assert.Equal(t, []Item{Leaf("empty", "/empty/")}, got)
}

func TestGenerateNav_ExcludeRootIndex(t *testing.T) {
	forest := fixture(t, map[string]string{"index.md": "Home"}, "index.md", "intro.md", "guide/index.md")

	with := GenerateNav(forest, Options{})
	assert.Contains(t, Links(with), "/")

	without := GenerateNav(forest, Options{ExcludeRootIndex: true})
	for _, link := range Links(without) {
		assert.NotEqual(t, "/", link)
	}
	assert.Contains(t, Links(without), "/guide/")
}

func TestGenerateNav_SortAndPrefixFormatting(t *testing.T) {
	forest := fixture(t, nil, "10-last.md", "2-second.md", "1-first.md", "03-guide/a.md")

	asc := GenerateNav(forest, Options{FormatSortPrefix: true})
	texts := make([]string, 0, len(asc))
	for _, it := range asc {
		texts = append(texts, it.Text)
	}
	assert.Equal(t, []string{"first", "second", "guide", "last"}, texts)
	assert.Equal(t, "/2-second", asc[1].Link)

	desc := GenerateNav(forest, Options{Sorter: sorting.New(sorting.ModeDesc)})
	assert.Equal(t, "10-last", desc[0].Text)
}

func TestGenerateNav_Hooks(t *testing.T) {
	forest := fixture(t, map[string]string{"guide/a.md": "Heading"}, "guide/a.md", "guide/b.md")

	opts := Options{
		OnDirectory: func(info DirInfo) foundation.Option[string] {
			if info.Name == "guide" {
				return foundation.Some("User Guide")
			}
			return foundation.None[string]()
		},
		OnFile: func(info FileInfo) foundation.Option[string] {
			if info.Name == "b" {
				return foundation.Some("Bee")
			}
			return foundation.None[string]()
		},
	}

	got := GenerateNav(forest, opts)
	require.Len(t, got, 1)
	assert.Equal(t, "User Guide", got[0].Text)
	assert.Equal(t, []Item{Leaf("Heading", "/guide/a"), Leaf("Bee", "/guide/b")}, got[0].Items)
}

func TestGenerateNav_Empty(t *testing.T) {
	assert.Equal(t, []Item{}, GenerateNav(fixture(t, nil), Options{}))
	assert.Equal(t, []Item{}, GenerateNav(nil, Options{}))
}

func TestGenerateNav_DoesNotMutateForest(t *testing.T) {
	forest := fixture(t, nil, "b.md", "a.md")
	_ = GenerateNav(forest, Options{})
	assert.Equal(t, "b.md", forest.Roots[0].Name)
}
