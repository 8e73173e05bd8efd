package nav

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/tree"
)

// fixture builds a forest from relative paths. headings maps a relative
// path to the first heading its file reports.
func fixture(t *testing.T, headings map[string]string, rel ...string) *tree.Forest {
	t.Helper()
	root := t.TempDir()
	files := make([]string, 0, len(rel))
	byAbs := make(map[string]string, len(rel))
	for _, r := range rel {
		abs := filepath.Join(root, filepath.FromSlash(r))
		files = append(files, abs)
		byAbs[abs] = headings[r]
	}
	extract := tree.ExtractorFunc(func(_ context.Context, absPath string) tree.FileMeta {
		return tree.FileMeta{Frontmatter: map[string]any{}, FirstHeading: byAbs[absPath]}
	})
	forest, err := tree.Build(t.Context(), files, tree.BuildOptions{ScanRoot: root, Extractor: extract})
	require.NoError(t, err)
	return forest
}
