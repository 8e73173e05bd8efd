package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/docs/errors"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
}

func relAll(t *testing.T, root string, files []string) []string {
	t.Helper()
	out := make([]string, 0, len(files))
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"index.md":                   "# Home",
		"guide/start.md":             "# Start",
		"guide/image.png":            "png",
		"guide/drafts/wip.md":        "# WIP",
		"node_modules/pkg/README.md": "x",
		"dist/out.md":                "x",
		".git/HEAD.md":               "x",
		"api/dist/generated.md":      "x",
	})

	tests := []struct {
		name string
		opts ScanOptions
		want []string
	}{
		{
			name: "default deny list",
			want: []string{"guide/drafts/wip.md", "guide/start.md", "index.md"},
		},
		{
			name: "exclude drafts",
			opts: ScanOptions{Exclude: []string{"**/drafts/**"}},
			want: []string{"guide/start.md", "index.md"},
		},
		{
			name: "include only guide",
			opts: ScanOptions{Include: []string{"guide/**"}},
			want: []string{"guide/drafts/wip.md", "guide/start.md"},
		},
		{
			name: "other extension",
			opts: ScanOptions{Extension: ".png"},
			want: []string{"guide/image.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScanner(tt.opts)
			require.NoError(t, err)

			files, err := s.Scan(t.Context(), root)
			require.NoError(t, err)
			for _, f := range files {
				assert.True(t, filepath.IsAbs(f))
			}
			assert.Equal(t, tt.want, relAll(t, root, files))
		})
	}
}

func TestScanner_EmptyDirectory(t *testing.T) {
	s, err := NewScanner(ScanOptions{})
	require.NoError(t, err)

	files, err := s.Scan(t.Context(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanner_Errors(t *testing.T) {
	s, err := NewScanner(ScanOptions{})
	require.NoError(t, err)

	_, err = s.Scan(t.Context(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, derrors.ErrScanRootNotFound)

	root := t.TempDir()
	writeFiles(t, root, map[string]string{"file.md": "x"})
	_, err = s.Scan(t.Context(), filepath.Join(root, "file.md"))
	require.ErrorIs(t, err, derrors.ErrScanRootNotDir)

	_, err = NewScanner(ScanOptions{Include: []string{"[unclosed"}})
	require.ErrorIs(t, err, derrors.ErrInvalidPattern)
}

func TestFilter(t *testing.T) {
	root := t.TempDir()
	files := []string{
		filepath.Join(root, "a.md"),
		filepath.Join(root, "guide", "b.md"),
		filepath.Join(root, "guide", "drafts", "c.md"),
	}

	got, err := Filter(root, files, nil, []string{"**/drafts/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "guide/b.md"}, relAll(t, root, got))

	got, err = Filter(root, files, []string{"guide/**"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"guide/b.md", "guide/drafts/c.md"}, relAll(t, root, got))

	got, err = Filter(root, files, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, files, got)
}
