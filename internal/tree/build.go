package tree

import (
	"context"
	"errors"
	"path"
	"path/filepath"
	"strings"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/links"
)

// ErrInvalidPath is the cause of a build failure for a file that does not
// lie under the scan root, or a scan root that does not lie under the link root.
var ErrInvalidPath = errors.New("path outside root")

// Extractor supplies title metadata for a file node.
type Extractor interface {
	Extract(ctx context.Context, absPath string) FileMeta
}

// ExtractorFunc adapts a function to Extractor.
type ExtractorFunc func(ctx context.Context, absPath string) FileMeta

// Extract calls f.
func (f ExtractorFunc) Extract(ctx context.Context, absPath string) FileMeta {
	return f(ctx, absPath)
}

// BuildOptions configures Build.
type BuildOptions struct {
	// ScanRoot is the directory the files were discovered under.
	ScanRoot string
	// LinkRoot is the directory relative paths are computed from. Defaults to ScanRoot.
	LinkRoot string
	// Extractor supplies frontmatter and headings. Nil leaves metadata empty.
	Extractor Extractor
}

// Build groups files into a forest rooted at the scan root.
//
// Directories are created the first time a file beneath them is seen, so the
// order of files decides the order of siblings: within any directory, files
// come first in input order and subdirectories follow in creation order.
// Duplicate paths are kept once. Build stops early when ctx is cancelled.
func Build(ctx context.Context, files []string, opts BuildOptions) (*Forest, error) {
	scanRoot, err := filepath.Abs(opts.ScanRoot)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "resolve scan root").
			WithContext("root", opts.ScanRoot).
			Build()
	}
	linkRoot := scanRoot
	if opts.LinkRoot != "" {
		if linkRoot, err = filepath.Abs(opts.LinkRoot); err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryFileSystem, "resolve link root").
				WithContext("root", opts.LinkRoot).
				Build()
		}
	}

	prefix, ok := relativeWithin(linkRoot, scanRoot)
	if !ok {
		return nil, invalidPath("scan root is outside the link root", scanRoot, linkRoot)
	}

	b := &builder{
		forest: &Forest{ScanRoot: scanRoot, LinkRoot: linkRoot, Prefix: prefix},
		dirs:   make(map[string]*Node),
		seen:   make(map[string]struct{}),
		opts:   opts,
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, derrors.WrapError(err, derrors.CategoryInternal, "tree build cancelled").Build()
		}
		if err := b.add(ctx, file); err != nil {
			return nil, err
		}
	}
	b.assemble()
	return b.forest, nil
}

type pendingFile struct {
	parent string
	node   *Node
}

type builder struct {
	forest *Forest
	// dirs is keyed by the joined segments relative to the scan root.
	dirs     map[string]*Node
	dirOrder []string
	files    []pendingFile
	seen     map[string]struct{}
	opts     BuildOptions
}

func (b *builder) add(ctx context.Context, file string) error {
	abs := file
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(b.forest.ScanRoot, abs)
	}
	abs = filepath.Clean(abs)

	rel, ok := relativeWithin(b.forest.ScanRoot, abs)
	if !ok || rel == "" {
		return invalidPath("file is outside the scan root", abs, b.forest.ScanRoot)
	}
	if _, dup := b.seen[rel]; dup {
		return nil
	}
	b.seen[rel] = struct{}{}

	segments := strings.Split(rel, "/")
	for i := range len(segments) - 1 {
		key := strings.Join(segments[:i+1], "/")
		if _, exists := b.dirs[key]; exists {
			continue
		}
		b.dirs[key] = &Node{
			Kind:         KindDirectory,
			Name:         segments[i],
			AbsolutePath: filepath.Join(b.forest.ScanRoot, filepath.FromSlash(key)),
			RelativePath: b.linkPath(key),
			Depth:        i,
		}
		b.dirOrder = append(b.dirOrder, key)
	}

	name := segments[len(segments)-1]
	var meta FileMeta
	if b.opts.Extractor != nil {
		meta = b.opts.Extractor.Extract(ctx, abs)
	}
	meta.Basename = strings.TrimSuffix(name, filepath.Ext(name))

	b.files = append(b.files, pendingFile{
		parent: strings.Join(segments[:len(segments)-1], "/"),
		node: &Node{
			Kind:         KindFile,
			Name:         name,
			AbsolutePath: abs,
			RelativePath: b.linkPath(rel),
			Depth:        len(segments) - 1,
			File:         &meta,
		},
	})
	return nil
}

// assemble attaches files before directories so every directory lists its
// files first.
func (b *builder) assemble() {
	for _, f := range b.files {
		b.attach(f.parent, f.node)
	}
	for _, key := range b.dirOrder {
		parent, _ := splitParent(key)
		b.attach(parent, b.dirs[key])
	}
}

func (b *builder) attach(parent string, n *Node) {
	if parent == "" {
		b.forest.Roots = append(b.forest.Roots, n)
		return
	}
	dir := b.dirs[parent]
	dir.Children = append(dir.Children, n)
}

func (b *builder) linkPath(rel string) string {
	if b.forest.Prefix == "" {
		return rel
	}
	return path.Join(b.forest.Prefix, rel)
}

func splitParent(key string) (parent, name string) {
	i := strings.LastIndex(key, "/")
	if i < 0 {
		return "", key
	}
	return key[:i], key[i+1:]
}

// relativeWithin returns target relative to base in canonical form. It
// reports false when target escapes base.
func relativeWithin(base, target string) (string, bool) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", false
	}
	rel = links.NormalizePath(rel)
	if rel == "." {
		return "", true
	}
	if rel == ".." || strings.HasPrefix(rel, "../") || filepath.IsAbs(rel) {
		return "", false
	}
	return rel, true
}

func invalidPath(message, p, root string) error {
	return derrors.ValidationError(message).
		WithCause(ErrInvalidPath).
		WithContext("path", p).
		WithContext("root", root).
		Build()
}
