// Package tree converts a flat list of scanned documentation files into a
// forest of directory and file nodes.
//
// Directory keys are the joined path segments exactly as scanned. Two
// directories that differ only in case are distinct nodes unless the
// filesystem already reported them with the same spelling; on
// case-insensitive filesystems this follows whatever the scan returned.
package tree

import (
	"git.home.luguber.info/inful/docnav/internal/links"
)

// Kind distinguishes files from directories.
type Kind string

const (
	KindFile      Kind = "file"
	KindDirectory Kind = "directory"
)

// FileMeta holds the title inputs of a file node.
type FileMeta struct {
	// Basename is the file name without its extension.
	Basename     string
	Frontmatter  map[string]any
	FirstHeading string
	// Fingerprint is the content fingerprint reported by the extractor, if any.
	Fingerprint string
}

// Node is one file or directory discovered by the scan.
type Node struct {
	Kind         Kind
	Name         string
	AbsolutePath string
	// RelativePath is the canonical ('/'-separated) path relative to the link root.
	RelativePath string
	// Depth is the 0-based distance from the scan root.
	Depth int
	// Children is only set for directories, in build order.
	Children []*Node
	// File is only set for files.
	File *FileMeta
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDirectory
}

// IndexFile returns the index file directly under the directory, or nil.
func (n *Node) IndexFile(l links.Linker) *Node {
	if !n.IsDir() {
		return nil
	}
	for _, c := range n.Children {
		if c.Kind == KindFile && l.IsIndex(c.Name) {
			return c
		}
	}
	return nil
}

// Forest is the rooted result of a build.
type Forest struct {
	Roots []*Node
	// ScanRoot is the absolute scanned directory.
	ScanRoot string
	// LinkRoot is the absolute directory RelativePath values are relative to.
	LinkRoot string
	// Prefix is the canonical path of ScanRoot relative to LinkRoot, "" when equal.
	Prefix string
}

// Walk visits every node in pre-order. Returning false from fn skips the
// node's children.
func (f *Forest) Walk(fn func(*Node) bool) {
	var walk func([]*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			if fn(n) && n.IsDir() {
				walk(n.Children)
			}
		}
	}
	walk(f.Roots)
}

// Files returns every file node in pre-order.
func (f *Forest) Files() []*Node {
	var out []*Node
	f.Walk(func(n *Node) bool {
		if n.Kind == KindFile {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Counts returns the number of file and directory nodes.
func (f *Forest) Counts() (files, dirs int) {
	f.Walk(func(n *Node) bool {
		if n.IsDir() {
			dirs++
		} else {
			files++
		}
		return true
	})
	return files, dirs
}

// TopLevelDirs returns the directory nodes directly under the scan root.
func (f *Forest) TopLevelDirs() []*Node {
	var out []*Node
	for _, n := range f.Roots {
		if n.IsDir() {
			out = append(out, n)
		}
	}
	return out
}
