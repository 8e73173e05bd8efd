package links

import (
	"path/filepath"
	"regexp"
	"strings"
)

// NormalizePath rewrites OS-specific separators to '/'. It is idempotent.
func NormalizePath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}

// Linker derives site links from canonical relative paths.
type Linker struct {
	// Extension is the document suffix stripped from links, e.g. ".md".
	Extension string
	// IndexName is the basename (without extension) of a directory's index file.
	IndexName string
	// CollapseIndex maps an index file onto its directory link ("/guide/")
	// instead of the literal "/guide/index".
	CollapseIndex bool
}

// DefaultLinker returns the Markdown linker with index collapsing enabled.
func DefaultLinker() Linker {
	return Linker{Extension: ".md", IndexName: "index", CollapseIndex: true}
}

// ToLink converts a relative path into a link that always starts with '/'.
// Non-root directory links end with '/'. With CollapseIndex a directory and
// its index file yield the same link.
func (l Linker) ToLink(relativePath string, isDirectory bool) string {
	link := strings.Trim(NormalizePath(relativePath), "/")
	if link == "." {
		link = ""
	}

	if l.Extension != "" && strings.HasSuffix(link, l.Extension) {
		link = strings.TrimSuffix(link, l.Extension)
	}

	if !isDirectory && l.CollapseIndex && l.IndexName != "" {
		dir, last := splitLast(link)
		if last == l.IndexName {
			link = dir
			isDirectory = true
		}
	}

	link = "/" + link
	if isDirectory && link != "/" && !strings.HasSuffix(link, "/") {
		link += "/"
	}
	return link
}

// IsIndex reports whether a file name (with or without extension) is the index file.
func (l Linker) IsIndex(name string) bool {
	return l.Basename(name) == l.IndexName
}

// Basename strips the document extension from a file name.
func (l Linker) Basename(name string) string {
	if l.Extension != "" && strings.HasSuffix(name, l.Extension) {
		return strings.TrimSuffix(name, l.Extension)
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// SectionOf truncates a link to its parent directory path, keeping the
// trailing slash: "/guide/start" -> "/guide/", "/guide/" -> "/guide/".
func SectionOf(link string) string {
	i := strings.LastIndex(link, "/")
	if i < 0 {
		return "/"
	}
	return link[:i+1]
}

func splitLast(p string) (dir, last string) {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "", p
	}
	return p[:i], p[i+1:]
}

// sortPrefix matches a leading number followed by an optional separator
// cluster: '.', '_', '-', whitespace, the ideographic comma and the
// full-width comma.
var sortPrefix = regexp.MustCompile(`^\d+\s*[._\-\s、，]*`)

// StripSortPrefix removes a leading sort prefix such as "01-" or "2. " from
// display text. Link paths never go through this.
func StripSortPrefix(name string) string {
	return strings.TrimSpace(sortPrefix.ReplaceAllString(name, ""))
}
