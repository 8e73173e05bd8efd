package nav

import (
	"fmt"
	"strings"
	"time"

	"git.home.luguber.info/inful/docnav/internal/foundation"
	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/tree"
)

// DirInfo is passed to directory hooks.
type DirInfo struct {
	Name         string
	AbsolutePath string
	RelativePath string
	Depth        int
}

// FileInfo is passed to file hooks. Name is the basename without extension.
type FileInfo struct {
	Name         string
	AbsolutePath string
	RelativePath string
	Depth        int
	Frontmatter  map[string]any
	FirstHeading string
}

// DirectoryHook overrides a directory's display text. None keeps the default.
type DirectoryHook func(DirInfo) foundation.Option[string]

// FileHook overrides a file's display text. None keeps the default.
type FileHook func(FileInfo) foundation.Option[string]

// DefaultFileTitle resolves a file's title: front matter title, then the
// first level-1 heading, then the basename.
func DefaultFileTitle(meta *tree.FileMeta) string {
	if meta == nil {
		return ""
	}
	if t, ok := frontmatterTitle(meta.Frontmatter); ok {
		return t
	}
	if h := strings.TrimSpace(meta.FirstHeading); h != "" {
		return h
	}
	return meta.Basename
}

func frontmatterTitle(fm map[string]any) (string, bool) {
	raw, ok := fm["title"]
	if !ok || raw == nil {
		return "", false
	}
	var title string
	switch v := raw.(type) {
	case string:
		title = v
	case bool, map[string]any, []any:
		return "", false
	case time.Time:
		title = formatTime(v)
	default:
		title = fmt.Sprint(v)
	}
	title = strings.TrimSpace(title)
	return title, title != ""
}

// formatTime renders YAML dates as written; timestamps keep their clock.
func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}
	return t.Format(time.RFC3339)
}

// FirstDirectoryHook combines hooks; the first Some wins.
func FirstDirectoryHook(hooks ...DirectoryHook) DirectoryHook {
	return func(info DirInfo) foundation.Option[string] {
		for _, h := range hooks {
			if h == nil {
				continue
			}
			if r := h(info); r.IsSome() {
				return r
			}
		}
		return foundation.None[string]()
	}
}

// FirstFileHook combines hooks; the first Some wins.
func FirstFileHook(hooks ...FileHook) FileHook {
	return func(info FileInfo) foundation.Option[string] {
		for _, h := range hooks {
			if h == nil {
				continue
			}
			if r := h(info); r.IsSome() {
				return r
			}
		}
		return foundation.None[string]()
	}
}

// TitleMapHooks turns a relative path -> title table into hooks. Keys are
// relative to the link root; file keys may omit the extension.
func TitleMapHooks(titles map[string]string, l links.Linker) (DirectoryHook, FileHook) {
	if len(titles) == 0 {
		return nil, nil
	}
	table := make(map[string]string, len(titles))
	for k, v := range titles {
		table[titleKey(k)] = v
	}

	onDir := func(info DirInfo) foundation.Option[string] {
		if t, ok := table[titleKey(info.RelativePath)]; ok {
			return foundation.Some(t)
		}
		return foundation.None[string]()
	}
	onFile := func(info FileInfo) foundation.Option[string] {
		key := titleKey(info.RelativePath)
		if t, ok := table[key]; ok {
			return foundation.Some(t)
		}
		if t, ok := table[strings.TrimSuffix(key, l.Extension)]; ok && l.Extension != "" {
			return foundation.Some(t)
		}
		return foundation.None[string]()
	}
	return onDir, onFile
}

func titleKey(p string) string {
	return strings.Trim(strings.TrimPrefix(links.NormalizePath(p), "./"), "/")
}

// titler resolves display text for one rendering pass. It never mutates nodes.
type titler struct {
	onDirectory      DirectoryHook
	onFile           FileHook
	formatSortPrefix bool
}

func (t titler) directory(n *tree.Node) string {
	if t.onDirectory != nil {
		info := DirInfo{
			Name:         n.Name,
			AbsolutePath: n.AbsolutePath,
			RelativePath: n.RelativePath,
			Depth:        n.Depth,
		}
		if text, ok := t.onDirectory(info).Get(); ok {
			return text
		}
	}
	return t.format(n.Name)
}

func (t titler) file(n *tree.Node) string {
	meta := n.File
	if meta == nil {
		meta = &tree.FileMeta{Basename: n.Name}
	}
	if t.onFile != nil {
		info := FileInfo{
			Name:         meta.Basename,
			AbsolutePath: n.AbsolutePath,
			RelativePath: n.RelativePath,
			Depth:        n.Depth,
			Frontmatter:  meta.Frontmatter,
			FirstHeading: meta.FirstHeading,
		}
		if text, ok := t.onFile(info).Get(); ok {
			return text
		}
	}
	return t.format(DefaultFileTitle(meta))
}

func (t titler) format(text string) string {
	if !t.formatSortPrefix {
		return text
	}
	if stripped := links.StripSortPrefix(text); stripped != "" {
		return stripped
	}
	return text
}
