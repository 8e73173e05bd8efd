package config

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of the fields that affect generated
// output. Logging, cache and metrics settings are left out. Pattern lists
// are order-insensitive.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) { h.Write([]byte(strings.Join(parts, "="))); h.Write([]byte{0}) }
	list := func(in []string) string {
		s := slices.Clone(in)
		sort.Strings(s)
		return strings.Join(s, ",")
	}
	titles := func(m map[string]string) string {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k+":"+m[k])
		}
		sort.Strings(keys)
		return strings.Join(keys, ",")
	}

	w("dir", c.Dir)
	w("root", c.Root)
	w("add_dir_prefix", strconv.FormatBool(c.AddDirPrefix))
	w("extension", c.Extension)
	w("index_name", c.IndexName)
	w("collapse_index", strconv.FormatBool(c.CollapseIndexEnabled()))
	w("include", list(c.Include))
	w("exclude", list(c.Exclude))
	w("sort", string(c.Sort))
	w("titles", titles(c.Titles))
	w("exclude_root_index", strconv.FormatBool(c.ExcludeRootIndex))
	w("format_sort_prefix", strconv.FormatBool(c.FormatSortPrefix))
	w("nav.include", list(c.Nav.Include))
	w("nav.exclude", list(c.Nav.Exclude))
	w("nav.depth", strconv.Itoa(c.Nav.Depth))
	w("nav.titles", titles(c.Nav.Titles))
	w("sidebar.include", list(c.Sidebar.Include))
	w("sidebar.exclude", list(c.Sidebar.Exclude))
	w("sidebar.depth", strconv.Itoa(c.Sidebar.Depth))
	w("sidebar.titles", titles(c.Sidebar.Titles))
	w("sidebar.scope", string(c.Sidebar.Scope))
	if c.Sidebar.Collapsed != nil {
		w("sidebar.collapsed", strconv.FormatBool(*c.Sidebar.Collapsed))
	}
	w("output.format", string(c.Output.Format))
	return hex.EncodeToString(h.Sum(nil))
}
