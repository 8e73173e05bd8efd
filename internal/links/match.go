package links

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher applies include/exclude glob rules to canonical relative paths.
// Patterns use '/' as separator; "**" crosses directory boundaries and a
// "**/" segment may also match zero directories.
type Matcher struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewMatcher compiles include and exclude patterns.
func NewMatcher(include, exclude []string) (*Matcher, error) {
	inc, err := compileAll(include)
	if err != nil {
		return nil, err
	}
	exc, err := compileAll(exclude)
	if err != nil {
		return nil, err
	}
	return &Matcher{include: inc, exclude: exc}, nil
}

// Includes reports whether path passes the rules. Exclude takes precedence;
// with no include patterns every non-excluded path is kept.
func (m *Matcher) Includes(path string) bool {
	if m == nil {
		return true
	}
	path = strings.TrimPrefix(NormalizePath(path), "./")
	if matchesAny(path, m.exclude) {
		return false
	}
	if len(m.include) == 0 {
		return true
	}
	return matchesAny(path, m.include)
}

func matchesAny(path string, globs []glob.Glob) bool {
	for _, g := range globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

func compileAll(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		p = strings.TrimPrefix(NormalizePath(strings.TrimSpace(p)), "./")
		if p == "" {
			continue
		}
		for _, variant := range globstarVariants(p) {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
			}
			out = append(out, g)
		}
	}
	return out, nil
}

// globstarVariants expands every "**/" segment into the pattern with and
// without it, so "docs/**/a.md" also matches "docs/a.md".
func globstarVariants(pattern string) []string {
	variants := []string{pattern}
	seen := map[string]struct{}{pattern: {}}
	for i := 0; i < len(variants); i++ {
		p := variants[i]
		for j := 0; j+3 <= len(p); j++ {
			if p[j:j+3] != "**/" || (j > 0 && p[j-1] != '/') {
				continue
			}
			v := p[:j] + p[j+3:]
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			variants = append(variants, v)
		}
	}
	return variants
}
