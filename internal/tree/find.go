package tree

import "strings"

// FindDir locates the directory node for a section path such as "/guide/sub/".
// The link prefix (when links are relative to a parent of the scan root) is
// removed before walking the forest segment by segment. It returns nil when
// no such directory exists, including for the scan root itself.
func (f *Forest) FindDir(sectionPath string) *Node {
	p := strings.Trim(sectionPath, "/")
	if f.Prefix != "" {
		if !strings.HasPrefix(p+"/", f.Prefix+"/") {
			return nil
		}
		p = strings.TrimPrefix(strings.TrimPrefix(p, f.Prefix), "/")
	}
	if p == "" {
		return nil
	}

	nodes := f.Roots
	var current *Node
	for _, segment := range strings.Split(p, "/") {
		current = nil
		for _, n := range nodes {
			if n.IsDir() && n.Name == segment {
				current = n
				break
			}
		}
		if current == nil {
			return nil
		}
		nodes = current.Children
	}
	return current
}
