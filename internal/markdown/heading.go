package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// FirstHeading returns the text of the first level-1 heading in a Markdown
// body (frontmatter already removed), trimmed. ok is false when the body has
// no non-empty H1. Both ATX ("# Title") and setext ("Title\n=====") headings count.
func FirstHeading(body []byte) (heading string, ok bool) {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, isHeading := n.(*gmast.Heading)
		if !isHeading {
			return gmast.WalkContinue, nil
		}
		if h.Level == 1 {
			if t := strings.TrimSpace(inlineText(h, body)); t != "" {
				heading, ok = t, true
				return gmast.WalkStop, nil
			}
		}
		return gmast.WalkSkipChildren, nil
	})
	return heading, ok
}

// inlineText concatenates the literal text below n, dropping emphasis,
// link and code span markup.
func inlineText(n gmast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *gmast.Text:
			buf.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *gmast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(inlineText(c, source))
		}
	}
	return buf.String()
}
