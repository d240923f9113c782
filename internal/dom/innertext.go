package dom

import (
	"strings"

	"golang.org/x/net/html"
)

var skippedTags = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"caption": true, "dd": true, "details": true, "dialog": true,
	"div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"header": true, "hr": true, "li": true, "main": true,
	"nav": true, "ol": true, "pre": true, "section": true,
	"summary": true, "table": true, "tbody": true, "tfoot": true,
	"thead": true, "tr": true, "ul": true,
}

// paragraph-like blocks are separated by an empty line
var paragraphTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// InnerText approximates the browser's innerText for a parsed node: hidden
// and non-rendered subtrees are skipped, whitespace collapses outside pre,
// and block boundaries become line breaks.
func InnerText(n *html.Node) string {
	w := &textWalker{}
	w.walk(n, false)
	return w.String()
}

type textRun struct {
	text string
	brk  int
	pre  bool
}

type textWalker struct {
	runs []textRun
}

func (w *textWalker) walk(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			w.text(n.Data, true)
		} else {
			w.text(collapseSpace(n.Data), false)
		}
		return
	case html.ElementNode:
		if skippedTags[n.Data] || hasAttr(n, "hidden") {
			return
		}
	case html.DocumentNode:
	default:
		return
	}

	tag := ""
	if n.Type == html.ElementNode {
		tag = n.Data
	}

	switch {
	case tag == "br":
		w.text("\n", true)
		return
	case paragraphTags[tag]:
		w.brk(2)
	case blockTags[tag]:
		w.brk(1)
	case (tag == "td" || tag == "th") && prevElement(n) != nil:
		w.text("\t", true)
	}

	childPre := pre || tag == "pre"
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, childPre)
	}

	switch {
	case paragraphTags[tag]:
		w.brk(2)
	case blockTags[tag]:
		w.brk(1)
	}
}

func (w *textWalker) text(s string, pre bool) {
	if s == "" {
		return
	}
	w.runs = append(w.runs, textRun{text: s, pre: pre})
}

func (w *textWalker) brk(n int) {
	if l := len(w.runs); l > 0 && w.runs[l-1].brk > 0 {
		w.runs[l-1].brk = max(w.runs[l-1].brk, n)
		return
	}
	w.runs = append(w.runs, textRun{brk: n})
}

func (w *textWalker) String() string {
	var buf []byte
	pending := 0
	for _, r := range w.runs {
		if r.brk > 0 {
			if len(buf) > 0 {
				pending = max(pending, r.brk)
			}
			continue
		}

		s := r.text
		if !r.pre && strings.Trim(s, " ") == "" && (pending > 0 || atLineStart(buf)) {
			continue
		}
		if pending > 0 {
			buf = trimRightSpace(buf)
			for i := 0; i < pending; i++ {
				buf = append(buf, '\n')
			}
			pending = 0
		}
		if !r.pre && (atLineStart(buf) || buf[len(buf)-1] == ' ') {
			s = strings.TrimLeft(s, " ")
		}
		buf = append(buf, s...)
	}
	return string(trimRightSpace(buf))
}

func atLineStart(b []byte) bool {
	return len(b) == 0 || b[len(b)-1] == '\n'
}

func trimRightSpace(b []byte) []byte {
	for len(b) > 0 && b[len(b)-1] == ' ' {
		b = b[:len(b)-1]
	}
	return b
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func prevElement(n *html.Node) *html.Node {
	for p := n.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}
