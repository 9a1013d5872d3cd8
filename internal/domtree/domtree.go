// Package domtree wraps golang.org/x/net/html into the node contract the
// content scoring and cleaning engine is specified against: a stable
// per-document integer index, full-subtree text concatenation, and
// predicate-based search in document order.
//
// A Document owns the node table for one parse; Node values are cheap
// references into it and must not outlive the Document they came from.
package domtree

import (
	"errors"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML tree with a stable document-order index
// assigned to every node at parse time.
type Document struct {
	nodes []*html.Node
	index map[*html.Node]int
}

// Parse reads HTML from r and builds a Document. Parsing itself goes
// through goquery, the DOM library the rest of this pack reaches for;
// domtree then walks the underlying golang.org/x/net/html tree goquery
// exposes to assign the stable document-order index the scoring and
// cleaning engine depends on, something goquery's own Selection does
// not track.
func Parse(r io.Reader) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	if len(gq.Nodes) == 0 {
		return nil, errors.New("domtree: empty document")
	}
	root := gq.Nodes[0]
	d := &Document{index: make(map[*html.Node]int)}
	d.walk(root)
	return d, nil
}

// ParseString parses an HTML fragment held as a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func (d *Document) walk(n *html.Node) {
	idx := len(d.nodes)
	d.nodes = append(d.nodes, n)
	d.index[n] = idx
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.walk(c)
	}
}

// Len returns the number of nodes in document order.
func (d *Document) Len() int { return len(d.nodes) }

// At returns the node at the given stable index.
func (d *Document) At(idx int) Node { return Node{doc: d, n: d.nodes[idx]} }

func (d *Document) indexOf(n *html.Node) int {
	idx, ok := d.index[n]
	if !ok {
		return -1
	}
	return idx
}

// Root returns the document's root node.
func (d *Document) Root() Node { return d.At(0) }

// FindAll returns every node in document order for which pred returns true.
func (d *Document) FindAll(pred func(Node) bool) []Node {
	var out []Node
	for _, n := range d.nodes {
		cand := Node{doc: d, n: n}
		if pred(cand) {
			out = append(out, cand)
		}
	}
	return out
}

// Find returns the first node in document order matching pred.
func (d *Document) Find(pred func(Node) bool) (Node, bool) {
	for _, n := range d.nodes {
		cand := Node{doc: d, n: n}
		if pred(cand) {
			return cand, true
		}
	}
	return Node{}, false
}

// Node is a lightweight reference into a Document.
type Node struct {
	doc *Document
	n   *html.Node
}

// Valid reports whether the node refers to an actual document node.
func (nd Node) Valid() bool { return nd.n != nil }

// Index returns the node's stable document-order index.
func (nd Node) Index() int { return nd.doc.indexOf(nd.n) }

// Name returns the element tag name, or "" for non-element nodes.
func (nd Node) Name() string {
	if nd.n.Type == html.ElementNode {
		return nd.n.Data
	}
	return ""
}

// Attr returns the named attribute's value, if present.
func (nd Node) Attr(key string) (string, bool) {
	for _, a := range nd.n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the node's class attribute contains the exact
// class token (space-separated membership, not substring containment).
func (nd Node) HasClass(class string) bool {
	v, ok := nd.Attr("class")
	if !ok {
		return false
	}
	for _, tok := range strings.Fields(v) {
		if tok == class {
			return true
		}
	}
	return false
}

// Text returns the concatenation of every text node in the subtree rooted
// at nd, in document order.
func (nd Node) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(nd.n)
	return b.String()
}

// Children returns nd's immediate children, in document order.
func (nd Node) Children() []Node {
	var out []Node
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, Node{doc: nd.doc, n: c})
	}
	return out
}

// Descendants returns every node strictly below nd, in document order.
func (nd Node) Descendants() []Node {
	var out []Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, Node{doc: nd.doc, n: c})
			walk(c)
		}
	}
	walk(nd.n)
	return out
}

// Parent returns nd's parent node, if any.
func (nd Node) Parent() (Node, bool) {
	if nd.n.Parent == nil {
		return Node{}, false
	}
	return Node{doc: nd.doc, n: nd.n.Parent}, true
}

// Next returns nd's next sibling node (of any node type), if any.
func (nd Node) Next() (Node, bool) {
	if nd.n.NextSibling == nil {
		return Node{}, false
	}
	return Node{doc: nd.doc, n: nd.n.NextSibling}, true
}

// FindAll returns every node strictly below nd matching pred, in document
// order. nd itself is never included.
func (nd Node) FindAll(pred func(Node) bool) []Node {
	var out []Node
	for _, d := range nd.Descendants() {
		if pred(d) {
			out = append(out, d)
		}
	}
	return out
}
