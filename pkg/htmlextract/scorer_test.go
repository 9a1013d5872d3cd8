package htmlextract

import (
	"testing"

	"github.com/tguidoux/htmlextract/internal/domtree"
)

func TestTopNodeSimple(t *testing.T) {
	doc, err := domtree.ParseString(`<html><body><div><p>This is a paragraph</p><h1></h1><br/><pre>Paris</pre></div><span></span></html>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	node, found := topNode(doc, "en")
	if !found {
		t.Fatalf("expected a top node to be found")
	}
	if got := node.Name(); got != "div" {
		t.Fatalf("topNode name = %q, want %q", got, "div")
	}
}

func TestTopNodeNoCandidates(t *testing.T) {
	doc, err := domtree.ParseString(`<html><body><span>no paragraphs here</span></body></html>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if _, found := topNode(doc, "en"); found {
		t.Fatalf("expected no top node when there are no <p|pre|td> candidates")
	}
}

func TestIsBoostable(t *testing.T) {
	doc, err := domtree.ParseString(`<div><p>short</p><p>I live in London and it is where I work</p></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	first, ok := doc.Find(func(n domtree.Node) bool { return n.Name() == "p" })
	if !ok {
		t.Fatalf("expected to find first <p>")
	}
	if !isBoostable(first, "en") {
		t.Fatalf("expected first <p> to be boostable via its stopword-rich sibling")
	}
}

func TestIsBoostableGivesUpAfterThreeSiblings(t *testing.T) {
	doc, err := domtree.ParseString(`<div><p>start</p><span>a</span><span>b</span><span>c</span><p>I live in London and it is where I work</p></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	first, ok := doc.Find(func(n domtree.Node) bool { return n.Name() == "p" })
	if !ok {
		t.Fatalf("expected to find first <p>")
	}
	if isBoostable(first, "en") {
		t.Fatalf("expected boostable search to give up beyond 3 siblings")
	}
}

func TestIsHighDensityLinkEmptyTextIsDense(t *testing.T) {
	doc, err := domtree.ParseString(`<div></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	div, _ := doc.Find(func(n domtree.Node) bool { return n.Name() == "div" })
	if !isHighDensityLink(div, 0) {
		t.Fatalf("a subtree with zero words should be treated as high density link")
	}
}

func TestIsHighDensityLinkProseIsNotDense(t *testing.T) {
	doc, err := domtree.ParseString(`<p>A short plain sentence with no links at all in it</p>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	p, _ := doc.Find(func(n domtree.Node) bool { return n.Name() == "p" })
	if isHighDensityLink(p, 11) {
		t.Fatalf("plain prose without anchors should not be high density link")
	}
}
