package domtree

import "testing"

func TestParseStringAndFind(t *testing.T) {
	doc, err := ParseString(`<html><body><div><p>hello</p></div></body></html>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	p, ok := doc.Find(func(n Node) bool { return n.Name() == "p" })
	if !ok {
		t.Fatalf("expected to find <p>")
	}
	if got := p.Text(); got != "hello" {
		t.Fatalf("p.Text() = %q, want %q", got, "hello")
	}
}

func TestNodeParentAndIndexOrdering(t *testing.T) {
	doc, err := ParseString(`<div id="outer"><span id="inner">x</span></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}

	span, ok := doc.Find(func(n Node) bool { return n.Name() == "span" })
	if !ok {
		t.Fatalf("expected to find <span>")
	}
	parent, ok := span.Parent()
	if !ok || parent.Name() != "div" {
		t.Fatalf("span.Parent() = %+v, ok=%v, want a div", parent, ok)
	}
	if span.Index() <= parent.Index() {
		t.Fatalf("child index %d should be greater than parent index %d", span.Index(), parent.Index())
	}
}

func TestHasClass(t *testing.T) {
	doc, err := ParseString(`<div class="foo bar"></div>`)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	div, ok := doc.Find(func(n Node) bool { return n.Name() == "div" })
	if !ok {
		t.Fatalf("expected to find <div>")
	}
	if !div.HasClass("foo") || !div.HasClass("bar") {
		t.Fatalf("expected div to have classes foo and bar")
	}
	if div.HasClass("foobar") {
		t.Fatalf("HasClass should not match substrings")
	}
}
