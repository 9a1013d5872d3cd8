package htmlextract

import (
	"regexp"
	"strings"

	"github.com/tguidoux/htmlextract/internal/domtree"
)

var spacesRe = regexp.MustCompile(`\s\s+`)

// sanitize trims a node's text and collapses any run of two or more
// whitespace characters down to a single space, matching the reference
// implementation's SPACES_REGEX cleanup applied to embedding captions.
func sanitize(text string) string {
	return spacesRe.ReplaceAllString(strings.TrimSpace(text), " ")
}

// firstChildOf returns, in document order, the first descendant of root
// whose tag is childTag and whose immediate parent's tag is parentTag.
func firstChildOf(root domtree.Node, parentTag, childTag string) (domtree.Node, bool) {
	for _, n := range root.Descendants() {
		if n.Name() != childTag {
			continue
		}
		parent, ok := n.Parent()
		if ok && parent.Name() == parentTag {
			return n, true
		}
	}
	return domtree.Node{}, false
}

// extractTweets implements §4.6: every <blockquote class="twitter-tweet">
// yields one Embedding whose text comes from its first <p> descendant and
// whose URL comes from the href of the <a> that is a direct child of the
// blockquote itself.
func extractTweets(doc *domtree.Document) []Embedding {
	var out []Embedding
	for _, tag := range doc.FindAll(func(n domtree.Node) bool {
		return n.Name() == "blockquote" && n.HasClass("twitter-tweet")
	}) {
		var text, url string
		if ps := tag.FindAll(isTag("p")); len(ps) > 0 {
			text = sanitize(ps[0].Text())
		}
		if a, ok := firstChildOf(tag, "blockquote", "a"); ok {
			url, _ = a.Attr("href")
		}
		out = append(out, Embedding{URL: url, Text: text})
	}
	return out
}

// extractInstagram implements §4.6's Instagram variant: every
// <blockquote class="instagram-media"> yields one Embedding from the
// first <a> that is a direct child of a <p>, taking both its href and
// its own sanitized text (rather than a separate caption node).
func extractInstagram(doc *domtree.Document) []Embedding {
	var out []Embedding
	for _, tag := range doc.FindAll(func(n domtree.Node) bool {
		return n.Name() == "blockquote" && n.HasClass("instagram-media")
	}) {
		if a, ok := firstChildOf(tag, "p", "a"); ok {
			href, _ := a.Attr("href")
			out = append(out, Embedding{URL: href, Text: sanitize(a.Text())})
		}
	}
	return out
}
