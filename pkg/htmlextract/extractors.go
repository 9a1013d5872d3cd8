package htmlextract

import (
	"strings"

	"github.com/tguidoux/htmlextract/internal/domtree"
)

// fieldExtractor is the polymorphic strategy of §4.3: a single capability,
// extract(document) → optional string, implemented by a small family of
// variants composed through the or-combinator below rather than an
// inheritance hierarchy.
type fieldExtractor interface {
	extract(doc *domtree.Document) (string, bool)
}

// tagText returns the subtree text of the first node with the given tag.
type tagText struct{ tag string }

func (e tagText) extract(doc *domtree.Document) (string, bool) {
	n, ok := doc.Find(isTag(e.tag))
	if !ok {
		return "", false
	}
	return n.Text(), true
}

// dualTagText returns the subtree text of the first node matching either
// of two tag names.
type dualTagText struct{ tag1, tag2 string }

func (e dualTagText) extract(doc *domtree.Document) (string, bool) {
	n, ok := doc.Find(func(n domtree.Node) bool {
		name := n.Name()
		return name == e.tag1 || name == e.tag2
	})
	if !ok {
		return "", false
	}
	return n.Text(), true
}

// metaContent returns the content attribute of the first <meta> node
// whose attr attribute equals value.
type metaContent struct{ attr, value string }

func (e metaContent) extract(doc *domtree.Document) (string, bool) {
	n, ok := doc.Find(func(n domtree.Node) bool {
		if n.Name() != "meta" {
			return false
		}
		v, exists := n.Attr(e.attr)
		return exists && v == e.value
	})
	if !ok {
		return "", false
	}
	return n.Attr("content")
}

// tagAttribute returns the value of attr on the first node with the
// given tag.
type tagAttribute struct{ tag, attr string }

func (e tagAttribute) extract(doc *domtree.Document) (string, bool) {
	n, ok := doc.Find(isTag(e.tag))
	if !ok {
		return "", false
	}
	return n.Attr(e.attr)
}

// linkRelEqual returns the href of the first <link> node whose attr
// attribute equals value exactly.
type linkRelEqual struct{ attr, value string }

func (e linkRelEqual) extract(doc *domtree.Document) (string, bool) {
	n, ok := doc.Find(func(n domtree.Node) bool {
		if n.Name() != "link" {
			return false
		}
		v, exists := n.Attr(e.attr)
		return exists && v == e.value
	})
	if !ok {
		return "", false
	}
	return n.Attr("href")
}

// linkRelContains returns the href of the first <link> node whose attr
// attribute contains value as a substring.
type linkRelContains struct{ attr, value string }

func (e linkRelContains) extract(doc *domtree.Document) (string, bool) {
	n, ok := doc.Find(func(n domtree.Node) bool {
		if n.Name() != "link" {
			return false
		}
		v, exists := n.Attr(e.attr)
		return exists && strings.Contains(v, e.value)
	})
	if !ok {
		return "", false
	}
	return n.Attr("href")
}

// or composes extractors, returning the first non-empty result.
type or []fieldExtractor

func (o or) extract(doc *domtree.Document) (string, bool) {
	for _, e := range o {
		if s, ok := e.extract(doc); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func isTag(tag string) func(domtree.Node) bool {
	return func(n domtree.Node) bool { return n.Name() == tag }
}

// Field extractor chains (§4.3).

var titleExtractor = or{
	tagText{"title"},
	metaContent{"property", "og:title"},
	dualTagText{"post-title", "headline"},
}

var languageExtractor = or{
	tagAttribute{"html", "lang"},
	metaContent{"http-equiv", "content-language"},
}

// faviconExtractor uses the leading-space " icon" substring match
// deliberately, so that rel="shortcut icon" and rel="... icon ..."
// match while rel="iconic" does not.
var faviconExtractor = linkRelContains{"rel", " icon"}

var canonicalLinkExtractor = linkRelEqual{"rel", "canonical"}

var metaKeywordsExtractor = metaContent{"name", "keywords"}

func extractTitle(doc *domtree.Document) string {
	s, _ := titleExtractor.extract(doc)
	return s
}

func extractLanguage(doc *domtree.Document) string {
	s, _ := languageExtractor.extract(doc)
	if idx := strings.Index(s, "-"); idx >= 0 {
		return s[:idx]
	}
	return s
}

func extractFavico(doc *domtree.Document) string {
	s, _ := faviconExtractor.extract(doc)
	return s
}

func extractCanonicalLink(doc *domtree.Document) string {
	s, _ := canonicalLinkExtractor.extract(doc)
	return s
}

func extractMetaKeywords(doc *domtree.Document) string {
	s, _ := metaKeywordsExtractor.extract(doc)
	return s
}
