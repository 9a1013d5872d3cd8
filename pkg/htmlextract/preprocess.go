package htmlextract

import (
	"strings"
	"unicode/utf8"

	"github.com/tguidoux/htmlextract/internal/charset"
	"github.com/tguidoux/htmlextract/internal/domtree"
	"github.com/tguidoux/htmlextract/internal/logging"
)

// addSpacesBetweenTags implements §4.2: a handful of literal string
// substitutions that keep the top-node scorer and cleaner from treating
// adjacent inline elements as a single run of text. Order matters: each
// replacement runs over the output of the previous one.
func addSpacesBetweenTags(text string) string {
	text = strings.ReplaceAll(text, "<img ", "\n<img ")
	text = strings.ReplaceAll(text, "</blockquote>", "</blockquote>\n")
	text = strings.ReplaceAll(text, "</li>", "</li>\n")
	text = strings.ReplaceAll(text, "</p>", "</p>\n")
	text = strings.ReplaceAll(text, "><", "> <")
	return text
}

// contentTypeCharset extracts a normalised charset label from
// <meta http-equiv="Content-Type" content="...; charset=...">.
func contentTypeCharset(doc *domtree.Document) string {
	n, ok := doc.Find(func(n domtree.Node) bool {
		if n.Name() != "meta" {
			return false
		}
		v, exists := n.Attr("http-equiv")
		return exists && strings.EqualFold(v, "Content-Type")
	})
	if !ok {
		return ""
	}
	content, _ := n.Attr("content")
	lower := strings.ToLower(content)
	idx := strings.Index(lower, "charset=")
	if idx < 0 {
		return ""
	}
	return charset.Normalize(lower[idx+len("charset="):])
}

// metaCharset extracts a normalised charset label from <meta charset="...">.
func metaCharset(doc *domtree.Document) string {
	n, ok := doc.Find(func(n domtree.Node) bool {
		if n.Name() != "meta" {
			return false
		}
		_, exists := n.Attr("charset")
		return exists
	})
	if !ok {
		return ""
	}
	v, _ := n.Attr("charset")
	return charset.Normalize(v)
}

// declaredCharset returns the page's self-declared charset label, if any,
// preferring the Content-Type meta tag over a bare charset meta tag, as
// the reference implementation does.
func declaredCharset(doc *domtree.Document) string {
	if cs := contentTypeCharset(doc); cs != "" {
		return cs
	}
	return metaCharset(doc)
}

// preprocess turns raw HTML bytes into a UTF-8 string ready for parsing,
// applying the tag-spacing substitutions of §4.2 and, only when the bytes
// are not already valid UTF-8, decoding them. Per §4.2's bytes path, a
// successful UTF-8 parse always wins outright; charset detection and
// decoding is a fallback attempted solely on UTF-8 parse failure, first
// trusting the page's own declaration and then falling back to
// byte-level sniffing for pages that declare nothing — an
// upgrade over the reference implementation's meta-tag-only approach,
// but never overriding bytes that already decode as valid UTF-8.
func preprocess(raw []byte) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	spaced := addSpacesBetweenTags(string(raw))

	if utf8.Valid(raw) {
		return spaced, true
	}

	doc, err := domtree.ParseString(spaced)
	if err != nil {
		return "", false
	}

	label := declaredCharset(doc)
	if label == "" {
		label = charset.Detect(raw)
	}
	if label == "" {
		logging.Logger.Debug().Msg("preprocess: no charset could be determined for non-UTF-8 input")
		return spaced, true
	}

	decoded, ok := charset.Decode(raw, charset.Normalize(label))
	if !ok {
		logging.Logger.Debug().Str("label", label).Msg("preprocess: unrecognised charset label, falling back to raw bytes")
		return spaced, true
	}
	return addSpacesBetweenTags(decoded), true
}
