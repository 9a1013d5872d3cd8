package htmlextract

import "github.com/tguidoux/htmlextract/internal/domtree"

// HtmlExtractor is the library's entry point: a configuration bound to
// the extraction methods. It carries no mutable state and is safe to
// reuse, and to call concurrently, across many documents.
type HtmlExtractor struct {
	configuration Configuration
}

// NewHtmlExtractor returns an HtmlExtractor with every extraction stage
// enabled.
func NewHtmlExtractor() *HtmlExtractor {
	return &HtmlExtractor{configuration: NewConfiguration()}
}

// NewHtmlExtractorWithConfiguration returns an HtmlExtractor bound to a
// caller-supplied Configuration, to selectively disable expensive stages.
func NewHtmlExtractorWithConfiguration(configuration Configuration) *HtmlExtractor {
	return &HtmlExtractor{configuration: configuration}
}

// FromString extracts an Article from an HTML document held as a string.
// It returns nil if rawHTML is empty or fails to parse, never an error —
// per §5.3, extraction has exactly one observable failure mode.
func (e *HtmlExtractor) FromString(rawHTML string) *Article {
	return e.FromBytes([]byte(rawHTML))
}

// FromBytes extracts an Article from raw HTML bytes, detecting and
// decoding the page's charset first when necessary. It returns nil if
// rawHTML is empty or fails to parse.
func (e *HtmlExtractor) FromBytes(rawHTML []byte) *Article {
	decoded, ok := preprocess(rawHTML)
	if !ok {
		return nil
	}

	doc, err := domtree.ParseString(decoded)
	if err != nil {
		return nil
	}

	article := &Article{}
	article.Language = extractLanguage(doc)

	if e.configuration.EnableMetaExtraction {
		article.Favico = extractFavico(doc)
		article.CanonicalLink = extractCanonicalLink(doc)
		article.MetaKeywords = extractMetaKeywords(doc)
		article.TopImage = extractTopImage(doc)
	}

	if e.configuration.EnableTextExtraction {
		article.Title = extractTitle(doc)
		if top, found := topNode(doc, article.Language); found {
			text, links := clean(top)
			article.Text = text
			article.Links = links
		}
	}

	if e.configuration.EnableEmbeddingsExtraction {
		article.Embeddings = Embeddings{
			Tweets:         extractTweets(doc),
			InstagramPosts: extractInstagram(doc),
		}
	}

	return article
}
