package htmlextract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleArticleHTML = `<!DOCTYPE html>
<html lang="en-US">
<head>
	<title>Scientists Announce Major Discovery - Example News</title>
	<meta property="og:title" content="Scientists Announce Major Discovery">
	<meta name="keywords" content="science, discovery, research">
	<link rel="canonical" href="https://example.com/news/discovery">
	<link rel="shortcut icon" href="https://example.com/favicon.ico">
	<meta property="og:image" content="https://example.com/images/discovery.jpg">
</head>
<body>
	<nav><a href="/world">World</a><a href="/science">Science</a><a href="/sports">Sports</a></nav>
	<div>
		<p>Scientists at a major research institute announced today that they have made a breakthrough discovery in renewable energy storage.</p>
		<p>The discovery, which researchers say could change how the world stores solar power, was presented at a conference this morning in front of hundreds of attendees.</p>
		<blockquote class="twitter-tweet"><p>This is huge news for renewable energy researchers everywhere today</p><a href="https://twitter.com/someuser/status/123456789">June 1, 2026</a></blockquote>
	</div>
</body>
</html>`

func TestFromStringExtractsFullArticle(t *testing.T) {
	extractor := NewHtmlExtractor()
	article := extractor.FromString(sampleArticleHTML)

	if article == nil {
		t.Fatalf("expected a non-nil article")
	}

	assert.Equal(t, "Scientists Announce Major Discovery - Example News", article.Title)
	assert.Equal(t, "en", article.Language)
	assert.Equal(t, "https://example.com/news/discovery", article.CanonicalLink)
	assert.Equal(t, "https://example.com/favicon.ico", article.Favico)
	assert.Equal(t, "science, discovery, research", article.MetaKeywords)
	assert.Equal(t, "https://example.com/images/discovery.jpg", article.TopImage)
	assert.True(t, strings.Contains(article.Text, "breakthrough discovery"))
	assert.Len(t, article.Embeddings.Tweets, 1)
	assert.Equal(t, "https://twitter.com/someuser/status/123456789", article.Embeddings.Tweets[0].URL)
}

func TestFromStringEmptyInputReturnsNil(t *testing.T) {
	extractor := NewHtmlExtractor()
	assert.Nil(t, extractor.FromString(""))
}

func TestFromStringRespectsConfiguration(t *testing.T) {
	config := NewConfiguration()
	config.EnableMetaExtraction = false
	config.EnableEmbeddingsExtraction = false

	extractor := NewHtmlExtractorWithConfiguration(config)
	article := extractor.FromString(sampleArticleHTML)

	if article == nil {
		t.Fatalf("expected a non-nil article")
	}
	// Title belongs to text extraction (spec §4.7 step 3), not meta
	// extraction, so it survives EnableMetaExtraction=false.
	assert.Equal(t, "Scientists Announce Major Discovery - Example News", article.Title)
	assert.Equal(t, "", article.TopImage)
	assert.Empty(t, article.Embeddings.Tweets)
	assert.True(t, strings.Contains(article.Text, "breakthrough discovery"))
}

func TestFromStringTextExtractionDisabledClearsTitleTextAndLinks(t *testing.T) {
	config := NewConfiguration()
	config.EnableTextExtraction = false

	extractor := NewHtmlExtractorWithConfiguration(config)
	article := extractor.FromString(sampleArticleHTML)

	if article == nil {
		t.Fatalf("expected a non-nil article")
	}
	assert.Equal(t, "", article.Title)
	assert.Equal(t, "", article.Text)
	assert.Empty(t, article.Links)
	// Meta extraction is unaffected by EnableTextExtraction.
	assert.Equal(t, "https://example.com/news/discovery", article.CanonicalLink)
}
