package htmlextract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tguidoux/htmlextract/internal/domtree"
)

func TestExtractTopImagePrefersMostFrequentURL(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head>
		<meta property="og:image" content="https://example.com/a.jpg">
		<meta name="twitter:image" content="https://example.com/b.jpg">
		<meta name="twitter:image:src" content="https://example.com/a.jpg">
	</head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/a.jpg", extractTopImage(doc))
}

func TestExtractTopImageTieBreaksOnFirstInserted(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head>
		<link rel="image_src" href="https://example.com/first.jpg">
		<meta property="og:image" content="https://example.com/second.jpg">
	</head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/first.jpg", extractTopImage(doc))
}

func TestExtractTopImageSkipsEmptyURLs(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head>
		<meta property="og:image" content="">
		<meta name="twitter:image" content="https://example.com/only.jpg">
	</head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/only.jpg", extractTopImage(doc))
}

func TestExtractTopImageNoneFound(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "", extractTopImage(doc))
}
