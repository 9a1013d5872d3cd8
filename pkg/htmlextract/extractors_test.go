package htmlextract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tguidoux/htmlextract/internal/domtree"
)

func TestExtractTitle(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><title>New Jersey Devils Owner Apologizes - ABC News</title></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "New Jersey Devils Owner Apologizes - ABC News", extractTitle(doc))
}

func TestExtractTitleFallsBackToOgTitle(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><meta property="og:title" content="Fallback Title"></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "Fallback Title", extractTitle(doc))
}

func TestExtractLanguageTruncatesAtDash(t *testing.T) {
	doc, err := domtree.ParseString(`<html lang="en-US"><body></body></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "en", extractLanguage(doc))
}

func TestExtractLanguageFromContentLanguageMeta(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><meta http-equiv="content-language" content="vi"></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "vi", extractLanguage(doc))
}

func TestExtractFavicon(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><link rel="shortcut icon" href="http://assets.example.com/favicon.ico"></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "http://assets.example.com/favicon.ico", extractFavico(doc))
}

func TestExtractFaviconDoesNotMatchIconicRel(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><link rel="iconic" href="http://example.com/nope.ico"></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "", extractFavico(doc))
}

func TestExtractCanonicalLink(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><link rel="canonical" href="http://example.com/story"></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "http://example.com/story", extractCanonicalLink(doc))
}

func TestExtractMetaKeywords(t *testing.T) {
	doc, err := domtree.ParseString(`<html><head><meta name="keywords" content="news, politics"></head></html>`)
	assert.NoError(t, err)
	assert.Equal(t, "news, politics", extractMetaKeywords(doc))
}
