package htmlextract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tguidoux/htmlextract/internal/domtree"
)

func TestExtractTweets(t *testing.T) {
	html := `<blockquote class="twitter-tweet">` +
		`<p>One thing for sure the  #referendum  results are  close</p>` +
		`&mdash; Lindsay Lohan` +
		`<a href="https://twitter.com/lindsaylohan/status/746167573453094912">June 24, 2016</a>` +
		`</blockquote>`

	doc, err := domtree.ParseString(html)
	assert.NoError(t, err)

	tweets := extractTweets(doc)
	assert.Len(t, tweets, 1)
	assert.Equal(t, "https://twitter.com/lindsaylohan/status/746167573453094912", tweets[0].URL)
	assert.Equal(t, "One thing for sure the #referendum results are close", tweets[0].Text)
}

func TestExtractTweetsIgnoresOtherBlockquotes(t *testing.T) {
	doc, err := domtree.ParseString(`<blockquote>not a tweet</blockquote>`)
	assert.NoError(t, err)
	assert.Empty(t, extractTweets(doc))
}

func TestExtractInstagram(t *testing.T) {
	html := `<blockquote class="instagram-media">` +
		`<p>Caption text  <a href="https://www.instagram.com/p/BHA-BtNh3h1/">here</a></p>` +
		`</blockquote>`

	doc, err := domtree.ParseString(html)
	assert.NoError(t, err)

	posts := extractInstagram(doc)
	assert.Len(t, posts, 1)
	assert.Equal(t, "https://www.instagram.com/p/BHA-BtNh3h1/", posts[0].URL)
	assert.Equal(t, "here", posts[0].Text)
}

func TestSanitizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b", sanitize("  a    b  "))
	assert.Equal(t, "a b c", sanitize("a b   c"))
}
