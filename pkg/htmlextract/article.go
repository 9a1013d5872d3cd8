// Package htmlextract extracts the primary editorial content of a
// news-style HTML page — title, language, canonical link, favicon,
// representative image, meta-keywords, cleaned body text, outbound
// links, and social embeddings — without any site-specific rules.
//
// The hard, educative subsystem is the content scoring and cleaning
// engine (see scorer.go and cleaner.go): a language-aware heuristic that
// identifies the single DOM subtree most likely to contain the article
// body, then prunes that subtree into clean prose and outbound links.
package htmlextract

// Embedding is a third-party social-media blockquote surfaced as a
// {url, text} pair.
type Embedding struct {
	URL  string
	Text string
}

// Embeddings groups the two kinds of social embeddings this library
// recognises.
type Embeddings struct {
	Tweets         []Embedding
	InstagramPosts []Embedding
}

// Article is the output entity. Every field defaults to its empty value;
// an absent signal never produces an error, only an empty field.
type Article struct {
	Title         string
	Language      string
	Favico        string
	CanonicalLink string
	MetaKeywords  string
	TopImage      string
	Text          string
	Links         []string
	Embeddings    Embeddings
}
