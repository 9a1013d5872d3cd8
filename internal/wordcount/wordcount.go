// Package wordcount implements the generic "unicode word" splitting the
// content scorer and stopword service are specified against. It is a
// plain letter/number run tokenizer, not a linguistic tokenizer: nothing
// in the example corpus performs this kind of generic Latin/Cyrillic
// word-boundary splitting (go-ego/gse targets Chinese segmentation,
// sugarme/tokenizer performs sub-word ML tokenization), so it is built
// on the standard library's regexp and unicode packages.
package wordcount

import "regexp"

var wordRe = regexp.MustCompile(`[\p{L}\p{N}](?:[\p{L}\p{N}'’-]*[\p{L}\p{N}])?`)

// Split returns every unicode word in text, in order.
func Split(text string) []string {
	return wordRe.FindAllString(text, -1)
}

// Count returns the number of unicode words in text.
func Count(text string) int {
	return len(wordRe.FindAllStringIndex(text, -1))
}
