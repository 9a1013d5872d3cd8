package htmlextract

import (
	"github.com/tguidoux/htmlextract/internal/domtree"
	"github.com/tguidoux/htmlextract/internal/wordcount"
)

// clean implements §4.5: it prunes topNode's subtree down to the indexes
// that survive get_removed_nodes, then concatenates the remaining leaf
// text and collects every href reachable from a kept node, in document
// order, duplicates included.
func clean(topNode domtree.Node) (string, []string) {
	excluded := removedNodes(topNode)

	var text string
	var links []string

	for _, descendant := range topNode.Descendants() {
		if excluded[descendant.Index()] {
			continue
		}

		if len(descendant.Children()) == 0 {
			text += descendant.Text()
			if descendant.Name() == "p" {
				text += "\n"
			}
		}

		for _, l := range descendant.FindAll(isTag("a")) {
			if href, ok := l.Attr("href"); ok {
				links = append(links, href)
			}
		}
	}

	return text, links
}

// removedNodes implements get_removed_nodes: it walks topNode's immediate
// non-<p> children and decides, per child, whether the whole subtree is
// junk (low link density), a non-<td> wrapper with no <p> descendants
// (dropped wholesale), or a paragraph container whose sub-paragraphs are too short
// to keep (<25 runes).
func removedNodes(topNode domtree.Node) map[int]bool {
	removed := make(map[int]bool)

	for _, child := range topNode.Children() {
		if child.Name() == "p" {
			continue
		}

		childText := child.Text()
		if !isHighDensityLink(child, wordcount.Count(childText)) {
			markRemoved(removed, child)
			continue
		}

		subParagraphs := child.FindAll(isTag("p"))
		if child.Name() != "td" && len(subParagraphs) == 0 {
			markRemoved(removed, child)
			continue
		}
		for _, sub := range subParagraphs {
			if len([]rune(sub.Text())) < 25 {
				markRemoved(removed, child)
			}
		}
	}

	return removed
}

func markRemoved(removed map[int]bool, child domtree.Node) {
	removed[child.Index()] = true
	for _, d := range child.Descendants() {
		removed[d.Index()] = true
	}
}
