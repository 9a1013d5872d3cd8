package htmlextract

import (
	"github.com/tguidoux/htmlextract/internal/domtree"
	"github.com/tguidoux/htmlextract/internal/stopwords"
	"github.com/tguidoux/htmlextract/internal/wordcount"
)

// orderedIntMap is an insertion-ordered int -> int map. The content
// scorer relies on its iteration order matching insertion order to get
// the specified tie-breaking behaviour (§4.4, §9's "Ordered maps"
// design note): a plain Go map has unspecified iteration order and
// would silently change the result.
type orderedIntMap struct {
	keys []int
	vals map[int]int
}

func newOrderedIntMap() *orderedIntMap {
	return &orderedIntMap{vals: make(map[int]int)}
}

func (o *orderedIntMap) set(k, v int) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *orderedIntMap) add(k, v int) {
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] += v
}

func (o *orderedIntMap) len() int { return len(o.keys) }

// topNode implements §4.4: it finds the single DOM node whose subtree
// best contains the article body by propagating stopword-weighted
// scores up from every <p|pre|td> candidate to its parent and
// grandparent, in document order.
//
// The algorithm, including the boost/booster arithmetic and the fact
// that the "boostable" check inside the inner accumulation loop tests
// the outer candidate rather than the node the accumulated score came
// from, is ported from the calou/prouste reference implementation this
// specification was distilled from (src/extractor/content.rs::
// get_top_node) — an open question the specification explicitly asks
// implementations to preserve rather than "fix".
func topNode(doc *domtree.Document, lang string) (domtree.Node, bool) {
	candidates := doc.FindAll(func(n domtree.Node) bool {
		name := n.Name()
		return name == "p" || name == "pre" || name == "td"
	})

	textful := newOrderedIntMap()
	score := newOrderedIntMap()
	i := 0
	var topIdx int
	topScore := 0
	found := false

	for _, node := range candidates {
		text := node.Text()
		w := wordcount.Count(text)

		if stopwords.HasMoreThan(text, lang, 2) && !isHighDensityLink(node, w) {
			textful.set(node.Index(), stopwords.Count(text, lang))
		}

		nwt := textful.len()
		bottomNegative := nwt / 4

		for _, idx := range textful.keys {
			sw := textful.vals[idx]

			boost := 0.0
			if isBoostable(node, lang) {
				boost = 50.0
			}
			if nwt > 15 {
				booster := bottomNegative + i - nwt
				if booster >= 0 {
					x := booster * booster
					if x > 40 {
						boost = 5.0
					} else {
						boost = -float64(x)
					}
				}
			}

			// The accumulator is conceptually unsigned, as in the
			// reference implementation's usize score; a negative
			// boost saturates to zero rather than going negative.
			boostInt := 0
			if boost > 0 {
				boostInt = int(boost)
			}
			up := sw + boostInt

			candidateNode := doc.At(idx)
			parent, hasParent := candidateNode.Parent()
			if hasParent {
				score.add(parent.Index(), up)
				if grandparent, hasGrandparent := parent.Parent(); hasGrandparent {
					score.add(grandparent.Index(), up/2)
				}
			}
			i++
		}

		for _, idx := range score.keys {
			if s := score.vals[idx]; s > topScore {
				topIdx, topScore, found = idx, s, true
			}
		}
	}

	if !found {
		return domtree.Node{}, false
	}
	return doc.At(topIdx), true
}

// isBoostable implements §4.4.1: walk up to three next-siblings looking
// for a <p> sibling carrying at least five stopwords of lang.
func isBoostable(node domtree.Node, lang string) bool {
	d := 0
	sibling, ok := node.Next()
	for ok {
		if sibling.Name() == "p" {
			if stopwords.HasMoreThan(sibling.Text(), lang, 5) {
				return true
			}
		}
		sibling, ok = sibling.Next()
		d++
		if d >= 3 {
			return false
		}
	}
	return false
}

// isHighDensityLink implements §4.4.2/§4.5: a subtree is link-dense when
// its anchor text, weighted by anchor count, exceeds its own word
// budget. A subtree with no words at all is treated as link-dense too.
func isHighDensityLink(node domtree.Node, wordCount int) bool {
	if wordCount == 0 {
		return true
	}
	var linkWords, linkCount int
	for _, a := range node.FindAll(isTag("a")) {
		linkWords += wordcount.Count(a.Text())
		linkCount++
	}
	return linkCount*linkWords > wordCount
}
