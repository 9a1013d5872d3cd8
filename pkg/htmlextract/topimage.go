package htmlextract

import "github.com/tguidoux/htmlextract/internal/domtree"

// orderedCounter counts string keys while remembering insertion order, so
// that ties between candidates resolve to whichever was inserted first
// (§4.3.1's TopImage determinism invariant).
type orderedCounter struct {
	keys   []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (o *orderedCounter) increment(key string) {
	if _, ok := o.counts[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.counts[key]++
}

// best returns the key with the highest count, first-inserted winning
// ties (strict greater-than comparison).
func (o *orderedCounter) best() (string, bool) {
	best := ""
	bestCount := 0
	found := false
	for _, k := range o.keys {
		if c := o.counts[k]; c > bestCount {
			best, bestCount, found = k, c, true
		}
	}
	return best, found
}

func isTopImageCandidate(n domtree.Node) bool {
	switch n.Name() {
	case "link":
		v, ok := n.Attr("rel")
		return ok && v == "image_src"
	case "meta":
		if v, ok := n.Attr("property"); ok && v == "og:image" {
			return true
		}
		if v, ok := n.Attr("name"); ok && (v == "twitter:image" || v == "twitter:image:src") {
			return true
		}
	}
	return false
}

func extractTopImage(doc *domtree.Document) string {
	counter := newOrderedCounter()
	for _, n := range doc.FindAll(isTopImageCandidate) {
		var url string
		if n.Name() == "link" {
			url, _ = n.Attr("href")
		} else {
			url, _ = n.Attr("content")
		}
		if url == "" {
			continue
		}
		counter.increment(url)
	}
	best, _ := counter.best()
	return best
}
