// Package dictionary holds a sorted set of normalised street keys and answers
// prefix questions about it: which known street does an input start with?
package dictionary

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Matching classifies how a word relates to the dictionary.
type Matching int

const (
	// None means no dictionary word starts with the word.
	None Matching = iota
	// Prefix means the word is a proper prefix of a dictionary word.
	Prefix
	// Exact means the word itself is in the dictionary.
	Exact
	// Empty is reported for the empty word, which is trivially a prefix of everything.
	Empty
)

func (m Matching) String() string {
	switch m {
	case Prefix:
		return "PREFIX"
	case Exact:
		return "EXACT"
	case Empty:
		return "EMPTY"
	default:
		return "NONE"
	}
}

// Dictionary is a sorted set of words. It is safe for concurrent use.
type Dictionary struct {
	mu   sync.RWMutex
	tree *redblacktree.Tree
	gen  uint64
}

// New creates a dictionary holding words.
func New(words ...string) *Dictionary {
	d := &Dictionary{tree: redblacktree.NewWithStringComparator()}
	d.AddAll(words...)
	return d
}

// Add inserts word. Empty words are ignored.
func (d *Dictionary) Add(word string) {
	d.AddAll(word)
}

// AddAll inserts every word, skipping empties and duplicates.
func (d *Dictionary) AddAll(words ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	size := d.tree.Size()
	for _, w := range words {
		if w != "" {
			d.tree.Put(w, struct{}{})
		}
	}
	if d.tree.Size() != size {
		d.gen++
	}
}

// Replace swaps the whole word set at once.
func (d *Dictionary) Replace(words []string) {
	fresh := New(words...)
	d.mu.Lock()
	d.tree = fresh.tree
	d.gen++
	d.mu.Unlock()
}

// Generation changes whenever the word set changes. Results derived from the
// dictionary can be tagged with it to tell when they went stale.
func (d *Dictionary) Generation() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.gen
}

func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, found := d.tree.Get(word)
	return found
}

func (d *Dictionary) Size() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.tree.Size()
}

// Words returns the contents in sorted order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, d.tree.Size())
	for _, k := range d.tree.Keys() {
		out = append(out, k.(string))
	}
	return out
}
// IsPrefix reports whether prefix starts some word of the dictionary.
func (d *Dictionary) IsPrefix(prefix string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ceiling, ok := d.ceiling(prefix)
	return ok && strings.HasPrefix(ceiling, prefix)
}

// PrefixOf returns the longest dictionary word that is a prefix of enlargement.
//
// Taking the floor of enlargement is not enough on its own: with
// {"supa", "supakupa", "supalupa"} and "supaluper" the floor is "supalupa",
// which is no prefix. So the search narrows to the common prefix of the
// candidate and the floor and tries again.
func (d *Dictionary) PrefixOf(enlargement string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.prefixOf(enlargement)
}

// PrefixesOf returns every dictionary word that is a prefix of enlargement,
// longest first.
func (d *Dictionary) PrefixesOf(enlargement string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var out []string
	rest := enlargement
	for rest != "" {
		p, ok := d.prefixOf(rest)
		if !ok {
			break
		}
		out = append(out, p)
		rest = p[:len(p)-1]
	}
	return out
}

func (d *Dictionary) HasPrefix(enlargement string) bool {
	_, ok := d.PrefixOf(enlargement)
	return ok
}

// Search tells whether word is in the dictionary, starts a word of it, or neither.
func (d *Dictionary) Search(word string) Matching {
	if word == "" {
		return Empty
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	ceiling, ok := d.ceiling(word)
	switch {
	case !ok || !strings.HasPrefix(ceiling, word):
		return None
	case len(ceiling) == len(word):
		return Exact
	default:
		return Prefix
	}
}

func (d *Dictionary) prefixOf(enlargement string) (string, bool) {
	prefix := enlargement
	floor, ok := d.floor(prefix)
	for ok {
		if strings.HasPrefix(prefix, floor) {
			return floor, true
		}
		prefix = commonPrefix(prefix, floor)
		floor, ok = d.floor(prefix)
	}
	return "", false
}

// floor is the greatest word <= s.
func (d *Dictionary) floor(s string) (string, bool) {
	node, found := d.tree.Floor(s)
	if !found {
		return "", false
	}
	return node.Key.(string), true
}

// ceiling is the least word >= s.
func (d *Dictionary) ceiling(s string) (string, bool) {
	node, found := d.tree.Ceiling(s)
	if !found {
		return "", false
	}
	return node.Key.(string), true
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[:i]
		}
	}
	return a[:n]
}
