package core

import "strings"

// TextIndex is the inverted token-to-identifier map used for substring
// search. State nodes are never indexed; they carry no indexable text.
type TextIndex struct {
	postings map[string][]Identifier
}

// NewTextIndex builds an empty index.
func NewTextIndex() *TextIndex {
	return &TextIndex{postings: make(map[string][]Identifier)}
}

// Index tokenizes n's indexable text and appends n.ID to every surviving
// token's posting list. Duplicate appends within one call are permitted;
// query-time dedup handles them.
func (t *TextIndex) Index(n *Node) {
	if n.Kind == KindState {
		return
	}
	for _, tok := range tokenize(n.IndexableText()) {
		t.postings[tok] = append(t.postings[tok], n.ID)
	}
}

// Remove strips every occurrence of id from every posting list, deleting
// tokens left with an empty list.
func (t *TextIndex) Remove(id Identifier) {
	for tok, ids := range t.postings {
		kept := ids[:0]
		for _, existing := range ids {
			if existing != id {
				kept = append(kept, existing)
			}
		}
		if len(kept) == 0 {
			delete(t.postings, tok)
		} else {
			t.postings[tok] = kept
		}
	}
}

// Search returns the deduplicated union of posting lists for every token
// that contains substr.
func (t *TextIndex) Search(substr string) []Identifier {
	seen := make(map[Identifier]struct{})
	var out []Identifier
	for tok, ids := range t.postings {
		if !strings.Contains(tok, substr) {
			continue
		}
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
