// Package filter owns the selected-trait set and derives the working list
// that feeds the layout and the classifier.
package filter

import (
	"math/rand"
	"sort"

	"github.com/lixenwraith/chipfield/chip"
)

// WorkingList is the ordered token sequence currently eligible for display.
// Version increases on every rebuild and keys downstream memoization (badge
// table, layout rows). Tokens must be treated as read-only.
type WorkingList struct {
	Tokens  []chip.Token
	Version uint64
}

// Engine derives the working list from the corpus and the selected traits.
//
// The corpus is shuffled exactly once per engine (one session); trait
// toggles filter the shuffled order without reshuffling, so deselecting
// everything restores the exact pre-filter sequence. With one or more
// traits selected the list is the non-category tokens matching ALL of them;
// category tokens are the filter controls and drop out of filtered views.
type Engine struct {
	shuffled []chip.Token
	traits   map[string]chip.Trait
	order    []string
	selected map[string]struct{}
	working  WorkingList
	version  uint64
}

// NewEngine shuffles the corpus with the given seed and derives the initial
// (unfiltered) working list.
func NewEngine(corpus []chip.Token, traits []chip.Trait, seed int64) *Engine {
	e := &Engine{
		shuffled: make([]chip.Token, len(corpus)),
		traits:   make(map[string]chip.Trait, len(traits)),
		order:    make([]string, 0, len(traits)),
		selected: make(map[string]struct{}),
	}
	copy(e.shuffled, corpus)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(e.shuffled), func(i, j int) {
		e.shuffled[i], e.shuffled[j] = e.shuffled[j], e.shuffled[i]
	})
	for _, tr := range traits {
		e.traits[tr.ID] = tr
		e.order = append(e.order, tr.ID)
	}
	e.rebuild()
	return e
}

// Toggle flips the selection state of a trait and rebuilds the working
// list. Returns the state after the toggle; unknown ids are a no-op.
func (e *Engine) Toggle(id string) bool {
	if _, ok := e.traits[id]; !ok {
		return false
	}
	if _, on := e.selected[id]; on {
		delete(e.selected, id)
	} else {
		e.selected[id] = struct{}{}
	}
	e.rebuild()
	_, on := e.selected[id]
	return on
}

// Clear deselects every trait.
func (e *Engine) Clear() {
	if len(e.selected) == 0 {
		return
	}
	e.selected = make(map[string]struct{})
	e.rebuild()
}

// Working returns the current working list.
func (e *Engine) Working() WorkingList {
	return e.working
}

// Selected returns the selected trait ids, sorted.
func (e *Engine) Selected() []string {
	ids := make([]string, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsSelected reports the selection state of one trait.
func (e *Engine) IsSelected(id string) bool {
	_, on := e.selected[id]
	return on
}

// TraitByIndex returns the trait at the display-order index, for hotkeys.
func (e *Engine) TraitByIndex(i int) (chip.Trait, bool) {
	if i < 0 || i >= len(e.order) {
		return chip.Trait{}, false
	}
	return e.traits[e.order[i]], true
}

// Len returns the working list length, CorpusLen the full corpus length.
func (e *Engine) Len() int       { return len(e.working.Tokens) }
func (e *Engine) CorpusLen() int { return len(e.shuffled) }

func (e *Engine) rebuild() {
	e.version++
	if len(e.selected) == 0 {
		e.working = WorkingList{Tokens: e.shuffled, Version: e.version}
		return
	}
	filtered := make([]chip.Token, 0, len(e.shuffled))
	for _, tok := range e.shuffled {
		if tok.IsCategory {
			continue
		}
		if e.matchesAll(tok) {
			filtered = append(filtered, tok)
		}
	}
	e.working = WorkingList{Tokens: filtered, Version: e.version}
}

func (e *Engine) matchesAll(tok chip.Token) bool {
	for id := range e.selected {
		if !e.traits[id].Matches(tok.Text) {
			return false
		}
	}
	return true
}
