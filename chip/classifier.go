package chip

// TierSets holds the static badge membership sets, keyed by token text.
type TierSets struct {
	Bold    map[string]struct{}
	Popular map[string]struct{}
	Pro     map[string]struct{}
	Demo    map[string]struct{}
	Fun     map[string]struct{}
}

// Table is one classification result, badges aligned index-for-index with
// the token list that produced it.
type Table struct {
	Version uint64
	Badges  []Badge
}

// Badge returns the badge at index i, or BadgeNone out of range.
func (t *Table) Badge(i int) Badge {
	if t == nil || i < 0 || i >= len(t.Badges) {
		return BadgeNone
	}
	return t.Badges[i]
}

// Classifier assigns exactly one badge per token, highest priority first:
// category > bold > popular > pro > demo > fun > none. The first matching
// tier wins and evaluation stops. Results are memoized per working-list
// version; panning and zooming never reclassify.
type Classifier struct {
	sets  TierSets
	cache *Table
}

// NewClassifier creates a classifier over the given tier sets.
func NewClassifier(sets TierSets) *Classifier {
	return &Classifier{sets: sets}
}

// Classify returns the badge table for tokens. The cached table is reused
// while version matches the previous call.
func (c *Classifier) Classify(tokens []Token, version uint64) *Table {
	if c.cache != nil && c.cache.Version == version {
		return c.cache
	}
	badges := make([]Badge, len(tokens))
	for i, tok := range tokens {
		badges[i] = c.classify(tok)
	}
	c.cache = &Table{Version: version, Badges: badges}
	return c.cache
}

func (c *Classifier) classify(tok Token) Badge {
	if tok.IsCategory {
		return BadgeCategory
	}
	if _, ok := c.sets.Bold[tok.Text]; ok {
		return BadgeBold
	}
	if _, ok := c.sets.Popular[tok.Text]; ok {
		return BadgePopular
	}
	if _, ok := c.sets.Pro[tok.Text]; ok {
		return BadgePro
	}
	if _, ok := c.sets.Demo[tok.Text]; ok {
		return BadgeDemo
	}
	if _, ok := c.sets.Fun[tok.Text]; ok {
		return BadgeFun
	}
	return BadgeNone
}
