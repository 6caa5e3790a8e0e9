package tftcmd

// Cache limits.
const (
	MaxCacheSize   = 32 // Entries kept by a Translator
	CacheThreshold = 5  // Uses after which an entry is hot
)

type cacheEntry struct {
	seq      *Sequence
	lastUsed int64 // Milliseconds on the translator clock
	useCount int
}

func (e *cacheEntry) hot() bool {
	return e.useCount >= CacheThreshold
}

// sequenceCache holds sequences by name and evicts the least recently used
// entry when full. Hot entries are refreshed in place on re-insertion but are
// not exempt from eviction.
type sequenceCache struct {
	entries map[string]*cacheEntry
	max     int
}

func newSequenceCache(max int) *sequenceCache {
	return &sequenceCache{entries: map[string]*cacheEntry{}, max: max}
}

// get returns a copy of the cached sequence and records the use.
func (c *sequenceCache) get(name string, now int64) (*Sequence, bool) {
	e, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	e.useCount++
	e.lastUsed = now
	return e.seq.clone(), true
}

// put stores a copy of seq under name. It returns the name of the evicted
// entry, if any.
func (c *sequenceCache) put(name string, seq *Sequence, now int64) (evicted string, ok bool) {
	seq = seq.clone()
	if e, found := c.entries[name]; found && e.hot() {
		e.seq = seq
		e.lastUsed = now
		return "", false
	}
	if len(c.entries) >= c.max {
		evicted, ok = c.oldest()
		if ok {
			delete(c.entries, evicted)
		}
	}
	c.entries[name] = &cacheEntry{seq: seq, lastUsed: now, useCount: 1}
	return evicted, ok
}

// oldest returns the entry with the smallest lastUsed. Ties go to the
// lexically smallest name so eviction does not depend on map order.
func (c *sequenceCache) oldest() (string, bool) {
	var (
		name  string
		found bool
		least int64
	)
	for n, e := range c.entries {
		if !found || e.lastUsed < least || (e.lastUsed == least && n < name) {
			name, least, found = n, e.lastUsed, true
		}
	}
	return name, found
}

func (c *sequenceCache) size() int {
	return len(c.entries)
}

func (c *sequenceCache) clear() {
	c.entries = map[string]*cacheEntry{}
}
