package tftcmd

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TranslatorOpts configures a Translator.
type TranslatorOpts struct {
	// Clock drives cache recency (default: real clock).
	Clock clockwork.Clock
	// Logger overrides the package logger for this translator.
	Logger *slog.Logger
}

// Translator optimizes sequences, caches the results by name and remaps
// command bytes between controller families.
//
// A Translator is safe for concurrent use. Independent translators share no
// state.
type Translator struct {
	clock  clockwork.Clock
	epoch  time.Time
	logger *slog.Logger

	mu    sync.Mutex
	cache *sequenceCache
	table translationTable
}

// NewTranslator returns a Translator with an empty cache and the built-in
// translation table.
//
// opts can be nil to use defaults.
func NewTranslator(opts *TranslatorOpts) *Translator {
	if opts == nil {
		opts = &TranslatorOpts{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Translator{
		clock:  clock,
		epoch:  clock.Now(),
		logger: opts.Logger,
		cache:  newSequenceCache(MaxCacheSize),
		table:  newTranslationTable(),
	}
}

func (t *Translator) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}

// nowMs returns milliseconds elapsed on the clock since construction.
func (t *Translator) nowMs() int64 {
	return t.clock.Since(t.epoch).Milliseconds()
}

// GetOptimizedSequence returns the cached sequence named like original, or
// optimizes original, offers the result to the cache and returns it. The
// cache keeps its own copy, so changing the returned sequence does not
// affect later lookups.
func (t *Translator) GetOptimizedSequence(original *Sequence) *Sequence {
	t.mu.Lock()
	defer t.mu.Unlock()
	name := original.Name()
	if seq, ok := t.cache.get(name, t.nowMs()); ok {
		t.log().Debug("sequence cache hit", "sequence", name)
		return seq
	}
	t.log().Debug("sequence cache miss", "sequence", name)
	optimized := OptimizeSequence(original)
	t.cacheSequenceIfNeeded(name, optimized)
	return optimized
}

// CacheSequenceIfNeeded stores seq under name. A hot entry is refreshed in
// place; otherwise the least recently used entry is evicted when the cache is
// full and seq is inserted with a use count of 1.
func (t *Translator) CacheSequenceIfNeeded(name string, seq *Sequence) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cacheSequenceIfNeeded(name, seq)
}

func (t *Translator) cacheSequenceIfNeeded(name string, seq *Sequence) {
	if evicted, ok := t.cache.put(name, seq, t.nowMs()); ok {
		t.log().Debug("sequence cache eviction", "evicted", evicted, "inserted", name)
	}
}

// CacheLen returns the number of cached sequences.
func (t *Translator) CacheLen() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cache.size()
}

// ClearCache drops every cached sequence.
func (t *Translator) ClearCache() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache.clear()
}

// OptimizeSequence merges every run of DATA and DATA_LIST elements into a
// single DATA_LIST. Other elements keep their order and content. A run longer
// than MaxListLength bytes is split into consecutive lists of at most that
// size, so the result never has more elements than original.
func OptimizeSequence(original *Sequence) *Sequence {
	out := NewSequence(original.Name() + "_optimized")
	var pending []byte
	flush := func() {
		for len(pending) > 0 {
			n := min(len(pending), MaxListLength)
			out.cmds = append(out.cmds, MakeDataList(pending[:n]))
			pending = pending[n:]
		}
	}
	for _, cmd := range original.cmds {
		if cmd.typ.isData() {
			pending = append(pending, cmd.data...)
			continue
		}
		flush()
		out.cmds = append(out.cmds, cmd)
	}
	flush()
	return out
}

// OptimizeSequence calls the package level OptimizeSequence. It does not touch
// the cache.
func (t *Translator) OptimizeSequence(original *Sequence) *Sequence {
	return OptimizeSequence(original)
}

// Translate returns the byte target expects for the command src, and whether
// the table has an entry for it.
func (t *Translator) Translate(src byte, target DisplayDriver) (byte, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.table.lookup(src, target)
}

// TranslateSequence rewrites the command bytes of source for target. Bytes
// without a table entry are kept; data, delays and END pass through.
func (t *Translator) TranslateSequence(source *Sequence, target DisplayDriver) *Sequence {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := NewSequence(source.Name() + "_translated")
	for _, cmd := range source.cmds {
		switch cmd.typ {
		case TypeCommand, TypeCommandList:
			data := clone(cmd.data)
			for i, b := range data {
				if dst, ok := t.table.lookup(b, target); ok {
					data[i] = dst
				}
			}
			cmd.data = data
		}
		out.cmds = append(out.cmds, cmd)
	}
	return out
}
