// Package devicemap resolves free-form Japanese device mentions (katakana,
// hiragana, kanji, romanized, full-width, colloquial abbreviations) to the
// canonical English device names used by the repair-guide search service.
package devicemap

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"
)

// DefaultThreshold is the minimum similarity for a fuzzy best-match.
const DefaultThreshold = 0.6

// candidateFloor is the looser inclusion floor used when ranking multiple
// candidates.
const candidateFloor = 0.3

// Match is a single fuzzy candidate.
type Match struct {
	Device string  `json:"device"`
	Score  float64 `json:"score"`
}

// Stats describes the loaded dictionary, for observability tooling.
type Stats struct {
	TotalMappings      int `json:"total_mappings"`
	TotalAliases       int `json:"total_aliases"`
	NormalizedMappings int `json:"normalized_mappings"`
	DeviceKeywords     int `json:"device_keywords"`
	SupportedDevices   int `json:"supported_devices"`
}

// index is the shared read-only lookup state. Built exactly once per process
// and never mutated afterward, so lookups need no locking.
type index struct {
	keys     []string          // normalized keys in first-insertion order
	byKey    map[string]string // normalized key -> canonical name
	keywords map[string]struct{}
	aliases  map[string][]string // canonical name -> source spellings
	supported []string           // sorted canonical names

	totalMappings int
	totalAliases  int
	collisions    int
}

var (
	indexOnce   sync.Once
	sharedIndex *index
)

// getIndex returns the process-wide index, building it on first access.
// The sync.Once guard means concurrent first callers block only for the
// build window and every later access is a plain read.
func getIndex() *index {
	indexOnce.Do(func() {
		sharedIndex = buildIndex(deviceMappings, deviceAliases, takeOverlay())
	})
	return sharedIndex
}

func buildIndex(mappings []aliasEntry, groups, overlay []aliasGroup) *index {
	if len(mappings) == 0 {
		// Every downstream lookup would be meaningless; fail loudly at startup.
		panic("devicemap: curated device dictionary is empty")
	}

	idx := &index{
		byKey:    make(map[string]string, len(mappings)),
		keywords: make(map[string]struct{}),
		aliases:  make(map[string][]string),
	}

	canonicals := make(map[string]struct{})

	for _, e := range mappings {
		idx.insert(e.alias, e.canonical)
		idx.addKeywords(Normalize(e.alias))
		canonicals[e.canonical] = struct{}{}
	}
	idx.totalMappings = len(mappings)

	for _, g := range append(groups, overlay...) {
		canonicals[g.canonical] = struct{}{}
		for _, alias := range g.aliases {
			idx.insert(alias, g.canonical)
		}
		idx.totalAliases += len(g.aliases)
	}

	idx.supported = make([]string, 0, len(canonicals))
	for name := range canonicals {
		idx.supported = append(idx.supported, name)
	}
	sort.Strings(idx.supported)

	if idx.collisions > 0 {
		// Two distinct aliases normalizing to the same key is a data-quality
		// defect to fix in the dictionary; the engine keeps last-write-wins.
		slog.Warn("alias key collisions after normalization", "collisions", idx.collisions)
	}
	return idx
}

func (idx *index) insert(alias, canonical string) {
	key := Normalize(alias)
	if key == "" {
		return
	}
	if prev, exists := idx.byKey[key]; exists {
		if prev != canonical {
			idx.collisions++
		}
	} else {
		idx.keys = append(idx.keys, key)
	}
	idx.byKey[key] = canonical
	idx.aliases[canonical] = append(idx.aliases[canonical], alias)
}

// addKeywords records the normalized alias and all of its contiguous
// substrings of length >= 2, used only by the device-mention probe.
func (idx *index) addKeywords(key string) {
	if key == "" {
		return
	}
	idx.keywords[key] = struct{}{}
	r := []rune(key)
	if len(r) <= 2 {
		return
	}
	for i := 0; i < len(r)-1; i++ {
		for j := i + 2; j <= len(r); j++ {
			idx.keywords[string(r[i:j])] = struct{}{}
		}
	}
}

// Mapper is the public engine handle. Mappers are cheap: every instance
// resolves against the same shared immutable index, so callers may create
// one per request or share one across goroutines.
type Mapper struct {
	scorer Scorer
}

// New returns a Mapper using the default sequence-ratio scorer.
func New() *Mapper {
	return &Mapper{scorer: SequenceScorer{}}
}

// NewWithScorer returns a Mapper with a custom similarity strategy.
func NewWithScorer(s Scorer) *Mapper {
	if s == nil {
		s = SequenceScorer{}
	}
	return &Mapper{scorer: s}
}

// prepare runs the guard and normalization pipeline shared by every public
// entry point. ok is false when the input was rejected or normalizes to
// nothing; both are "no match" outcomes, never errors.
func prepare(text string) (string, bool) {
	if !Validate(text) {
		return "", false
	}
	key := Normalize(Sanitize(text))
	if key == "" {
		return "", false
	}
	return key, true
}

// Resolve maps a device mention to its canonical English name by exact
// normalized lookup. It never returns a name outside the curated set.
func (m *Mapper) Resolve(text string) (string, bool) {
	key, ok := prepare(text)
	if !ok {
		return "", false
	}
	device, ok := getIndex().byKey[key]
	return device, ok
}

// FindBestMatch returns the highest-scoring candidate at or above threshold.
// Ties keep the first candidate in dictionary order.
func (m *Mapper) FindBestMatch(text string, threshold float64) (Match, bool) {
	key, ok := prepare(text)
	if !ok {
		return Match{}, false
	}

	idx := getIndex()
	var best Match
	found := false
	for _, k := range idx.keys {
		s := m.scorer.Score(key, k)
		if s >= threshold && s > best.Score {
			best = Match{Device: idx.byKey[k], Score: s}
			found = true
		}
	}
	return best, found
}

// PossibleMatches ranks up to max candidates scoring above the inclusion
// floor, descending by score, deduplicated by (device, score).
func (m *Mapper) PossibleMatches(text string, max int) []Match {
	if max <= 0 {
		return nil
	}
	key, ok := prepare(text)
	if !ok {
		return nil
	}

	idx := getIndex()
	seen := make(map[Match]struct{})
	var matches []Match
	for _, k := range idx.keys {
		s := m.scorer.Score(key, k)
		if s <= candidateFloor {
			continue
		}
		c := Match{Device: idx.byKey[k], Score: s}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		matches = append(matches, c)
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if len(matches) > max {
		matches = matches[:max]
	}
	return matches
}

// IsDeviceName reports whether text plausibly mentions a known device.
// It is a coarse probe: exact key match is authoritative, otherwise keywords
// of length >= 3 are checked, with substring containment allowed only for
// inputs of length >= 4 to keep short noisy queries from matching.
func (m *Mapper) IsDeviceName(text string) bool {
	key, ok := prepare(text)
	if !ok {
		return false
	}

	idx := getIndex()
	if _, ok := idx.byKey[key]; ok {
		return true
	}

	keyLen := utf8.RuneCountInString(key)
	for kw := range idx.keywords {
		if utf8.RuneCountInString(kw) < 3 {
			continue
		}
		if kw == key {
			return true
		}
		if keyLen >= 4 && strings.Contains(key, kw) {
			return true
		}
	}
	return false
}

// Aliases returns every source spelling recorded for a canonical device
// name, in dictionary order. Empty for unknown names.
func (m *Mapper) Aliases(canonical string) []string {
	src := getIndex().aliases[canonical]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// SupportedDevices returns the sorted canonical device names.
func (m *Mapper) SupportedDevices() []string {
	src := getIndex().supported
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Stats returns dictionary size counters.
func (m *Mapper) Stats() Stats {
	idx := getIndex()
	return Stats{
		TotalMappings:      idx.totalMappings,
		TotalAliases:       idx.totalAliases,
		NormalizedMappings: len(idx.byKey),
		DeviceKeywords:     len(idx.keywords),
		SupportedDevices:   len(idx.supported),
	}
}
