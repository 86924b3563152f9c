package agent

import (
	"strings"
	"sync"

	"github.com/alloy-org/notescout/core"
	"github.com/alloy-org/notescout/corpus"
)

// Retrieval weights folded into the pre-content score. Primary keyword
// hits count double; full-text hits count half of their title-search
// counterparts.
const (
	weightPrimary   = 2.0
	weightSecondary = 1.0
	fullTextScale   = 0.5

	// preferredTagBoost is the multiplier applied when a candidate
	// carries the preferred tag.
	preferredTagBoost = 1.5
)

// collection is the output of the collector: the candidate pool plus the
// note handles needed for later content and attachment fetches.
type collection struct {
	candidates []*core.Candidate
	handles    map[string]corpus.Note
}

func (c *collection) handle(id string) corpus.Note {
	return c.handles[id]
}

// collectState accumulates candidates across concurrent corpus queries.
// Candidates are upserted by uuid: re-discovery through another query
// combo bumps the match count instead of duplicating the entry.
type collectState struct {
	mu         sync.Mutex
	candidates map[string]*core.Candidate
	handles    map[string]corpus.Note
	maxed      []string
}

func newCollectState() *collectState {
	return &collectState{
		candidates: make(map[string]*core.Candidate),
		handles:    make(map[string]corpus.Note),
	}
}

// upsert registers a note hit. Summary notes from earlier searches are
// dropped so results never feed back into a later search.
func (st *collectState) upsert(note corpus.Note, weight float64, preferredTag string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	candidate, ok := st.candidates[note.UUID()]
	if !ok {
		tags := core.NormalizeTags(note.Tags())
		if core.HasTag(tags, core.SummaryTag) {
			return
		}
		candidate = &core.Candidate{
			UUID:     note.UUID(),
			Name:     note.Name(),
			Tags:     tags,
			Created:  note.Created(),
			Updated:  note.Updated(),
			TagBoost: 1.0,
		}
		st.candidates[note.UUID()] = candidate
		st.handles[note.UUID()] = note
	}

	candidate.MatchCount++
	candidate.PreContentScore += weight
	if preferredTag != "" && core.HasTag(candidate.Tags, preferredTag) {
		candidate.TagBoost = preferredTagBoost
	}
}

// markMaxed records a query that hit the per-keyword cap. Later combos
// containing it as a substring are skipped within the same pass.
func (st *collectState) markMaxed(query string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.maxed = append(st.maxed, query)
}

// excluded reports whether a query contains a previously maxed-out one.
func (st *collectState) excluded(query string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for _, broad := range st.maxed {
		if strings.Contains(query, broad) {
			return true
		}
	}
	return false
}

func (st *collectState) size() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.candidates)
}

func (st *collectState) collection() *collection {
	st.mu.Lock()
	defer st.mu.Unlock()

	list := make([]*core.Candidate, 0, len(st.candidates))
	for _, candidate := range st.candidates {
		list = append(list, candidate)
	}
	return &collection{candidates: list, handles: st.handles}
}

// keywordDensity measures what share of the content's words are keyword
// occurrences, as a percentage. Primary keyword hits are weighted double.
// The full keyword lists are always measured, regardless of which subset
// of queries actually retrieved the candidate.
func keywordDensity(content string, primary, secondary []string) float64 {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}

	lower := strings.ToLower(content)
	var hits float64
	for _, keyword := range primary {
		hits += float64(countOccurrences(lower, keyword)) * 2
	}
	for _, keyword := range secondary {
		hits += float64(countOccurrences(lower, keyword))
	}
	return hits / float64(words) * 100
}

func countOccurrences(lowerContent, keyword string) int {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return 0
	}
	return strings.Count(lowerContent, keyword)
}

// filterByDate drops candidates outside the date filter. A nil filter
// passes everything through.
func filterByDate(candidates []*core.Candidate, filter *core.DateFilter) []*core.Candidate {
	if filter == nil {
		return candidates
	}

	kept := make([]*core.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		stamp := candidate.Updated
		if filter.Kind == core.DateFilterCreated {
			stamp = candidate.Created
		}
		if stamp.Before(filter.After) {
			continue
		}
		kept = append(kept, candidate)
	}
	return kept
}

func truncateContent(content string, limit int) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	return content[:limit]
}
