package agent

import "strings"

// Strategy selects how keywords are combined into title-search queries.
// The retry loop only ever moves from StrategyFirstPass to
// StrategyIndividual; keyword pairs are an in-pass widening step, not a
// retry state of their own.
type Strategy int

const (
	// StrategyFirstPass joins all keywords into a single query.
	StrategyFirstPass Strategy = iota

	// StrategyKeywordPairs queries consecutive keyword pairs, plus the
	// first-and-last pair when three or more keywords exist.
	StrategyKeywordPairs

	// StrategyIndividual queries each distinct word on its own. This is
	// the broadened retry strategy.
	StrategyIndividual
)

func (s Strategy) String() string {
	switch s {
	case StrategyKeywordPairs:
		return "keyword-pairs"
	case StrategyIndividual:
		return "individual"
	default:
		return "first-pass"
	}
}

// queryCombos expands a keyword list into query strings for the given
// strategy. Keywords may be multi-word phrases; StrategyIndividual splits
// them down to distinct single words.
func queryCombos(keywords []string, strategy Strategy) []string {
	if len(keywords) == 0 {
		return nil
	}

	switch strategy {
	case StrategyKeywordPairs:
		pairs := keywordPairs(keywords)
		combos := make([]string, len(pairs))
		for i, pair := range pairs {
			combos[i] = strings.Join(pair, " ")
		}
		return combos
	case StrategyIndividual:
		return distinctWords(keywords)
	default:
		return []string{strings.Join(keywords, " ")}
	}
}

// keywordPairs returns consecutive keyword pairs, closing the loop with a
// first-and-last pair when three or more keywords exist. A single keyword
// yields itself.
func keywordPairs(keywords []string) [][]string {
	n := len(keywords)
	if n < 2 {
		pairs := make([][]string, 0, n)
		for _, keyword := range keywords {
			pairs = append(pairs, []string{keyword})
		}
		return pairs
	}

	pairs := make([][]string, 0, n)
	for i := 0; i+1 < n; i++ {
		pairs = append(pairs, []string{keywords[i], keywords[i+1]})
	}
	if n >= 3 {
		pairs = append(pairs, []string{keywords[0], keywords[n-1]})
	}
	return pairs
}

// distinctWords flattens keyword phrases into lowercased single words,
// preserving first-seen order.
func distinctWords(keywords []string) []string {
	seen := make(map[string]bool)
	var words []string
	for _, keyword := range keywords {
		for _, word := range strings.Fields(strings.ToLower(keyword)) {
			if seen[word] {
				continue
			}
			seen[word] = true
			words = append(words, word)
		}
	}
	return words
}
