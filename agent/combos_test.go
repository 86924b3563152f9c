package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryCombos_FirstPass(t *testing.T) {
	assert.Equal(t, []string{"team meeting agenda"},
		queryCombos([]string{"team", "meeting", "agenda"}, StrategyFirstPass))
	assert.Nil(t, queryCombos(nil, StrategyFirstPass))
}

func TestQueryCombos_KeywordPairs(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		want     []string
	}{
		{
			name:     "two keywords give one pair",
			keywords: []string{"a", "b"},
			want:     []string{"a b"},
		},
		{
			name:     "three keywords close the loop",
			keywords: []string{"a", "b", "c"},
			want:     []string{"a b", "b c", "a c"},
		},
		{
			name:     "four keywords",
			keywords: []string{"a", "b", "c", "d"},
			want:     []string{"a b", "b c", "c d", "a d"},
		},
		{
			name:     "single keyword stands alone",
			keywords: []string{"solo"},
			want:     []string{"solo"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queryCombos(tt.keywords, StrategyKeywordPairs))
		})
	}
}

func TestQueryCombos_Individual(t *testing.T) {
	combos := queryCombos([]string{"Team Meeting", "meeting agenda"}, StrategyIndividual)
	assert.Equal(t, []string{"team", "meeting", "agenda"}, combos,
		"phrases split into distinct lowercased words")
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "first-pass", StrategyFirstPass.String())
	assert.Equal(t, "keyword-pairs", StrategyKeywordPairs.String())
	assert.Equal(t, "individual", StrategyIndividual.String())
}
