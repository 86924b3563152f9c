package agent

import (
	"context"
	"testing"

	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/ai/mock"
	"github.com/alloy-org/notescout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyScore(t *testing.T) {
	candidate := &core.Candidate{UUID: "n1", MatchCount: 3}
	applyScore(candidate, judgeScore{
		UUID:           "n1",
		Coherence:      8,
		TitleRelevance: 9,
		KeywordDensity: 6,
		CriteriaMatch:  7,
		TagAlignment:   5,
		Recency:        4,
		Reasoning:      "strong title match",
	})

	// 9*.25 + 8*.25 + 6*.15 + 7*.15 + 5*.10 + 4*.10 + 3*0.1 = 7.4
	assert.InDelta(t, 7.4, candidate.FinalScore, 0.001)
	assert.Equal(t, "strong title match", candidate.Reasoning)
	require.NotNil(t, candidate.Breakdown)
	assert.InDelta(t, 0.3, candidate.Breakdown.MatchBonus, 0.001)
}

func TestApplyScore_BonusCappedAndClamped(t *testing.T) {
	candidate := &core.Candidate{UUID: "n1", MatchCount: 40}
	applyScore(candidate, judgeScore{
		UUID: "n1", Coherence: 10, TitleRelevance: 10, KeywordDensity: 10,
		CriteriaMatch: 10, TagAlignment: 10, Recency: 10,
	})

	assert.InDelta(t, 0.5, candidate.Breakdown.MatchBonus, 0.001, "bonus capped at five hits")
	assert.InDelta(t, 10.0, candidate.FinalScore, 0.001, "final score clamped to 10")
}

func TestScore_BatchedCallAndOrdering(t *testing.T) {
	judge := mock.NewJudge()
	judge.CompleteFunc = func(_ context.Context, prompt string, opts ai.CallOptions) (string, error) {
		assert.True(t, opts.JSONResponse)
		assert.Contains(t, prompt, "n1")
		assert.Contains(t, prompt, "n2")
		return `[
			{"uuid": "n1", "coherence": 4, "titleRelevance": 4, "keywordDensity": 4, "criteriaMatch": 4, "tagAlignment": 4, "recency": 4, "reasoning": "ok"},
			{"uuid": "n2", "coherence": 9, "titleRelevance": 9, "keywordDensity": 9, "criteriaMatch": 9, "tagAlignment": 9, "recency": 9, "reasoning": "great"}
		]`, nil
	}

	agent := newTestAgent(t, newFakeStore(), judge, Limits{})

	candidates := []*core.Candidate{
		{UUID: "n1", Name: "First"},
		{UUID: "n2", Name: "Second"},
	}
	scored, err := agent.score(context.Background(), "query",
		core.UserCriteria{PrimaryKeywords: []string{"query"}}, candidates)
	require.NoError(t, err)

	assert.Equal(t, 1, judge.CallCount(), "whole pool scored in one judge call")
	require.Len(t, scored, 2)
	assert.Equal(t, "n2", scored[0].UUID, "ordered by final score")
}

func TestScore_UnscoredCandidatesDropped(t *testing.T) {
	judge := mock.NewJudge()
	judge.CompleteFunc = func(context.Context, string, ai.CallOptions) (string, error) {
		return `[{"uuid": "n1", "coherence": 7, "titleRelevance": 7}]`, nil
	}

	agent := newTestAgent(t, newFakeStore(), judge, Limits{})

	scored, err := agent.score(context.Background(), "query", core.UserCriteria{},
		[]*core.Candidate{{UUID: "n1"}, {UUID: "forgotten"}})
	require.NoError(t, err)

	require.Len(t, scored, 1)
	assert.Equal(t, "n1", scored[0].UUID)
}

func TestScore_UnusableResponseYieldsEmptyRanking(t *testing.T) {
	judge := mock.NewJudge()
	judge.CompleteFunc = func(context.Context, string, ai.CallOptions) (string, error) {
		return "I could not decide.", nil
	}

	agent := newTestAgent(t, newFakeStore(), judge, Limits{})

	scored, err := agent.score(context.Background(), "query", core.UserCriteria{},
		[]*core.Candidate{{UUID: "n1"}})
	require.NoError(t, err, "a confused judge is not a transport failure")
	assert.Empty(t, scored)
}

func TestScore_EmptyPoolSkipsJudge(t *testing.T) {
	judge := mock.NewJudge()
	agent := newTestAgent(t, newFakeStore(), judge, Limits{})

	scored, err := agent.score(context.Background(), "query", core.UserCriteria{}, nil)
	require.NoError(t, err)
	assert.Empty(t, scored)
	assert.Zero(t, judge.CallCount())
}
