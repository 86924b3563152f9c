package agent

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/ai/mock"
	"github.com/alloy-org/notescout/core"
	"github.com/alloy-org/notescout/corpus"
	corpusbadger "github.com/alloy-org/notescout/corpus/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, mock.NewJudge())
	assert.ErrorIs(t, err, ErrStoreRequired)

	_, err = New(newFakeStore(), nil)
	assert.ErrorIs(t, err, ErrJudgeRequired)

	agent, err := New(newFakeStore(), mock.NewJudge())
	require.NoError(t, err)
	assert.Equal(t, DefaultLimits(), agent.limits)
}

func TestSearch_ExtractionFailureIsHard(t *testing.T) {
	judge := mock.NewJudge()
	judge.CompleteFunc = func(context.Context, string, ai.CallOptions) (string, error) {
		return `{"primaryKeywords": []}`, nil
	}
	agent := newTestAgent(t, newFakeStore(), judge, Limits{ExtractAttempts: 2})

	_, err := agent.Search(context.Background(), "anything", nil)
	assert.ErrorIs(t, err, ErrCriteriaExtraction)
	assert.Equal(t, 2, judge.CallCount(), "every extraction attempt is used before giving up")
}

func TestSearch_NoCandidatesFound(t *testing.T) {
	judge := mock.NewJudge()
	judge.CompleteFunc = func(context.Context, string, ai.CallOptions) (string, error) {
		return `{"primaryKeywords": ["nothing matches"]}`, nil
	}
	agent := newTestAgent(t, newFakeStore(), judge, Limits{MaxRetries: 1})

	result, err := agent.Search(context.Background(), "find the unfindable", nil)
	require.NoError(t, err, "an empty corpus is not an error")

	assert.False(t, result.Found)
	assert.Empty(t, result.Notes)
	assert.NotEmpty(t, result.Suggestion)
}

// scriptedJudge dispatches on which pipeline prompt it receives.
type scriptedJudge struct {
	extraction string
	scoreFor   func(prompt string) string
	sanity     func(call int) string

	sanityCalls int
}

func (j *scriptedJudge) complete(judge *mock.Judge) {
	judge.CompleteFunc = func(_ context.Context, prompt string, _ ai.CallOptions) (string, error) {
		switch {
		case strings.Contains(prompt, "extract structured search criteria"):
			return j.extraction, nil
		case strings.Contains(prompt, "rank candidate notes"):
			return j.scoreFor(prompt), nil
		case strings.Contains(prompt, "review the top result"):
			j.sanityCalls++
			return j.sanity(j.sanityCalls), nil
		}
		return "{}", nil
	}
}

var uuidLine = regexp.MustCompile(`uuid: (\S+)`)

// scoreEverything builds a scoring response giving every candidate in
// the prompt the same dimension scores, except uuids listed in standout,
// which score high.
func scoreEverything(base, high float64, standout func(prompt, uuid string) bool) func(string) string {
	return func(prompt string) string {
		var entries []map[string]any
		for _, match := range uuidLine.FindAllStringSubmatch(prompt, -1) {
			id := match[1]
			score := base
			if standout != nil && standout(prompt, id) {
				score = high
			}
			entries = append(entries, map[string]any{
				"uuid": id, "coherence": score, "titleRelevance": score,
				"keywordDensity": score, "criteriaMatch": score,
				"tagAlignment": score, "recency": score,
				"reasoning": "scripted",
			})
		}
		out, _ := json.Marshal(entries)
		return string(out)
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	store, err := corpusbadger.NewMemoryStore()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	seed := func(name, content string, tags ...string) string {
		now := time.Now().UTC()
		record := &corpus.Record{Name: name, Tags: tags, Created: now, Updated: now, Content: content}
		require.NoError(t, store.PutRecord(ctx, record))
		return record.UUID
	}

	now := time.Now().UTC()
	targetRecord := &corpus.Record{
		Name:    "Mystery Meat Sandwich",
		Tags:    []string{"food"},
		Created: now,
		Updated: now,
		Content: "That deli sandwich with the mystery meat was unforgettable.",
		Images:  []corpus.Image{{URL: "https://example.com/sandwich.jpg"}},
	}
	require.NoError(t, store.PutRecord(ctx, targetRecord))
	target := targetRecord.UUID

	// Same phrase in the body, but no image attached.
	seed("Mystery Meat Story", "Wrote a short story about a sandwich stuffed with mystery meat.", "writing")
	seed("Sandwich Spots", "A list of sandwich places downtown.", "food")
	seed("Deli Visits", "Pastrami and rye at the corner deli.", "food")
	seed("Meeting Notes", "Quarterly planning discussion.", "work")
	seed("Grocery List", "Bread, meat, cheese.", "personal")
	seed("Book Club", "Thoughts on the latest thriller.", "personal")
	seed("Workout Log", "Monday legs, Wednesday back.", "health")
	seed("Trip Ideas", "Lisbon, Kyoto, Montreal.", "travel")
	seed("Recipe Box", "Slow cooker pulled pork.", "food")
	seed("Search: old lunch hunt", "| old | results |", core.SummaryTag)

	script := &scriptedJudge{
		extraction: `{
			"primaryKeywords": ["sandwich", "mystery meat"],
			"secondaryKeywords": ["deli"],
			"exactPhrase": "mystery meat",
			"booleanRequirements": {"containsPDF": false, "containsImage": true, "containsURL": false}
		}`,
		scoreFor: scoreEverything(5, 9, func(_, id string) bool { return id == target }),
	}
	judge := mock.NewJudge()
	script.complete(judge)

	agent, err := New(store, judge, WithLimits(Limits{MaxRetries: 1}))
	require.NoError(t, err)

	var updates []string
	result, err := agent.Search(ctx, "that note with an image of a sandwich with mystery meat", &SearchOptions{
		Progress:       func(message string) { updates = append(updates, message) },
		PublishSummary: true,
	})
	require.NoError(t, err)

	assert.True(t, result.Found)
	assert.GreaterOrEqual(t, result.Confidence, 0.8, "a strong top score auto-accepts")
	require.NotEmpty(t, result.Notes)
	assert.Equal(t, "Mystery Meat Sandwich", result.Notes[0].Name)
	assert.Equal(t, 1, result.Notes[0].Rank)
	assert.Equal(t, core.NoteURL(target), result.Notes[0].URL)
	assert.NotEmpty(t, updates)

	require.NotNil(t, result.Notes[0].Checks)
	assert.True(t, result.Notes[0].Checks.HasImage, "image requirement verified by deep analysis")
	assert.True(t, result.Notes[0].Checks.HasExactPhrase)

	for _, note := range result.Notes {
		assert.NotEqual(t, "Search: old lunch hunt", note.Name,
			"prior summaries never reappear as results")
		assert.NotEqual(t, "Mystery Meat Story", note.Name,
			"matching body text without the required image is filtered out")
	}

	require.NotNil(t, result.SummaryNote)
	record, err := store.GetRecord(ctx, result.SummaryNote.UUID)
	require.NoError(t, err)
	assert.Equal(t, []string{core.SummaryTag}, record.Tags)
	assert.Contains(t, record.Content, "Mystery Meat Sandwich")
	assert.Equal(t, 0, script.sanityCalls, "auto-accepted results skip the second opinion")
}

func TestSearch_RetryMergesAttempts(t *testing.T) {
	store := newFakeStore()
	noteA := note("note-a", "Alpha Beta Journal", "alpha beta body")
	noteB := note("note-b", "Alpha Daily", "alpha body")
	store.filterResults["alpha beta"] = []corpus.Note{noteA}
	store.filterResults["alpha"] = []corpus.Note{noteB}

	script := &scriptedJudge{
		extraction: `{"primaryKeywords": ["alpha beta"]}`,
		scoreFor:   scoreEverything(6, 7, func(_, id string) bool { return id == "note-b" }),
		sanity: func(call int) string {
			if call == 1 {
				return `{"confident": false, "action": "retry_broader", "confidence": 0.3, "reason": "weak match"}`
			}
			return `{"confident": true, "action": "accept", "confidence": 0.9, "reason": "good enough"}`
		},
	}
	judge := mock.NewJudge()
	script.complete(judge)

	agent := newTestAgent(t, store, judge, Limits{MaxRetries: 1, FullTextFloor: 1})

	result, err := agent.Search(context.Background(), "alpha beta notes", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, script.sanityCalls, "one retry consumed the whole budget")
	assert.True(t, result.Found)
	assert.InDelta(t, 0.9, result.Confidence, 0.001)

	require.Len(t, result.Notes, 2, "first-attempt results survive the retry")
	assert.Equal(t, "note-b", result.Notes[0].UUID, "ordered by score across attempts")
	assert.Equal(t, 1, result.Notes[0].Rank)
	assert.Equal(t, "note-a", result.Notes[1].UUID)
	assert.Equal(t, 2, result.Notes[1].Rank)
}
