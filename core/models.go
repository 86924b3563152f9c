package core

import "time"

// DefaultResultCount is the number of results returned when the caller
// does not ask for a specific count.
const DefaultResultCount = 5

// SummaryTag marks notes created by the summary publisher. Notes carrying
// this tag are excluded from candidate collection so prior search results
// never feed back into a later search.
const SummaryTag = "search-results"

// noteURLPrefix is the scheme used to derive a note URL from its uuid.
const noteURLPrefix = "notes://"

// NoteURL derives the canonical URL for a note uuid. The URL is always
// computed, never stored, so it cannot drift from the uuid.
func NoteURL(uuid string) string {
	return noteURLPrefix + uuid
}

// DateFilterKind selects which note timestamp a date filter applies to.
type DateFilterKind string

const (
	DateFilterCreated DateFilterKind = "created"
	DateFilterUpdated DateFilterKind = "updated"
)

// BooleanRequirements are hard attachment/content requirements extracted
// from the query. A requirement set to true must hold for a candidate to
// be considered a full match.
type BooleanRequirements struct {
	ContainsPDF   bool
	ContainsImage bool
	ContainsURL   bool
}

// Any reports whether at least one boolean requirement is active.
func (b BooleanRequirements) Any() bool {
	return b.ContainsPDF || b.ContainsImage || b.ContainsURL
}

// DateFilter restricts candidates to notes created or updated after a
// point in time. It is applied in memory after retrieval, never pushed
// into the corpus query primitives.
type DateFilter struct {
	Kind  DateFilterKind
	After time.Time
}

// TagRequirement captures tag constraints. MustHave tags are hard
// requirements verified during confirmation; the Preferred tag only
// boosts candidates that carry it. All tags are stored normalized.
type TagRequirement struct {
	MustHave  []string
	Preferred string
}

// UserCriteria is the parsed intent of a search query. Instances are
// treated as immutable once constructed; every field is populated either
// from the judge extraction, a caller override, or a documented default.
type UserCriteria struct {
	PrimaryKeywords   []string
	SecondaryKeywords []string
	ExactPhrase       string
	Booleans          BooleanRequirements
	DateFilter        *DateFilter
	Tags              TagRequirement
	ResultCount       int
}

// HasHardRequirements reports whether confirmation has anything to
// verify: a boolean requirement, an exact phrase, or required tags.
func (c *UserCriteria) HasHardRequirements() bool {
	return c.Booleans.Any() || c.ExactPhrase != "" || len(c.Tags.MustHave) > 0
}

// CandidateChecks is the pass/fail map populated during confirmation.
type CandidateChecks struct {
	HasPDF          bool
	HasImage        bool
	HasURL          bool
	URLCount        int
	HasExactPhrase  bool
	HasRequiredTags bool
	MissingTags     []string
}

// ScoreBreakdown holds the judge's per-dimension scores (0-10) together
// with the heuristic match bonus blended into the final score.
type ScoreBreakdown struct {
	Coherence      float64
	TitleRelevance float64
	KeywordDensity float64
	CriteriaMatch  float64
	TagAlignment   float64
	Recency        float64
	MatchBonus     float64
}

// Candidate is a note under consideration, with identity, search-derived
// signals and evaluation results. The uuid is assigned at creation and
// never reassigned. Candidates are upserted (never duplicated) during
// collection and never deleted, only filtered out of the list that flows
// to the next phase.
type Candidate struct {
	UUID    string
	Name    string
	Tags    []string
	Created time.Time
	Updated time.Time

	// BodyContent is truncated at fetch time for cost control;
	// OriginalContentLength preserves the untruncated size.
	BodyContent           string
	OriginalContentLength int
	ContentFetched        bool

	// Retrieval signals, mutated during collection.
	MatchCount      int
	TagBoost        float64
	KeywordDensity  float64
	PreContentScore float64

	// Evaluation results, populated by later phases and never
	// retroactively cleared.
	Checks     *CandidateChecks
	FinalScore float64
	Breakdown  *ScoreBreakdown
	Reasoning  string
	Rank       int
}

// URL returns the derived note URL.
func (c *Candidate) URL() string {
	return NoteURL(c.UUID)
}

// RankedNote is one entry of the final result set.
type RankedNote struct {
	UUID      string
	Name      string
	URL       string
	Tags      []string
	Updated   time.Time
	Checks    *CandidateChecks
	Rank      int
	Reasoning string
	Score     float64
}

// SummaryRef identifies the published summary note.
type SummaryRef struct {
	UUID string
	Name string
	URL  string
}

// SearchResult is the pipeline's contract with its caller: always
// produced, with failure expressed in its fields rather than via errors
// (criteria extraction and collaborator transport failures excepted).
type SearchResult struct {
	Found       bool
	Confidence  float64
	Message     string
	Notes       []RankedNote
	SummaryNote *SummaryRef
	Suggestion  string
}

// Ranked converts a scored candidate into its result-set form.
func (c *Candidate) Ranked() RankedNote {
	return RankedNote{
		UUID:      c.UUID,
		Name:      c.Name,
		URL:       c.URL(),
		Tags:      c.Tags,
		Updated:   c.Updated,
		Checks:    c.Checks,
		Rank:      c.Rank,
		Reasoning: c.Reasoning,
		Score:     c.FinalScore,
	}
}
