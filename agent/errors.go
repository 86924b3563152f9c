package agent

import "errors"

var (
	// ErrStoreRequired is returned by New when no note store is given.
	ErrStoreRequired = errors.New("note store is required")

	// ErrJudgeRequired is returned by New when no judge is given.
	ErrJudgeRequired = errors.New("judge is required")

	// ErrCriteriaExtraction is returned when the judge fails to produce
	// usable search criteria after all extraction attempts.
	ErrCriteriaExtraction = errors.New("criteria extraction failed")

	// ErrNoKeywords marks an extraction whose primary keyword list came
	// back empty. Such responses are retried, never searched with.
	ErrNoKeywords = errors.New("extraction produced no primary keywords")

	// ErrAnalysisMismatch is returned in strict mode when deep analysis
	// completes for fewer candidates than were submitted.
	ErrAnalysisMismatch = errors.New("deep analysis count mismatch")

	// ErrMalformedResponse marks a judge response that could not be
	// parsed even after coercion.
	ErrMalformedResponse = errors.New("malformed judge response")
)
