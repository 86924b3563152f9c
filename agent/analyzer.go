// Copyright 2025 The Notescout Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alloy-org/notescout/ai"
	"github.com/alloy-org/notescout/core"
)

// extraction mirrors the JSON shape the extraction prompt asks for.
type extraction struct {
	PrimaryKeywords   stringList `json:"primaryKeywords"`
	SecondaryKeywords stringList `json:"secondaryKeywords"`
	ExactPhrase       string     `json:"exactPhrase"`
	Booleans          struct {
		ContainsPDF   bool `json:"containsPDF"`
		ContainsImage bool `json:"containsImage"`
		ContainsURL   bool `json:"containsURL"`
	} `json:"booleanRequirements"`
	DateFilter *struct {
		Type  string `json:"type"`
		After string `json:"after"`
	} `json:"dateFilter"`
	TagRequirement *struct {
		MustHave  stringList `json:"mustHave"`
		Preferred string     `json:"preferred"`
	} `json:"tagRequirement"`
	ResultCount int `json:"resultCount"`
}

// analyze extracts search criteria from the query and merges caller
// overrides on top. Extraction is attempted up to ExtractAttempts times,
// rotating through the preferred models; a response without primary
// keywords counts as a failed attempt. Exhausting all attempts is a hard
// error because nothing downstream can run without keywords.
func (a *Agent) analyze(ctx context.Context, query string, overrides *core.CriteriaOverrides) (core.UserCriteria, error) {
	prompt := buildExtractionPrompt(query)
	models := a.models
	if len(models) == 0 {
		models = []string{""}
	}

	var lastErr error
	for attempt := 0; attempt < a.limits.ExtractAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return core.UserCriteria{}, err
		}

		model := models[attempt%len(models)]
		opts := []ai.CallOption{ai.WithJSONResponse()}
		if model != "" {
			opts = append(opts, ai.WithModel(model))
		}

		raw, err := a.judge.Complete(ctx, prompt, opts...)
		if err != nil {
			lastErr = err
			a.logger.Warn("criteria extraction attempt failed",
				"attempt", attempt+1, "model", model, "err", err)
			continue
		}

		var ext extraction
		if err := decodeJSON(raw, &ext); err != nil {
			lastErr = err
			a.logger.Warn("criteria extraction returned unparseable JSON",
				"attempt", attempt+1, "model", model, "err", err)
			continue
		}

		criteria := criteriaFromExtraction(ext)
		if len(criteria.PrimaryKeywords) == 0 {
			lastErr = ErrNoKeywords
			a.logger.Warn("criteria extraction returned no primary keywords",
				"attempt", attempt+1, "model", model)
			continue
		}

		merged := core.MergeCriteria(criteria, overrides)
		a.logger.Debug("criteria extracted",
			"primary", merged.PrimaryKeywords,
			"secondary", merged.SecondaryKeywords,
			"hard_requirements", merged.HasHardRequirements())
		return merged, nil
	}

	return core.UserCriteria{}, fmt.Errorf("%w: %w", ErrCriteriaExtraction, lastErr)
}

// criteriaFromExtraction converts the raw extraction into domain
// criteria: keywords trimmed and de-blanked, tags normalized, date
// strings parsed. Unusable fragments are dropped rather than failing the
// whole extraction.
func criteriaFromExtraction(ext extraction) core.UserCriteria {
	criteria := core.UserCriteria{
		PrimaryKeywords:   cleanKeywords(ext.PrimaryKeywords),
		SecondaryKeywords: cleanKeywords(ext.SecondaryKeywords),
		ExactPhrase:       strings.TrimSpace(ext.ExactPhrase),
		ResultCount:       ext.ResultCount,
	}
	criteria.Booleans = core.BooleanRequirements{
		ContainsPDF:   ext.Booleans.ContainsPDF,
		ContainsImage: ext.Booleans.ContainsImage,
		ContainsURL:   ext.Booleans.ContainsURL,
	}

	if ext.DateFilter != nil {
		if after, ok := parseDate(ext.DateFilter.After); ok {
			kind := core.DateFilterKind(strings.ToLower(strings.TrimSpace(ext.DateFilter.Type)))
			if kind != core.DateFilterCreated {
				kind = core.DateFilterUpdated
			}
			criteria.DateFilter = &core.DateFilter{Kind: kind, After: after}
		}
	}

	if ext.TagRequirement != nil {
		criteria.Tags = core.TagRequirement{
			MustHave:  core.NormalizeTags(ext.TagRequirement.MustHave),
			Preferred: core.NormalizeTag(ext.TagRequirement.Preferred),
		}
	}

	return criteria
}

func cleanKeywords(keywords []string) []string {
	cleaned := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		cleaned = append(cleaned, keyword)
	}
	return cleaned
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
