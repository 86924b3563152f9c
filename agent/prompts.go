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
	"fmt"
	"strings"
	"time"

	"github.com/alloy-org/notescout/core"
)

const extractionPromptTemplate = `You analyze a user's note-search request and extract structured search criteria.

Respond with ONLY a JSON object, no other text:
{
  "primaryKeywords": ["..."],
  "secondaryKeywords": ["..."],
  "exactPhrase": "",
  "booleanRequirements": {"containsPDF": false, "containsImage": false, "containsURL": false},
  "dateFilter": null,
  "tagRequirement": null,
  "resultCount": 0
}

Rules:
- primaryKeywords: 2-5 short phrases the note titles would contain. Prefer
  two-word phrases, singular form. Never empty.
- secondaryKeywords: related phrases worth trying if primary keywords find
  too little. May be empty.
- exactPhrase: set only when the user quotes text that must appear verbatim.
- booleanRequirements: set a flag true only when the user explicitly asks
  for an attachment, image, or link.
- dateFilter: {"type": "created"|"updated", "after": "YYYY-MM-DD"} when the
  user limits the time range, otherwise null.
- tagRequirement: {"mustHave": ["..."], "preferred": "..."} when the user
  names tags, otherwise null. Tags are lowercase, dash-separated, with "/"
  for hierarchy.
- resultCount: how many results the user asked for, 0 when unspecified.

User request: %q`

// buildExtractionPrompt renders the criteria extraction prompt.
func buildExtractionPrompt(query string) string {
	return fmt.Sprintf(extractionPromptTemplate, query)
}

const scoringPromptHeader = `You rank candidate notes against a user's search request.

Search request: %q
%s
Score EVERY candidate below on each dimension from 0 to 10:
- coherence: does the note as a whole answer the request?
- titleRelevance: how well the title matches the request.
- keywordDensity: how much of the body is about the requested topic.
- criteriaMatch: how well hard requirements (phrase, attachments, dates) hold.
- tagAlignment: how well the note's tags fit the request.
- recency: freshness, with anything updated in the last 12 months scoring high.

Respond with ONLY a JSON array, one object per candidate, no other text:
[{"uuid": "...", "coherence": 0, "titleRelevance": 0, "keywordDensity": 0, "criteriaMatch": 0, "tagAlignment": 0, "recency": 0, "reasoning": "..."}]

Keep reasoning to one sentence. If a note does not belong in the results at
all, include the words "poor match" in its reasoning.

Candidates:
%s`

// buildScoringPrompt renders the batch scoring prompt for one candidate
// pool.
func buildScoringPrompt(query string, criteria core.UserCriteria, candidates []*core.Candidate) string {
	var blocks strings.Builder
	for i, candidate := range candidates {
		fmt.Fprintf(&blocks, "%d. uuid: %s\n   title: %s\n", i+1, candidate.UUID, candidate.Name)
		if len(candidate.Tags) > 0 {
			fmt.Fprintf(&blocks, "   tags: %s\n", strings.Join(candidate.Tags, ", "))
		}
		if !candidate.Updated.IsZero() {
			fmt.Fprintf(&blocks, "   updated: %s\n", candidate.Updated.Format(time.DateOnly))
		}
		fmt.Fprintf(&blocks, "   title matches: %d, keyword density: %.2f%%\n",
			candidate.MatchCount, candidate.KeywordDensity)
		if candidate.ContentFetched {
			fmt.Fprintf(&blocks, "   body: %s\n", candidate.BodyContent)
		} else {
			blocks.WriteString("   body: (not fetched)\n")
		}
		blocks.WriteString("\n")
	}
	return fmt.Sprintf(scoringPromptHeader, query, describeCriteria(criteria), blocks.String())
}

const sanityPromptTemplate = `You review the top result of a note search and judge whether it truly answers the request.

Search request: %q
%s
Top result:
  title: %s
  tags: %s
  score: %.1f out of 10
  reasoning: %s

Respond with ONLY a JSON object, no other text:
{"confident": true, "action": "accept", "confidence": 0.0, "reason": "..."}

- confident: true only when the top result clearly answers the request.
- action: "accept" when confident, "retry_broader" when a wider search
  would likely do better, "insufficient_data" when the corpus simply lacks
  matching notes.
- confidence: your certainty from 0.0 to 1.0.
- reason: one sentence.`

// buildSanityPrompt renders the second-opinion prompt for the top result.
func buildSanityPrompt(query string, criteria core.UserCriteria, top *core.Candidate) string {
	tags := "(none)"
	if len(top.Tags) > 0 {
		tags = strings.Join(top.Tags, ", ")
	}
	return fmt.Sprintf(sanityPromptTemplate, query, describeCriteria(criteria),
		top.Name, tags, top.FinalScore, top.Reasoning)
}

// describeCriteria summarizes criteria as prompt context lines. Returns
// an empty string when nothing beyond keywords is set.
func describeCriteria(criteria core.UserCriteria) string {
	var lines []string
	if len(criteria.PrimaryKeywords) > 0 {
		lines = append(lines, "Primary keywords: "+strings.Join(criteria.PrimaryKeywords, ", "))
	}
	if len(criteria.SecondaryKeywords) > 0 {
		lines = append(lines, "Secondary keywords: "+strings.Join(criteria.SecondaryKeywords, ", "))
	}
	if criteria.ExactPhrase != "" {
		lines = append(lines, fmt.Sprintf("Required phrase: %q", criteria.ExactPhrase))
	}
	var needs []string
	if criteria.Booleans.ContainsPDF {
		needs = append(needs, "a PDF attachment")
	}
	if criteria.Booleans.ContainsImage {
		needs = append(needs, "an image")
	}
	if criteria.Booleans.ContainsURL {
		needs = append(needs, "a link")
	}
	if len(needs) > 0 {
		lines = append(lines, "Must contain: "+strings.Join(needs, ", "))
	}
	if criteria.DateFilter != nil {
		lines = append(lines, fmt.Sprintf("Only notes %s after %s",
			criteria.DateFilter.Kind, criteria.DateFilter.After.Format(time.DateOnly)))
	}
	if len(criteria.Tags.MustHave) > 0 {
		lines = append(lines, "Required tags: "+strings.Join(criteria.Tags.MustHave, ", "))
	}
	if criteria.Tags.Preferred != "" {
		lines = append(lines, "Preferred tag: "+criteria.Tags.Preferred)
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
