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

	"github.com/alloy-org/notescout/core"
)

const summaryTitleLimit = 60

// publish writes the result set into a new summary note tagged with
// core.SummaryTag and returns a reference to it. The tag keeps published
// summaries out of future candidate pools.
func (a *Agent) publish(ctx context.Context, query string, criteria core.UserCriteria, notes []core.RankedNote) (*core.SummaryRef, error) {
	title := summaryTitle(query)

	id, err := a.store.CreateNote(ctx, title, []string{core.SummaryTag})
	if err != nil {
		return nil, fmt.Errorf("creating summary note: %w", err)
	}

	if err := a.store.ReplaceNoteContent(ctx, id, buildSummaryMarkdown(query, criteria, notes)); err != nil {
		return nil, fmt.Errorf("writing summary note: %w", err)
	}

	return &core.SummaryRef{UUID: id, Name: title, URL: core.NoteURL(id)}, nil
}

func summaryTitle(query string) string {
	query = strings.TrimSpace(query)
	if runes := []rune(query); len(runes) > summaryTitleLimit {
		query = string(runes[:summaryTitleLimit]) + "…"
	}
	return "Search: " + query
}

// buildSummaryMarkdown renders the summary body: the query, the criteria
// it resolved to, and a table of ranked results linking each note.
func buildSummaryMarkdown(query string, criteria core.UserCriteria, notes []core.RankedNote) string {
	var b strings.Builder

	b.WriteString("# Search Results\n\n")
	fmt.Fprintf(&b, "**Query:** %s\n\n", query)
	fmt.Fprintf(&b, "**Searched:** %s\n\n", time.Now().UTC().Format(time.RFC3339))

	if summary := describeCriteria(criteria); summary != "" {
		b.WriteString("## Criteria\n\n")
		for _, line := range strings.Split(strings.TrimRight(summary, "\n"), "\n") {
			fmt.Fprintf(&b, "- %s\n", line)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Results\n\n")
	b.WriteString("| # | Note | Score | Tags | Reasoning |\n")
	b.WriteString("|---|------|-------|------|----------|\n")
	for _, note := range notes {
		tags := strings.Join(note.Tags, ", ")
		fmt.Fprintf(&b, "| %d | [%s](%s) | %.1f | %s | %s |\n",
			note.Rank, escapeCell(note.Name), note.URL, note.Score, escapeCell(tags), escapeCell(note.Reasoning))
	}

	return b.String()
}

func escapeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.ReplaceAll(text, "\n", " ")
}
