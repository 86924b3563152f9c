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


package core

// CriteriaOverrides carries caller-supplied values that take precedence
// over judge-extracted criteria, field by field. Nil fields are unset and
// leave the extracted value in place.
type CriteriaOverrides struct {
	PrimaryKeywords   []string
	SecondaryKeywords []string
	ExactPhrase       *string
	ContainsPDF       *bool
	ContainsImage     *bool
	ContainsURL       *bool
	DateFilter        *DateFilter
	MustHaveTags      []string
	PreferredTag      *string
	ResultCount       *int
}

// MergeCriteria combines judge-extracted criteria with caller overrides.
// Every override field strictly wins over the extracted value; unset
// fields keep the extracted value; missing values receive their defaults.
// The returned criteria is always fully populated.
func MergeCriteria(extracted UserCriteria, overrides *CriteriaOverrides) UserCriteria {
	merged := extracted

	if overrides != nil {
		if overrides.PrimaryKeywords != nil {
			merged.PrimaryKeywords = overrides.PrimaryKeywords
		}
		if overrides.SecondaryKeywords != nil {
			merged.SecondaryKeywords = overrides.SecondaryKeywords
		}
		if overrides.ExactPhrase != nil {
			merged.ExactPhrase = *overrides.ExactPhrase
		}
		if overrides.ContainsPDF != nil {
			merged.Booleans.ContainsPDF = *overrides.ContainsPDF
		}
		if overrides.ContainsImage != nil {
			merged.Booleans.ContainsImage = *overrides.ContainsImage
		}
		if overrides.ContainsURL != nil {
			merged.Booleans.ContainsURL = *overrides.ContainsURL
		}
		if overrides.DateFilter != nil {
			df := *overrides.DateFilter
			merged.DateFilter = &df
		}
		if overrides.MustHaveTags != nil {
			merged.Tags.MustHave = NormalizeTags(overrides.MustHaveTags)
		}
		if overrides.PreferredTag != nil {
			merged.Tags.Preferred = NormalizeTag(*overrides.PreferredTag)
		}
		if overrides.ResultCount != nil {
			merged.ResultCount = *overrides.ResultCount
		}
	}

	if merged.ResultCount < 1 {
		merged.ResultCount = DefaultResultCount
	}
	if merged.SecondaryKeywords == nil {
		merged.SecondaryKeywords = []string{}
	}

	return merged
}
