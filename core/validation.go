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

import "fmt"

// ValidateCriteria validates a UserCriteria according to domain rules.
//
// Validation rules:
//   - PrimaryKeywords must be non-empty
//   - ResultCount must be >= 1
//   - DateFilter, if present, must use a known kind and a non-zero cutoff
//
// NOT validated (optional by design):
//   - SecondaryKeywords, ExactPhrase, Tags (all may be empty)
func ValidateCriteria(criteria *UserCriteria) error {
	if criteria == nil {
		return fmt.Errorf("%w: criteria is nil", ErrInvalidCriteria)
	}

	if len(criteria.PrimaryKeywords) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrNoPrimaryKeywords)
	}

	if criteria.ResultCount < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidCriteria, ErrInvalidResultCount)
	}

	if df := criteria.DateFilter; df != nil {
		if df.Kind != DateFilterCreated && df.Kind != DateFilterUpdated {
			return fmt.Errorf("%w: %w: unknown kind %q", ErrInvalidCriteria, ErrInvalidDateFilter, df.Kind)
		}
		if df.After.IsZero() {
			return fmt.Errorf("%w: %w: zero cutoff", ErrInvalidCriteria, ErrInvalidDateFilter)
		}
	}

	return nil
}

// ValidateCandidate validates a Candidate according to domain rules.
func ValidateCandidate(candidate *Candidate) error {
	if candidate == nil {
		return fmt.Errorf("%w: candidate is nil", ErrInvalidCandidate)
	}

	if candidate.UUID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCandidate, ErrEmptyUUID)
	}

	if candidate.MatchCount < 0 {
		return fmt.Errorf("%w: negative match count", ErrInvalidCandidate)
	}

	return nil
}
