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

import "errors"

// Domain validation errors
var (
	// ErrInvalidCriteria indicates a UserCriteria failed validation.
	ErrInvalidCriteria = errors.New("invalid search criteria")

	// ErrNoPrimaryKeywords indicates criteria without primary keywords;
	// retrieval cannot proceed without them.
	ErrNoPrimaryKeywords = errors.New("primary keywords cannot be empty")

	// ErrInvalidResultCount indicates a result count below 1.
	ErrInvalidResultCount = errors.New("result count must be at least 1")

	// ErrInvalidDateFilter indicates an unknown date filter kind or a
	// zero cutoff time.
	ErrInvalidDateFilter = errors.New("invalid date filter")

	// ErrInvalidCandidate indicates a Candidate failed validation.
	ErrInvalidCandidate = errors.New("invalid candidate")

	// ErrEmptyUUID indicates a candidate without a uuid.
	ErrEmptyUUID = errors.New("uuid cannot be empty")
)
