package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateCriteria(t *testing.T) {
	valid := UserCriteria{
		PrimaryKeywords: []string{"meeting notes"},
		ResultCount:     1,
	}

	tests := []struct {
		name    string
		mutate  func(c *UserCriteria)
		wantErr error
	}{
		{name: "valid criteria", mutate: func(c *UserCriteria) {}, wantErr: nil},
		{
			name:    "no primary keywords",
			mutate:  func(c *UserCriteria) { c.PrimaryKeywords = nil },
			wantErr: ErrNoPrimaryKeywords,
		},
		{
			name:    "zero result count",
			mutate:  func(c *UserCriteria) { c.ResultCount = 0 },
			wantErr: ErrInvalidResultCount,
		},
		{
			name: "unknown date filter kind",
			mutate: func(c *UserCriteria) {
				c.DateFilter = &DateFilter{Kind: "accessed", After: time.Now()}
			},
			wantErr: ErrInvalidDateFilter,
		},
		{
			name: "zero date cutoff",
			mutate: func(c *UserCriteria) {
				c.DateFilter = &DateFilter{Kind: DateFilterCreated}
			},
			wantErr: ErrInvalidDateFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := valid
			tt.mutate(&criteria)

			err := ValidateCriteria(&criteria)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCriteria() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCriteria() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidCriteria) {
				t.Errorf("ValidateCriteria() = %v, want wrapped ErrInvalidCriteria", err)
			}
		})
	}

	if err := ValidateCriteria(nil); !errors.Is(err, ErrInvalidCriteria) {
		t.Errorf("ValidateCriteria(nil) = %v, want ErrInvalidCriteria", err)
	}
}

func TestValidateCandidate(t *testing.T) {
	if err := ValidateCandidate(&Candidate{UUID: "abc", TagBoost: 1.0}); err != nil {
		t.Errorf("ValidateCandidate() = %v, want nil", err)
	}

	if err := ValidateCandidate(&Candidate{}); !errors.Is(err, ErrEmptyUUID) {
		t.Errorf("ValidateCandidate() = %v, want ErrEmptyUUID", err)
	}

	if err := ValidateCandidate(nil); !errors.Is(err, ErrInvalidCandidate) {
		t.Errorf("ValidateCandidate(nil) = %v, want ErrInvalidCandidate", err)
	}
}

func TestNoteURL(t *testing.T) {
	candidate := Candidate{UUID: "uuid-1"}
	if candidate.URL() != NoteURL("uuid-1") {
		t.Errorf("Candidate.URL() = %q, want %q", candidate.URL(), NoteURL("uuid-1"))
	}
}
