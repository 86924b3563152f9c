package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "valid JSON untouched",
			in:   `{"score": 7, "reasoning": "good"}`,
			want: `{"score": 7, "reasoning": "good"}`,
		},
		{
			name: "missing opening quote after comma",
			in:   `{"score": 7, reasoning": "good"}`,
			want: `{"score": 7, "reasoning": "good"}`,
		},
		{
			name: "missing opening quote after brace",
			in:   `{score": 7}`,
			want: `{"score": 7}`,
		},
		{
			name: "empty string",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repairJSON(tt.in)
			assert.Equal(t, tt.want, got)
			if tt.want != "" {
				var parsed map[string]any
				require.NoError(t, json.Unmarshal([]byte(got), &parsed))
			}
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "no fence", in: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  {\"a\":1}  ", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}
