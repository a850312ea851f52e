package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Card
	}{
		{
			name:  "simple pair",
			input: "Q: What is the capital of France?\nA: Paris",
			want:  []Card{{Question: "What is the capital of France?", Answer: "Paris"}},
		},
		{
			name: "multiline answer",
			input: `
Q: What are the primary colors?
A: Red
Blue
Yellow
`,
			want: []Card{{Question: "What are the primary colors?", Answer: "Red\nBlue\nYellow"}},
		},
		{
			name: "two cards separated by a blank line",
			input: `
Q: First question
A: First answer

Q: Second question
A: Second answer
`,
			want: []Card{
				{Question: "First question", Answer: "First answer"},
				{Question: "Second question", Answer: "Second answer"},
			},
		},
		{
			name: "separator ends a card",
			input: `Q: One
A: 1
---
Some notes that belong to no card
Q: Two
A: 2`,
			want: []Card{
				{Question: "One", Answer: "1"},
				{Question: "Two", Answer: "2"},
			},
		},
		{
			name:  "question without answer is dropped",
			input: "Q: Orphan\n\nQ: Kept\nA: yes",
			want:  []Card{{Question: "Kept", Answer: "yes"}},
		},
		{
			name:  "plain notes",
			input: "Photosynthesis converts light into chemical energy.",
			want:  nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseMarkdown(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindText, Kind("notes.TXT"))
	assert.Equal(t, KindMarkdown, Kind("chapter1.md"))
	assert.Equal(t, KindSpreadsheet, Kind("deck.xlsx"))
	assert.Equal(t, "", Kind("slides.pdf"))
	assert.Equal(t, "", Kind("noext"))
}
