package ai

import (
	"testing"

	"github.com/01moynul/studybuddy-golang/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    []importer.Card
		wantErr bool
	}{
		{
			name: "plain json",
			raw:  `[{"question":"What is DNA?","answer":"Deoxyribonucleic acid","difficulty":"Medium"}]`,
			want: []importer.Card{{Question: "What is DNA?", Answer: "Deoxyribonucleic acid", Difficulty: "medium"}},
		},
		{
			name: "fenced json",
			raw:  "```json\n[{\"question\":\"2+2\",\"answer\":\"4\"}]\n```",
			want: []importer.Card{{Question: "2+2", Answer: "4"}},
		},
		{
			name: "blank pairs dropped",
			raw:  `[{"question":" ","answer":"x"},{"question":"q","answer":"a","difficulty":"impossible"}]`,
			want: []importer.Card{{Question: "q", Answer: "a"}},
		},
		{
			name:    "not json",
			raw:     "Sure! Here are your flashcards:",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseCards(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héllo", truncate("héllo", 10))
	assert.Equal(t, "hé", truncate("héllo", 2))
}
