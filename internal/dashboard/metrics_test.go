package dashboard

import (
	"testing"

	"github.com/01moynul/studybuddy-golang/internal/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestAccuracyRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress models.Optional[models.ProgressSummary]
		want     int
	}{
		{
			name:     "nothing reviewed",
			progress: models.Some(models.ProgressSummary{TotalFlashcardsReviewed: intPtr(0), TotalCorrectAnswers: intPtr(0)}),
			want:     0,
		},
		{
			name:     "seven of ten",
			progress: models.Some(models.ProgressSummary{TotalFlashcardsReviewed: intPtr(10), TotalCorrectAnswers: intPtr(7)}),
			want:     70,
		},
		{
			name:     "rounds half up",
			progress: models.Some(models.ProgressSummary{TotalFlashcardsReviewed: intPtr(8), TotalCorrectAnswers: intPtr(5)}),
			want:     63,
		},
		{
			name:     "rounds down",
			progress: models.Some(models.ProgressSummary{TotalFlashcardsReviewed: intPtr(3), TotalCorrectAnswers: intPtr(1)}),
			want:     33,
		},
		{
			name:     "null counters",
			progress: models.Some(models.ProgressSummary{}),
			want:     0,
		},
		{
			name:     "no progress row",
			progress: models.None[models.ProgressSummary](),
			want:     0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AccuracyRate(tt.progress))
		})
	}
}

func TestCreditsUsedPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		profile  models.Optional[models.ProfileSummary]
		wantUsed int
		wantPct  float64
	}{
		{
			name:     "untouched allotment",
			profile:  models.Some(models.ProfileSummary{CreditsRemaining: intPtr(20)}),
			wantUsed: 0,
			wantPct:  0,
		},
		{
			name:     "allotment spent",
			profile:  models.Some(models.ProfileSummary{CreditsRemaining: intPtr(0)}),
			wantUsed: 20,
			wantPct:  100,
		},
		{
			name:     "partly spent",
			profile:  models.Some(models.ProfileSummary{CreditsRemaining: intPtr(15)}),
			wantUsed: 5,
			wantPct:  25,
		},
		{
			name:     "balance above allotment is not clamped",
			profile:  models.Some(models.ProfileSummary{CreditsRemaining: intPtr(25)}),
			wantUsed: -5,
			wantPct:  -25,
		},
		{
			name:     "no profile row reads as zero credits",
			profile:  models.None[models.ProfileSummary](),
			wantUsed: 20,
			wantPct:  100,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantUsed, CreditsUsed(tt.profile))
			assert.InDelta(t, tt.wantPct, CreditsUsedPercent(tt.profile), 1e-9)
		})
	}
}
