package dashboard

import (
	"math"

	"github.com/01moynul/studybuddy-golang/internal/models"
)

// AccuracyRate is the rounded percentage of correct answers, or 0 when
// nothing has been reviewed yet.
func AccuracyRate(progress models.Optional[models.ProgressSummary]) int {
	p := progress.OrZero()
	if p.Reviewed() <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.Correct()) / float64(p.Reviewed())))
}

// CreditsUsed is the number of credits spent from the monthly allotment.
// It goes negative when the balance exceeds the allotment.
func CreditsUsed(profile models.Optional[models.ProfileSummary]) int {
	return MonthlyCreditAllotment - profile.OrZero().Credits()
}

func CreditsUsedPercent(profile models.Optional[models.ProfileSummary]) float64 {
	return 100 * float64(CreditsUsed(profile)) / MonthlyCreditAllotment
}
