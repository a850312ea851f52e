// Package dashboard builds the signed-in user's dashboard view from their
// profile, progress and study materials.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/01moynul/studybuddy-golang/internal/models"
	"go.uber.org/zap"
)

const (
	// MonthlyCreditAllotment is the number of generation credits a free
	// account receives each month.
	MonthlyCreditAllotment = 20

	LowCreditThreshold   = 5
	RecentMaterialsLimit = 5
)

var ErrMissingUser = errors.New("user id is required")

// LoadFailedAlert is shown once per load no matter how many reads failed.
var LoadFailedAlert = Alert{
	Title:       "Error loading data",
	Description: "Failed to load your dashboard data. Please try refreshing.",
}

type ProfileReader interface {
	ProfileSummary(ctx context.Context, userID string) (models.Optional[models.ProfileSummary], error)
}

type ProgressReader interface {
	ProgressSummary(ctx context.Context, userID string) (models.Optional[models.ProgressSummary], error)
}

type MaterialReader interface {
	MaterialSummaries(ctx context.Context, userID string) ([]models.MaterialSummary, error)
}

type Repository interface {
	ProfileReader
	ProgressReader
	MaterialReader
}

type Alert struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type View struct {
	Profile         models.Optional[models.ProfileSummary]  `json:"profile"`
	Progress        models.Optional[models.ProgressSummary] `json:"progress"`
	Materials       []models.MaterialSummary                `json:"materials"`
	RecentMaterials []models.MaterialSummary                `json:"recentMaterials"`
	AccuracyRate    int                                     `json:"accuracyRate"`
	CreditsUsed     int                                     `json:"creditsUsed"`
	CreditsUsedPct  float64                                 `json:"creditsUsedPct"`
	IsPremium       bool                                    `json:"isPremium"`
	LowCredits      bool                                    `json:"lowCredits"`
	Alert           *Alert                                  `json:"alert"`
}

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Load reads the three projections concurrently and merges them. A failed
// read leaves its part at the zero value and sets Alert; it never fails the
// whole load. The only error returned is ErrMissingUser.
func (s *Service) Load(ctx context.Context, userID string) (View, error) {
	if userID == "" {
		return View{}, ErrMissingUser
	}

	var (
		wg        sync.WaitGroup
		profile   models.Optional[models.ProfileSummary]
		progress  models.Optional[models.ProgressSummary]
		materials []models.MaterialSummary

		profileErr, progressErr, materialsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		defer recoverInto(&profileErr)
		profile, profileErr = s.repo.ProfileSummary(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		defer recoverInto(&progressErr)
		progress, progressErr = s.repo.ProgressSummary(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		defer recoverInto(&materialsErr)
		materials, materialsErr = s.repo.MaterialSummaries(ctx, userID)
	}()
	wg.Wait()

	failed := false
	if profileErr != nil {
		s.log.Error("failed to load profile", zap.String("user_id", userID), zap.Error(profileErr))
		profile = models.None[models.ProfileSummary]()
		failed = true
	}
	if progressErr != nil {
		s.log.Error("failed to load progress", zap.String("user_id", userID), zap.Error(progressErr))
		progress = models.None[models.ProgressSummary]()
		failed = true
	}
	if materialsErr != nil {
		s.log.Error("failed to load materials", zap.String("user_id", userID), zap.Error(materialsErr))
		materials = nil
		failed = true
	}

	view := Build(profile, progress, materials)
	if failed {
		alert := LoadFailedAlert
		view.Alert = &alert
	}

	return view, nil
}

// recoverInto turns a panic in a fetch goroutine into that fetch's error.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("panic while loading: %v", r)
	}
}

// Build merges already-loaded parts into a View and derives its metrics.
func Build(profile models.Optional[models.ProfileSummary], progress models.Optional[models.ProgressSummary], materials []models.MaterialSummary) View {
	ordered := make([]models.MaterialSummary, len(materials))
	copy(ordered, materials)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
	})

	recent := ordered
	if len(recent) > RecentMaterialsLimit {
		recent = recent[:RecentMaterialsLimit]
	}

	p := profile.OrZero()

	return View{
		Profile:         profile,
		Progress:        progress,
		Materials:       ordered,
		RecentMaterials: recent,
		AccuracyRate:    AccuracyRate(progress),
		CreditsUsed:     CreditsUsed(profile),
		CreditsUsedPct:  CreditsUsedPercent(profile),
		IsPremium:       p.IsPremium(),
		LowCredits:      !p.IsPremium() && p.Credits() < LowCreditThreshold,
	}
}
