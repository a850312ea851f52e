package study

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/01moynul/studybuddy-golang/internal/models"
	"go.uber.org/zap"
)

var errNothingGenerated = errors.New("model returned no flashcards")

// refundTimeout bounds the refund, which runs even after the request is gone.
const refundTimeout = 5 * time.Second

type GenerateResult struct {
	Flashcards     []models.Flashcard `json:"flashcards"`
	CreditsCharged int                `json:"creditsCharged"`
}

// Generate writes new flashcards for a material with the AI generator.
// Free accounts pay one credit per call; the credit is taken before the
// model is called and handed back if nothing gets stored.
func (s *Service) Generate(ctx context.Context, userID, materialID string) (GenerateResult, error) {
	// 1. --- Load the material (ownership check) ---
	material, err := s.repo.Material(ctx, userID, materialID)
	if err != nil {
		return GenerateResult{}, err
	}

	// 2. --- Charge a credit unless premium ---
	profile, err := s.repo.ProfileSummary(ctx, userID)
	if err != nil {
		return GenerateResult{}, err
	}

	charged := 0
	if !profile.OrZero().IsPremium() {
		ok, err := s.repo.ConsumeCredit(ctx, userID)
		if err != nil {
			return GenerateResult{}, err
		}
		if !ok {
			return GenerateResult{}, ErrNoCredits
		}
		charged = 1
	}

	// 3. --- Ask the model ---
	flashcards, err := s.generateAndStore(ctx, userID, material)
	if err != nil {
		if charged > 0 {
			s.refundCredit(ctx, userID)
		}
		return GenerateResult{}, err
	}

	// 4. --- Tell the user ---
	msg := fmt.Sprintf("%d flashcards generated from %s", len(flashcards), material.Title)
	if err := s.repo.AddNotification(ctx, userID, msg, "/materials/"+material.ID); err != nil {
		s.log.Warn("failed to add notification", zap.String("user_id", userID), zap.Error(err))
	}

	return GenerateResult{Flashcards: flashcards, CreditsCharged: charged}, nil
}

func (s *Service) generateAndStore(ctx context.Context, userID string, material models.StudyMaterial) ([]models.Flashcard, error) {
	cards, err := s.gen.Generate(ctx, material.Title, material.Content)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, errNothingGenerated
	}

	flashcards := s.newFlashcards(userID, material.ID, cards)
	err = s.tx.InTx(ctx, func(repo Repository) error {
		return repo.CreateFlashcards(ctx, flashcards)
	})
	if err != nil {
		return nil, err
	}

	return flashcards, nil
}

// refundCredit hands a charged credit back. It runs detached from ctx's
// cancellation so a dropped request still gets its credit.
func (s *Service) refundCredit(ctx context.Context, userID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refundTimeout)
	defer cancel()

	if err := s.repo.RefundCredit(ctx, userID); err != nil {
		s.log.Error("failed to refund credit", zap.String("user_id", userID), zap.Error(err))
	}
}
