package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/catalog"
	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/planner"
	"github.com/pkordes/sidequest/internal/repo"
)

// RecommendationService ranks the destination catalog for a user.
type RecommendationService struct {
	prefs repo.PreferenceRepo
}

// NewRecommendationService constructs a RecommendationService.
func NewRecommendationService(prefs repo.PreferenceRepo) *RecommendationService {
	return &RecommendationService{prefs: prefs}
}

// Recommend returns every catalog destination scored against the user's
// preferences, best match first.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID) ([]domain.Recommendation, error) {
	prefs, err := loadPreferences(ctx, s.prefs, userID)
	if err != nil {
		return nil, fmt.Errorf("service.RecommendationService.Recommend: %w", err)
	}
	return planner.Recommend(prefs, catalog.Destinations()), nil
}
