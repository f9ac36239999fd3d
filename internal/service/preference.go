package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/repo"
)

// PreferenceService implements the onboarding survey.
type PreferenceService struct {
	repo repo.PreferenceRepo
}

// NewPreferenceService constructs a PreferenceService backed by the provided repo.
func NewPreferenceService(r repo.PreferenceRepo) *PreferenceService {
	return &PreferenceService{repo: r}
}

// Save validates and stores the user's preferences, replacing any earlier
// answers. Saving the same answers twice leaves the same state.
func (s *PreferenceService) Save(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) (domain.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Save: %w", err)
	}
	prefs = prefs.Normalize()
	prefs.UserID = userID

	saved, err := s.repo.Upsert(ctx, prefs)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Save: %w", err)
	}
	return saved, nil
}

// Get returns the user's preferences, or domain.ErrNotFound before onboarding.
func (s *PreferenceService) Get(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("service.PreferenceService.Get: %w", err)
	}
	return p, nil
}
