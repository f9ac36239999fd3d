package handler

import (
	"context"
	"errors"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// GetPreferences handles GET /onboarding/preferences.
// 404 means the caller has not completed onboarding yet.
func (s *Server) GetPreferences(ctx context.Context, _ gen.GetPreferencesRequestObject) (gen.GetPreferencesResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := s.prefs.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetPreferences404JSONResponse(notFoundBody("preferences not found")), nil
		}
		return nil, err
	}

	return gen.GetPreferences200JSONResponse(preferencesToResponse(prefs)), nil
}

// SavePreferences handles POST /onboarding/preferences.
// Saving again replaces the previous answers.
func (s *Server) SavePreferences(ctx context.Context, req gen.SavePreferencesRequestObject) (gen.SavePreferencesResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.SavePreferences422JSONResponse(requestBody("request body is required")), nil
	}

	saved, err := s.prefs.Save(ctx, userID, requestToPreferences(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.SavePreferences422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.SavePreferences200JSONResponse(preferencesToResponse(saved)), nil
}

// --- mapping helpers --------------------------------------------------------

func requestToPreferences(body gen.PreferencesInput) domain.Preferences {
	p := domain.Preferences{
		TripLength:       domain.TripLength(body.TripLength),
		DriverStatus:     domain.DriverStatus(body.DriverStatus),
		HasCar:           body.HasCar,
		FoodPreference:   domain.FoodPreference(body.FoodPreference),
		MealType:         domain.MealType(body.MealType),
		EatLocation:      domain.EatLocation(body.EatLocation),
		ScenicPreference: body.ScenicPreference,
		NatureLover:      body.NatureLover,
		Sightseeing:      body.Sightseeing,
	}
	if body.CarType != nil {
		p.CarType = domain.CarType(*body.CarType)
	}
	return p
}

// preferencesToResponse omits carType when none is set.
func preferencesToResponse(p domain.Preferences) gen.Preferences {
	resp := gen.Preferences{
		TripLength:       gen.TripLength(p.TripLength),
		DriverStatus:     gen.DriverStatus(p.DriverStatus),
		HasCar:           p.HasCar,
		FoodPreference:   gen.FoodPreference(p.FoodPreference),
		MealType:         gen.MealType(p.MealType),
		EatLocation:      gen.EatLocation(p.EatLocation),
		ScenicPreference: p.ScenicPreference,
		NatureLover:      p.NatureLover,
		Sightseeing:      p.Sightseeing,
		UpdatedAt:        p.UpdatedAt,
	}
	if p.CarType != domain.CarTypeNone {
		ct := gen.CarType(p.CarType)
		resp.CarType = &ct
	}
	return resp
}
