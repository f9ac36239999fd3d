package handler

import (
	"context"
	"errors"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// GetTripRecommendations handles GET /trips/recommendations.
// The whole catalog is returned, best match first.
func (s *Server) GetTripRecommendations(ctx context.Context, _ gen.GetTripRecommendationsRequestObject) (gen.GetTripRecommendationsResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.recs.Recommend(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferencesRequired) {
			return gen.GetTripRecommendations400JSONResponse(preferencesRequiredBody()), nil
		}
		return nil, err
	}

	data := make([]gen.Recommendation, len(recs))
	for i, r := range recs {
		data[i] = gen.Recommendation{
			Destination:       r.Destination,
			Description:       r.Description,
			Distance:          r.Distance,
			EstimatedDuration: r.EstimatedDuration,
			MatchScore:        r.MatchScore,
			Highlights:        r.Highlights,
			Lat:               r.Lat,
			Lng:               r.Lng,
		}
		if data[i].Highlights == nil {
			data[i].Highlights = []string{}
		}
	}
	return gen.GetTripRecommendations200JSONResponse{Data: data}, nil
}
