package handler

import (
	"context"
	"errors"

	"github.com/pkordes/sidequest/internal/domain"
	"github.com/pkordes/sidequest/internal/handler/gen"
)

// InviteParticipant handles POST /trips/{id}/invite.
// Only the owner may invite; a second invitation for the same user is 409.
func (s *Server) InviteParticipant(ctx context.Context, req gen.InviteParticipantRequestObject) (gen.InviteParticipantResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.InviteParticipant422JSONResponse(requestBody("request body is required")), nil
	}

	p, err := s.participants.Invite(ctx, userID, req.Id, req.Body.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return gen.InviteParticipant404JSONResponse(notFoundDetail(err, "trip not found")), nil
		case errors.Is(err, domain.ErrForbidden):
			return gen.InviteParticipant403JSONResponse(forbiddenBody(err)), nil
		case errors.Is(err, domain.ErrConflict):
			return gen.InviteParticipant409JSONResponse(conflictBody("user already invited")), nil
		case errors.Is(err, domain.ErrValidation):
			return gen.InviteParticipant422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.InviteParticipant201JSONResponse(participantToResponse(p)), nil
}

// RespondToInvite handles POST /trips/{id}/respond.
func (s *Server) RespondToInvite(ctx context.Context, req gen.RespondToInviteRequestObject) (gen.RespondToInviteResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.RespondToInvite422JSONResponse(requestBody("request body is required")), nil
	}

	p, err := s.participants.Respond(ctx, userID, req.Id, domain.ParticipantStatus(req.Body.Status))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RespondToInvite404JSONResponse(notFoundBody("invitation not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.RespondToInvite422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.RespondToInvite200JSONResponse(participantToResponse(p)), nil
}

// ListTripParticipants handles GET /trips/{id}/participants.
func (s *Server) ListTripParticipants(ctx context.Context, req gen.ListTripParticipantsRequestObject) (gen.ListTripParticipantsResponseObject, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	ps, err := s.participants.List(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListTripParticipants404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	data := make([]gen.Participant, len(ps))
	for i, p := range ps {
		data[i] = participantToResponse(p)
	}
	return gen.ListTripParticipants200JSONResponse{Data: data}, nil
}

func participantToResponse(p domain.Participant) gen.Participant {
	return gen.Participant{
		Id:        p.ID,
		TripId:    p.TripID,
		UserId:    p.UserID,
		Email:     p.Email,
		Name:      p.Name,
		Status:    gen.ParticipantStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
