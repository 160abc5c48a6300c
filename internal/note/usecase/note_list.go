package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
)

type ListNotesOutput struct {
	Notes []entity.Note
}

func (s *Usecase) ListNotes(ctx context.Context) (*ListNotesOutput, error) {
	ctx, span := s.startSpan(ctx, "ListNotes")
	defer span.End()

	claims := jwt.GetAuth(ctx)
	if claims == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	notes, err := s.repoDB.ListNotesByOwner(ctx, claims.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list notes", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListNotesOutput{Notes: notes}, nil
}
