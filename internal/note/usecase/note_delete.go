package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
)

type DeleteNoteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) DeleteNote(ctx context.Context, in DeleteNoteInput) error {
	ctx, span := s.startSpan(ctx, "DeleteNote")
	defer span.End()

	claims := jwt.GetAuth(ctx)
	if claims == nil {
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewBusiness("Note not found", goerror.CodeNotFound)
	}

	deleted, err := s.repoDB.DeleteNoteByOwner(ctx, in.ID, claims.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete note", "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		// A note owned by someone else looks exactly like a missing one.
		return goerror.NewBusiness("Note not found", goerror.CodeNotFound)
	}

	return nil
}
