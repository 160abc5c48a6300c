package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
)

type CreateNoteInput struct {
	Content string `validate:"required,max=10000"`
}

type CreateNoteOutput struct {
	Note entity.Note
}

func (s *Usecase) CreateNote(ctx context.Context, in CreateNoteInput) (*CreateNoteOutput, error) {
	ctx, span := s.startSpan(ctx, "CreateNote")
	defer span.End()

	claims := jwt.GetAuth(ctx)
	if claims == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	in.Content = strings.TrimSpace(in.Content)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	note := entity.Note{
		ID:        s.uid.Generate(),
		UserID:    claims.UserID,
		Content:   in.Content,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repoDB.CreateNote(ctx, note); err != nil {
		slog.ErrorContext(ctx, "failed to create note", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &CreateNoteOutput{Note: note}, nil
}
