package inbound

import (
	"context"

	"github.com/shandysiswandi/gonotes/internal/note/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
)

type uc interface {
	CreateNote(ctx context.Context, in usecase.CreateNoteInput) (*usecase.CreateNoteOutput, error)
	ListNotes(ctx context.Context) (*usecase.ListNotesOutput, error)
	DeleteNote(ctx context.Context, in usecase.DeleteNoteInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/notes", end.CreateNote)
	r.GET("/notes", end.ListNotes)
	r.DELETE("/notes/:id", end.DeleteNote)
}
