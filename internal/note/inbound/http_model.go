package inbound

import (
	"strconv"
	"time"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
)

type CreateNoteRequest struct {
	Content string `json:"content"`
}

type Note struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateNoteResponse struct {
	Success bool `json:"success"`
	Note    Note `json:"note"`
}

type ListNotesResponse struct {
	Success bool   `json:"success"`
	Notes   []Note `json:"notes"`
}

type DeleteNoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func toNote(in entity.Note) Note {
	return Note{
		ID:        strconv.FormatInt(in.ID, 10),
		Content:   in.Content,
		CreatedAt: in.CreatedAt,
	}
}
