package inbound

import (
	"github.com/shandysiswandi/gonotes/internal/note/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for note management.
type HTTPEndpoint struct {
	uc uc
}

// CreateNote stores a new note for the authenticated user.
// @Summary Create a note
// @Description Creates a note owned by the authenticated user.
// @Tags Note
// @Accept json
// @Produce json
// @Param request body CreateNoteRequest true "Note payload"
// @Success 200 {object} CreateNoteResponse "Created note"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /notes [post]
func (h *HTTPEndpoint) CreateNote(r *router.Request) (any, error) {
	var req CreateNoteRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CreateNote(r.Context(), usecase.CreateNoteInput{
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return CreateNoteResponse{
		Success: true,
		Note:    toNote(resp.Note),
	}, nil
}

// ListNotes returns all notes of the authenticated user, newest first.
// @Summary List notes
// @Description Returns every note owned by the authenticated user.
// @Tags Note
// @Produce json
// @Success 200 {object} ListNotesResponse "Notes"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /notes [get]
func (h *HTTPEndpoint) ListNotes(r *router.Request) (any, error) {
	resp, err := h.uc.ListNotes(r.Context())
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		notes = append(notes, toNote(n))
	}

	return ListNotesResponse{
		Success: true,
		Notes:   notes,
	}, nil
}

// DeleteNote removes a note owned by the authenticated user.
// @Summary Delete a note
// @Description Deletes the note when it exists and belongs to the authenticated user.
// @Tags Note
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} DeleteNoteResponse "Deleted"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 404 {object} router.errorResponse "Note not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *HTTPEndpoint) DeleteNote(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.DeleteNote(r.Context(), usecase.DeleteNoteInput{ID: id}); err != nil {
		return nil, err
	}

	return DeleteNoteResponse{
		Success: true,
		Message: "Note deleted successfully",
	}, nil
}
