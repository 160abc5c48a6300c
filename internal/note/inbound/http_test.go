package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
	"github.com/shandysiswandi/gonotes/internal/note/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/config"
	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsecase struct {
	createOut *usecase.CreateNoteOutput
	createErr error
	listOut   *usecase.ListNotesOutput
	listErr   error
	deleteIn  usecase.DeleteNoteInput
	deleteErr error
}

func (f *fakeUsecase) CreateNote(_ context.Context, _ usecase.CreateNoteInput) (*usecase.CreateNoteOutput, error) {
	return f.createOut, f.createErr
}

func (f *fakeUsecase) ListNotes(context.Context) (*usecase.ListNotesOutput, error) {
	return f.listOut, f.listErr
}

func (f *fakeUsecase) DeleteNote(_ context.Context, in usecase.DeleteNoteInput) error {
	f.deleteIn = in
	return f.deleteErr
}

type fakeJWT struct{}

func (fakeJWT) Generate(int64, string) (string, error) { return "", nil }

func (fakeJWT) Verify(string) (jwt.Claims, error) {
	return jwt.Claims{UserID: 7, UserEmail: "jane@example.com"}, nil
}

func newTestRouter(t *testing.T, uc uc) *router.Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app: {}\n"))
	require.NoError(t, err)

	r := router.NewRouter(router.Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        fakeJWT{},
		Instrument: instrument.NewNoop(),
	})
	RegisterHTTPEndpoint(r, uc)

	return r
}

func do(r *router.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer token")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func TestCreateNoteEndpoint(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeUsecase{createOut: &usecase.CreateNoteOutput{Note: entity.Note{
		ID:        42,
		UserID:    7,
		Content:   "remember the milk",
		CreatedAt: created,
	}}}
	r := newTestRouter(t, uc)

	rec := do(r, http.MethodPost, "/notes", `{"content":"remember the milk"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Note    struct {
			ID        string    `json:"id"`
			Content   string    `json:"content"`
			CreatedAt time.Time `json:"created_at"`
		} `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "42", body.Note.ID)
	assert.Equal(t, "remember the milk", body.Note.Content)
	assert.True(t, created.Equal(body.Note.CreatedAt))
	assert.NotContains(t, rec.Body.String(), "user_id", "owner id is implicit")
}

func TestListNotesEndpoint(t *testing.T) {
	t.Parallel()

	uc := &fakeUsecase{listOut: &usecase.ListNotesOutput{Notes: []entity.Note{
		{ID: 2, UserID: 7, Content: "second"},
		{ID: 1, UserID: 7, Content: "first"},
	}}}
	r := newTestRouter(t, uc)

	rec := do(r, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Notes   []struct {
			ID      string `json:"id"`
			Content string `json:"content"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	require.Len(t, body.Notes, 2)
	assert.Equal(t, "2", body.Notes[0].ID)
	assert.Equal(t, "1", body.Notes[1].ID)
}

func TestListNotesEndpoint_EmptyIsArray(t *testing.T) {
	t.Parallel()

	uc := &fakeUsecase{listOut: &usecase.ListNotesOutput{Notes: []entity.Note{}}}
	r := newTestRouter(t, uc)

	rec := do(r, http.MethodGet, "/notes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes":[]`)
}

func TestDeleteNoteEndpoint(t *testing.T) {
	t.Parallel()

	uc := &fakeUsecase{}
	r := newTestRouter(t, uc)

	rec := do(r, http.MethodDelete, "/notes/42", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Note deleted successfully", body["message"])
	assert.Equal(t, int64(42), uc.deleteIn.ID)
}

func TestDeleteNoteEndpoint_NotFound(t *testing.T) {
	t.Parallel()

	uc := &fakeUsecase{deleteErr: goerror.NewBusiness("Note not found", goerror.CodeNotFound)}
	r := newTestRouter(t, uc)

	rec := do(r, http.MethodDelete, "/notes/42", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Note not found", body["message"])
}

func TestDeleteNoteEndpoint_BadID(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, &fakeUsecase{})

	rec := do(r, http.MethodDelete, "/notes/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
