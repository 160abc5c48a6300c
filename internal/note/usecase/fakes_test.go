package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

type fakeRepoDB struct {
	notes map[int64]entity.Note

	createErr error
	listErr   error
	deleteErr error
}

func newFakeRepoDB() *fakeRepoDB {
	return &fakeRepoDB{notes: make(map[int64]entity.Note)}
}

func (f *fakeRepoDB) CreateNote(_ context.Context, in entity.Note) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.notes[in.ID] = in
	return nil
}

func (f *fakeRepoDB) ListNotesByOwner(_ context.Context, userID int64) ([]entity.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	result := make([]entity.Note, 0)
	for _, n := range f.notes {
		if n.UserID == userID {
			result = append(result, n)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}

func (f *fakeRepoDB) DeleteNoteByOwner(_ context.Context, id, userID int64) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}

	n, ok := f.notes[id]
	if !ok || n.UserID != userID {
		return false, nil
	}

	delete(f.notes, id)
	return true, nil
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type fakeNumberID struct {
	next int64
}

func (f *fakeNumberID) Generate() int64 {
	f.next++
	return f.next
}

type fixture struct {
	uc     *Usecase
	repoDB *fakeRepoDB
	clock  *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	f := &fixture{
		repoDB: newFakeRepoDB(),
		clock:  &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}

	f.uc = New(Dependency{
		RepoDB:     f.repoDB,
		Validator:  v,
		UID:        &fakeNumberID{},
		Clock:      f.clock,
		Instrument: instrument.NewNoop(),
	})

	return f
}

func authedCtx(t *testing.T, userID int64) context.Context {
	t.Helper()

	return jwt.SetAuth(t.Context(), jwt.Claims{UserID: userID, UserEmail: "user@example.com"})
}
