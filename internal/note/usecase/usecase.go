package usecase

import (
	"context"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
	"github.com/shandysiswandi/gonotes/internal/pkg/clock"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateNote(ctx context.Context, in entity.Note) error

	// ListNotesByOwner returns the owner's notes, newest first.
	ListNotesByOwner(ctx context.Context, userID int64) ([]entity.Note, error)

	// DeleteNoteByOwner removes the note only when it belongs to the given
	// owner. It reports whether a row was deleted, so a foreign note and a
	// missing note are indistinguishable to the caller.
	DeleteNoteByOwner(ctx context.Context, id, userID int64) (bool, error)
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("note.usecase").Start(ctx, name)
}
