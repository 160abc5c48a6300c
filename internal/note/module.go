package note

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gonotes/internal/note/inbound"
	"github.com/shandysiswandi/gonotes/internal/note/outbound/db"
	"github.com/shandysiswandi/gonotes/internal/note/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/clock"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		Validator:  dep.Validator,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
