package identity

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gonotes/internal/identity/inbound"
	"github.com/shandysiswandi/gonotes/internal/identity/outbound/db"
	"github.com/shandysiswandi/gonotes/internal/identity/outbound/email"
	"github.com/shandysiswandi/gonotes/internal/identity/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/clock"
	"github.com/shandysiswandi/gonotes/internal/pkg/config"
	"github.com/shandysiswandi/gonotes/internal/pkg/hash"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/limiter"
	"github.com/shandysiswandi/gonotes/internal/pkg/mail"
	"github.com/shandysiswandi/gonotes/internal/pkg/otp"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/shandysiswandi/gonotes/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Attempts   limiter.AttemptLimiter     `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Codes      otp.Generator              `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMail := email.New(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		RepoMail:   repoMail,
		Attempts:   dep.Attempts,
		Validator:  dep.Validator,
		Config:     dep.Config,
		HMAC:       dep.HMAC,
		Codes:      dep.Codes,
		UID:        dep.UID,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
