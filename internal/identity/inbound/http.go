package inbound

import (
	"context"

	"github.com/shandysiswandi/gonotes/internal/identity/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
)

type uc interface {
	SendOTP(ctx context.Context, in usecase.SendOTPInput) error
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/otp/send-otp", end.SendOTP)
	r.POST("/otp/verify-otp", end.VerifyOTP)
}
