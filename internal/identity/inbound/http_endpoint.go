package inbound

import (
	"github.com/shandysiswandi/gonotes/internal/identity/usecase"
	"github.com/shandysiswandi/gonotes/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the passwordless login flow.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP issues a one-time password and emails it to the user.
// @Summary Request a one-time password
// @Description Registers the user on first contact, generates a fresh OTP and emails it. A repeat request replaces any previous pending code.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body SendOTPRequest true "OTP request payload"
// @Success 200 {object} SendOTPResponse "OTP sent"
// @Failure 400 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /otp/send-otp [post]
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{
		Name:  req.Name,
		DOB:   req.DOB,
		Email: req.Email,
	})
	if err != nil {
		return nil, err
	}

	return SendOTPResponse{
		Success: true,
		Message: "OTP sent successfully",
	}, nil
}

// VerifyOTP exchanges a valid one-time password for a session token.
// @Summary Verify a one-time password
// @Description Checks the submitted OTP against the pending code and returns a JWT on success. A code can only be redeemed once.
// @Tags Identity
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "OTP verification payload"
// @Success 200 {object} VerifyOTPResponse "Authenticated"
// @Failure 400 {object} router.errorResponse "Invalid or expired OTP"
// @Failure 404 {object} router.errorResponse "User not found"
// @Failure 429 {object} router.errorResponse "Too many attempts"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /otp/verify-otp [post]
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		OTP:   req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{
		Success: true,
		Token:   resp.Token,
		User: VerifyOTPUser{
			ID:    formatID(resp.ID),
			Name:  resp.Name,
			Email: resp.Email,
		},
	}, nil
}
