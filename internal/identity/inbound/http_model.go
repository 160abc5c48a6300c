package inbound

import "strconv"

type SendOTPRequest struct {
	Name  string `json:"name"`
	DOB   string `json:"dob"`
	Email string `json:"email"`
}

type SendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyOTPUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VerifyOTPResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	User    VerifyOTPUser `json:"user"`
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
