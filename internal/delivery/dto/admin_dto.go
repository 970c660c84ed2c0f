package dto

// Request DTOs

type VerifyPasskeyRequest struct {
	Passkey string `json:"passkey" validate:"required,len=6"`
}
