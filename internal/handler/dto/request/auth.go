package request

import (
	"encoding/json"

	"neighbiz/internal/domain/store"
	"neighbiz/internal/usecase/commands"
)

type RequestOTPRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Purpose string `json:"purpose" binding:"required"`
}

type VerifyOTPRequest struct {
	Phone      string `json:"phone" binding:"required"`
	Purpose    string `json:"purpose" binding:"required"`
	Code       string `json:"code" binding:"required"`
	DeviceInfo string `json:"device_info" binding:"max=255"`
}

func (r VerifyOTPRequest) ToCommand() commands.VerifyOTPRequest {
	return commands.VerifyOTPRequest{
		Phone:      r.Phone,
		Purpose:    r.Purpose,
		Code:       r.Code,
		DeviceInfo: r.DeviceInfo,
	}
}

type StoreProfileRequest struct {
	Name          string          `json:"name" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Phone         string          `json:"phone" binding:"required"`
	Address       string          `json:"address" binding:"required"`
	Description   *string         `json:"description,omitempty"`
	ImageKey      *string         `json:"image_key,omitempty"`
	BusinessHours json.RawMessage `json:"business_hours,omitempty" swaggertype:"object"`
}

func (r StoreProfileRequest) ToProfile() (store.Profile, error) {
	hours, err := store.ParseBusinessHours(r.BusinessHours)
	if err != nil {
		return store.Profile{}, err
	}
	return store.Profile{
		Name:          r.Name,
		Category:      r.Category,
		Phone:         r.Phone,
		Address:       r.Address,
		Description:   r.Description,
		ImageKey:      r.ImageKey,
		BusinessHours: hours,
	}, nil
}

type OwnerSignupRequest struct {
	Username   string              `json:"username" binding:"required"`
	Password   string              `json:"password" binding:"required"`
	Name       string              `json:"name" binding:"required"`
	Phone      string              `json:"phone" binding:"required"`
	Store      StoreProfileRequest `json:"store" binding:"required"`
	DeviceInfo string              `json:"device_info" binding:"max=255"`
}

func (r OwnerSignupRequest) ToCommand() (commands.OwnerSignupRequest, error) {
	profile, err := r.Store.ToProfile()
	if err != nil {
		return commands.OwnerSignupRequest{}, err
	}
	return commands.OwnerSignupRequest{
		Username:   r.Username,
		Password:   r.Password,
		Name:       r.Name,
		Phone:      r.Phone,
		Store:      profile,
		DeviceInfo: r.DeviceInfo,
	}, nil
}

type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	DeviceInfo string `json:"device_info" binding:"max=255"`
}

// RefreshRequest falls back to the refresh cookie when the body omits the token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
	DeviceInfo   string `json:"device_info" binding:"max=255"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type FindUsernameRequest struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (r ResetPasswordRequest) ToCommand() commands.ResetPasswordRequest {
	return commands.ResetPasswordRequest{
		Username:    r.Username,
		Phone:       r.Phone,
		Code:        r.Code,
		NewPassword: r.NewPassword,
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
