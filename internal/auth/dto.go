package auth

import "errors"

type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if dto.Username == "" {
		return errors.New("username is required")
	}
	if dto.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type AuthTokens struct {
	AccessToken        string `json:"access_token"`
	RefreshToken       string `json:"refresh_token"`
	MustChangePassword bool   `json:"must_change_password,omitempty"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (dto ChangePasswordDTO) Validate() error {
	if dto.CurrentPassword == "" {
		return errors.New("current password is required")
	}
	if len(dto.NewPassword) < 12 {
		return errors.New("new password must be at least 12 characters")
	}
	if dto.NewPassword == dto.CurrentPassword {
		return errors.New("new password must differ from the current one")
	}
	return nil
}
