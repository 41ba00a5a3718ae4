package dto

import (
	"furever/infras/jwt"
	providerModel "furever/internal/domains/provider/model"
	userModel "furever/internal/domains/user/model"
	"furever/shared/constant"
	gModel "furever/shared/model"
	"furever/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role"     validate:"omitempty,oneof=fur_parent cremation_provider"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`

	// Provider registration only.
	BusinessName    *string `json:"business_name,omitempty"    validate:"omitempty,max=150"`
	BusinessAddress *string `json:"business_address,omitempty"`
	BusinessPhone   *string `json:"business_phone,omitempty"`
}

func (r *RegisterRequest) Level() string {
	if r.Role == "" {
		return constant.RoleParent
	}

	return r.Role
}

func (r *RegisterRequest) ToUserModel(username string, hashedPassword string) userModel.User {
	return userModel.User{
		ID:         uuid.NewString(),
		Email:      r.Email,
		Password:   hashedPassword,
		Level:      r.Level(),
		FullName:   r.FullName,
		Phone:      r.Phone,
		IsVerified: false,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

// ToProviderModel builds the provider profile that accompanies a
// cremation_provider registration. The business name falls back to the
// account's full name.
func (r *RegisterRequest) ToProviderModel(userID, username string) providerModel.Provider {
	name := r.Email
	if r.BusinessName != nil && *r.BusinessName != "" {
		name = *r.BusinessName
	} else if r.FullName != nil && *r.FullName != "" {
		name = *r.FullName
	}

	return providerModel.Provider{
		UserID:  userID,
		Name:    name,
		Address: r.BusinessAddress,
		Phone:   r.BusinessPhone,
		Active:  true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
