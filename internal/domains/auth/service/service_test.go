package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"furever/config"
	"furever/infras/jwt"
	jwtMocks "furever/infras/jwt/mocks"
	mysqlMocks "furever/infras/mysql/mocks"
	"furever/infras/otel/mocks"
	"furever/internal/domains/auth/model/dto"
	"furever/internal/domains/auth/service"
	providerMocks "furever/internal/domains/provider/mocks"
	userMocks "furever/internal/domains/user/mocks"
	userModel "furever/internal/domains/user/model"
	"furever/shared/constant"
	gModel "furever/shared/model"
	"furever/shared/timezone"
)

type authMocks struct {
	userRepo     *userMocks.MockUser
	providerRepo *providerMocks.MockProvider
	txer         *mysqlMocks.MockTxer
	jwt          *jwtMocks.MockJWT
}

func newAuthService(t *testing.T) (service.Auth, authMocks) {
	ctrl := gomock.NewController(t)

	m := authMocks{
		userRepo:     userMocks.NewMockUser(ctrl),
		providerRepo: providerMocks.NewMockProvider(ctrl),
		txer:         mysqlMocks.NewMockTxer(ctrl),
		jwt:          jwtMocks.NewMockJWT(ctrl),
	}

	svc := service.New(m.userRepo, m.providerRepo, m.txer, &config.Config{}, mocks.NewOtel(), m.jwt)

	return svc, m
}

func runTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "fur parent registration",
			req: dto.RegisterRequest{
				Email:    "parent@example.com",
				Password: "password123",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			wantErr: false,
		},
		{
			name: "provider registration creates profile in same transaction",
			req: dto.RegisterRequest{
				Email:        "provider@example.com",
				Password:     "password123",
				Role:         constant.RoleProvider,
				BusinessName: stringPtr("Rainbow Bridge Cremations"),
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				m.providerRepo.EXPECT().InsertTxID(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(1), nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			req: dto.RegisterRequest{
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "user insert failure rolls back",
			req: dto.RegisterRequest{
				Email:    "parent@example.com",
				Password: "password123",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.txer.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				m.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(m)

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	// "password" hashed
	validUser := userModel.User{
		ID:         "user-id-123",
		Email:      "test@example.com",
		Password:   "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi",
		Level:      constant.RoleParent,
		FullName:   stringPtr("Test User"),
		IsVerified: true,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				m.jwt.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Level).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.LoginRequest{
				Email:    "nonexistent@example.com",
				Password: "password",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("user not found"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "wrongpassword",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive user",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func(m authMocks) {
				inactiveUser := validUser
				inactiveUser.Active = false

				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactiveUser, nil)
			},
			wantErr: true,
		},
		{
			name: "token generation error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				m.jwt.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Level).
					Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "update last login error",
			req: dto.LoginRequest{
				Email:    "test@example.com",
				Password: "password",
			},
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				m.jwt.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Level).
					Return(&jwt.TokenPair{
						AccessToken:  "access-token",
						RefreshToken: "refresh-token",
					}, nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(m)

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req: dto.RefreshTokenRequest{
				RefreshToken: "valid-refresh-token",
			},
			setupMock: func(m authMocks) {
				m.jwt.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{
						AccessToken:  "new-access-token",
						RefreshToken: "new-refresh-token",
					}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req: dto.RefreshTokenRequest{
				RefreshToken: "invalid-refresh-token",
			},
			setupMock: func(m authMocks) {
				m.jwt.EXPECT().
					RefreshTokens("invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(m)

			result, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	// "password" hashed
	validUser := userModel.User{
		ID:         "user-id-123",
		Email:      "test@example.com",
		Password:   "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi",
		Level:      constant.RoleParent,
		FullName:   stringPtr("Test User"),
		IsVerified: true,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		userID    string
		setupMock func(m authMocks)
		wantErr   bool
	}{
		{
			name: "successful password change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "user not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "nonexistent-id",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, errors.New("user not found"))
			},
			wantErr: true,
		},
		{
			name: "user exists but empty ID (not found case)",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrongpassword",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)
			},
			wantErr: true,
		},
		{
			name: "update password error",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "password",
				NewPassword:     "newpassword123",
			},
			userID: "user-id-123",
			setupMock: func(m authMocks) {
				m.userRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(validUser, nil)

				m.userRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setupMock(m)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")
			err := svc.ChangePassword(ctx, tt.req, tt.userID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Helper function to create string pointer
func stringPtr(s string) *string {
	return &s
}
