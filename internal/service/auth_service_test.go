package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"health-screen/internal/config"
	"health-screen/internal/domain"
	"health-screen/internal/dto"
)

var testAuthConfig = config.AuthConfig{
	JWT: config.JWTConfig{
		SecretKey:      "testsecretkeydontuseinproduction32bytes!",
		AccessTokenTTL: 15 * time.Minute,
	},
	BcryptCost: bcrypt.MinCost,
}

func newTestAuthService(t *testing.T, repo domain.UserRepository, cfg config.AuthConfig) AuthService {
	t.Helper()
	svc, err := NewAuthService(repo, cfg)
	require.NoError(t, err)
	return svc
}

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Email:        "Student@Uni.EDU ",
		Password:     "correct-horse",
		FullName:     "Test Student",
		AgeGroup:     "19-22",
		Faculty:      "Engineering",
		ConsentGiven: true,
	}
}

func TestNewAuthService_RequiresSecret(t *testing.T) {
	_, err := NewAuthService(new(MockUserRepository), config.AuthConfig{})
	assert.Error(t, err)
}

func TestAuthService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(t, repo, testAuthConfig)

	repo.On("GetUserByEmail", mock.Anything, "student@uni.edu").Return(nil, nil).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID != "" &&
			u.Email == "student@uni.edu" &&
			u.FullName == "Test Student" &&
			u.ConsentGiven &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")) == nil
	})).Return(nil).Once()

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)
	assert.Equal(t, "student@uni.edu", resp.User.Email)

	claims, err := svc.ValidateJWT(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_ConsentRequired(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(t, repo, testAuthConfig)
	req := validRegisterRequest()
	req.ConsentGiven = false

	_, err := svc.Register(context.Background(), req)
	assert.True(t, domain.IsCode(err, domain.CodeConsentRequired))
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(t, repo, testAuthConfig)
	repo.On("GetUserByEmail", mock.Anything, "student@uni.edu").Return(&domain.User{ID: "existing"}, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	assert.True(t, domain.IsCode(err, domain.CodeConflict))
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(t, repo, testAuthConfig)
	req := validRegisterRequest()
	req.Password = "short"
	req.AgeGroup = "99"

	_, err := svc.Register(context.Background(), req)
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: "01HX0000000000000000000000", Email: "student@uni.edu", PasswordHash: string(hash), AgeGroup: "19-22"}

	tests := []struct {
		name     string
		password string
		found    *domain.User
		repoErr  error
		wantCode domain.ErrorCode
	}{
		{name: "success", password: "correct-horse", found: user},
		{name: "wrong password", password: "wrong-horse", found: user, wantCode: domain.CodeUnauthorized},
		{name: "unknown email", password: "correct-horse", wantCode: domain.CodeUnauthorized},
		{name: "repository failure", password: "correct-horse", repoErr: errors.New("timeout"), wantCode: domain.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := newTestAuthService(t, repo, testAuthConfig)
			if tt.found != nil {
				repo.On("GetUserByEmail", mock.Anything, "student@uni.edu").Return(tt.found, nil)
			} else {
				repo.On("GetUserByEmail", mock.Anything, "student@uni.edu").Return(nil, tt.repoErr)
			}

			resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "student@uni.edu", Password: tt.password})
			if tt.wantCode != "" {
				assert.True(t, domain.IsCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, resp.User.ID)
			assert.NotEmpty(t, resp.AccessToken)
		})
	}
}

func TestAuthService_ValidateJWT(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository), testAuthConfig)
	user := &domain.User{ID: "user-123"}

	t.Run("valid", func(t *testing.T) {
		token, err := svc.CreateJWT(context.Background(), user)
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "access", claims.TokenType)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.ValidateJWT(context.Background(), "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("other secret", func(t *testing.T) {
		otherCfg := testAuthConfig
		otherCfg.JWT.SecretKey = "anothersecretkeythatisalsolongenough!!"
		other := newTestAuthService(t, new(MockUserRepository), otherCfg)
		token, err := other.CreateJWT(context.Background(), user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})

	t.Run("expired", func(t *testing.T) {
		expiredCfg := testAuthConfig
		expiredCfg.JWT.AccessTokenTTL = -time.Minute
		expired := newTestAuthService(t, new(MockUserRepository), expiredCfg)
		token, err := expired.CreateJWT(context.Background(), user)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidJWTToken)
	})
}

func TestAuthService_ConsentForm(t *testing.T) {
	svc := newTestAuthService(t, new(MockUserRepository), testAuthConfig)

	form := svc.ConsentForm()
	assert.Equal(t, ConsentFormVersion, form.Version)
	assert.NotEmpty(t, form.DataUsage)
	assert.NotEmpty(t, form.Rights)
	assert.Equal(t, dto.Disclaimer, form.Disclaimer)
}
