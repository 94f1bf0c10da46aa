package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"health-screen/internal/config"
	"health-screen/internal/domain"
	"health-screen/internal/dto"
	"health-screen/internal/logger"
	"health-screen/internal/util"
	"health-screen/internal/validation"
)

const (
	tokenTypeAccess = "access"
	tokenTypeBearer = "Bearer"
)

var ErrInvalidJWTToken = errors.New("invalid jwt token")

// ConsentFormVersion identifies the consent text users agree to.
const ConsentFormVersion = "1.0"

// AuthService defines the interface for authentication operations.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, user *domain.User) (string, error)
	ConsentForm() domain.ConsentForm
}

type authServiceImpl struct {
	userRepo  domain.UserRepository
	validator *validation.Validator
	jwtConfig config.JWTConfig
	cost      int
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, authConfig config.AuthConfig) (AuthService, error) {
	if authConfig.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}
	cost := authConfig.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &authServiceImpl{
		userRepo:  userRepo,
		validator: validation.NewValidator(),
		jwtConfig: authConfig.JWT,
		cost:      cost,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)
	if errs := s.validator.ValidateRegisterRequest(email, req.Password, req.AgeGroup); len(errs) > 0 {
		return nil, errs
	}
	if !req.ConsentGiven {
		return nil, domain.NewConsentRequiredError()
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if existing != nil {
		return nil, domain.NewConflictError("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, domain.NewInternalError("failed to hash password", err)
	}

	user := domain.NewUser(email, string(hash), req.AgeGroup)
	user.ID = util.NewULID()
	user.FullName = strings.TrimSpace(req.FullName)
	user.Gender = req.Gender
	user.Faculty = req.Faculty

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, domain.NewInternalError("failed to create user", err)
	}
	logger.Get().Info("User registered", zap.String("userID", user.ID), zap.String("ageGroup", user.AgeGroup))

	return s.tokenResponse(ctx, user)
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)
	if errs := s.validator.ValidateLoginRequest(email, req.Password); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, domain.NewInternalError("failed to look up user", err)
	}
	if user == nil {
		return nil, domain.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Get().Warn("Failed login attempt", zap.String("userID", user.ID))
		return nil, domain.NewUnauthorizedError("Invalid email or password")
	}

	logger.Get().Info("User logged in", zap.String("userID", user.ID))
	return s.tokenResponse(ctx, user)
}

func (s *authServiceImpl) tokenResponse(ctx context.Context, user *domain.User) (*dto.TokenResponse, error) {
	token, err := s.CreateJWT(ctx, user)
	if err != nil {
		return nil, domain.NewInternalError("failed to create access token", err)
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.jwtConfig.AccessTokenTTL / time.Second),
		User:        toUserProfile(user),
	}, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, user *domain.User) (string, error) {
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:    user.ID,
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.SecretKey))
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Debug("JWT token expired", zap.Error(err))
		} else {
			logger.Get().Warn("JWT validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	claims, ok := token.Claims.(*dto.AuthClaims)
	if !ok || !token.Valid || claims.TokenType != tokenTypeAccess {
		return nil, ErrInvalidJWTToken
	}
	return claims, nil
}

func (s *authServiceImpl) ConsentForm() domain.ConsentForm {
	return domain.ConsentForm{
		Title:   "Consent to participate in the student health screening",
		Version: ConsentFormVersion,
		Purpose: "The screening estimates health risks related to study habits: posture, eye strain, stress, sleep and physical activity.",
		DataUsage: []string{
			"Survey answers are used to compute your personal risk scores and recommendations.",
			"Anonymized, aggregated results are used for school health statistics.",
			"Personal data is never shared with third parties.",
		},
		Rights: []string{
			"You may stop the survey at any time.",
			"You may delete your account and all recorded data at any time.",
			"You may request a copy of your data.",
		},
		Disclaimer: dto.Disclaimer,
	}
}

func toUserProfile(user *domain.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		AgeGroup: user.AgeGroup,
		Faculty:  user.Faculty,
	}
}
