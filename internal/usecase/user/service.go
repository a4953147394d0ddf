package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buildmat-dispatch/internal/config"
	domainUser "buildmat-dispatch/internal/domain/user"
	"buildmat-dispatch/internal/logger"
	appErrors "buildmat-dispatch/pkg/errors"
	"buildmat-dispatch/pkg/utils"
)

// Service implements account and authentication use cases.
type Service struct {
	userRepo domainUser.Repository
	cfg      *config.Config
}

func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return nil, appErrors.NewAppError("WEAK_PASSWORD", "Password does not meet requirements", err)
	}
	if !domainUser.ValidRole(req.Role) || req.Role == string(domainUser.RoleAdmin) {
		// Admin accounts are provisioned out of band, never self-registered.
		return nil, domainUser.ErrInvalidRole
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.NewAppError("HASH_ERROR", "Failed to process password", err)
	}

	u := &domainUser.User{
		Email:          utils.SanitizeString(req.Email),
		PasswordHashed: hashed,
		FullName:       utils.SanitizeString(req.FullName),
		PhoneNumber:    req.PhoneNumber,
		Role:           domainUser.Role(req.Role),
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("User registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
	)

	return s.issueToken(u)
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	u, err := s.userRepo.GetByEmail(ctx, utils.SanitizeString(req.Email))
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(u.PasswordHashed, req.Password) {
		return nil, appErrors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, domainUser.ErrUserInactive
	}

	return s.issueToken(u)
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(u)
	return &resp, nil
}

func (s *Service) issueToken(u *domainUser.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, string(u.Role), s.cfg.JWT.Secret, s.cfg.JWT.JWTExpiry())
	if err != nil {
		return nil, appErrors.NewAppError("TOKEN_ERROR", "Failed to issue token", err)
	}

	return &AuthResponse{
		Token: token,
		User:  toUserResponse(u),
	}, nil
}
