package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"spm-backend/internal/config"
	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

type AuthService struct {
	userRepo UserRepository
	cfg      *config.Config
	logger   *logrus.Logger
}

func NewAuthService(userRepo UserRepository, cfg *config.Config, logger *logrus.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
		logger:   logger,
	}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		s.logger.WithField("email", email).Info("login rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(*user, s.cfg.JWTSecret, s.cfg.JWTAccessExpire)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &models.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *AuthService) ValidateToken(tokenString string) (*utils.JWTClaims, error) {
	return utils.ValidateToken(tokenString, s.cfg.JWTSecret)
}

func (s *AuthService) Me(ctx context.Context, id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
