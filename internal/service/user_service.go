package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"spm-backend/internal/models"
	"spm-backend/internal/repository"
	"spm-backend/internal/utils"

	"github.com/sirupsen/logrus"
)

type UserService struct {
	userRepo UserRepository
	logger   *logrus.Logger
}

func NewUserService(userRepo UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserService) List(ctx context.Context) ([]models.UserListItem, error) {
	return s.userRepo.FindAll(ctx)
}

func validateUserRequest(req models.UserRequest, requirePassword bool) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidUser)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: email is invalid", ErrInvalidUser)
	}
	if requirePassword && len(req.Password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidUser)
	}
	if !models.IsValidRole(req.Role) {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidUser, req.Role)
	}
	if req.Role == models.RoleOpSatker && req.SatkerID == nil {
		return fmt.Errorf("%w: op_satker users need a satker", ErrInvalidUser)
	}
	return nil
}

func (s *UserService) Create(ctx context.Context, req models.UserRequest) (*models.User, error) {
	if err := validateUserRequest(req, true); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:    strings.TrimSpace(req.Email),
		Name:     strings.TrimSpace(req.Name),
		Password: hash,
		Role:     req.Role,
		SatkerID: req.SatkerID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("user created")
	return user, nil
}

// Update changes a user's profile. The password is only replaced when given.
func (s *UserService) Update(ctx context.Context, id int, req models.UserRequest) (*models.User, error) {
	if err := validateUserRequest(req, false); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Email = strings.TrimSpace(req.Email)
	user.Name = strings.TrimSpace(req.Name)
	user.Role = req.Role
	user.SatkerID = req.SatkerID
	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		if err := s.userRepo.UpdatePassword(ctx, id, hash); err != nil {
			return nil, fmt.Errorf("update password: %w", err)
		}
		user.Password = hash
	}

	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
