package user

import (
	"context"
	"strings"

	"craftviet-be/internal/logger"
	"craftviet-be/internal/utils"

	"go.uber.org/zap"
)

// Service defines the business logic for accounts.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	Profile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error)

	// Admin operations.
	ListUsers(ctx context.Context, limit, page int) ([]*User, error)
	ChangeRole(ctx context.Context, userID uint, role Role) error
	Deactivate(ctx context.Context, userID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*User, string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Register"),
	)

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	u := &User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: hash,
		Phone:    input.Phone,
		Role:     RoleUser,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		log.Warn("register failed", zap.Error(err))
		return nil, "", err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, "", err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return u, token, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, "", ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, "", ErrUserDisabled
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Warn("bad password", zap.Uint("user_id", u.ID))
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.ID, string(u.Role), u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *service) Profile(ctx context.Context) (*User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.repo.GetByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*User, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotFound
	}
	params.UserID = userID
	return s.repo.UpdateProfile(ctx, params)
}

func (s *service) ListUsers(ctx context.Context, limit, page int) ([]*User, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if page <= 0 {
		page = 1
	}
	return s.repo.List(ctx, limit, (page-1)*limit)
}

func (s *service) ChangeRole(ctx context.Context, userID uint, role Role) error {
	if role != RoleUser && role != RoleAdmin {
		return ErrInvalidRole
	}
	return s.repo.SetRole(ctx, userID, role)
}

func (s *service) Deactivate(ctx context.Context, userID uint) error {
	return s.repo.SetActive(ctx, userID, false)
}
