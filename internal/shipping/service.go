package shipping

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes the fixed checkout method list and admin zone management.
type Service interface {
	ListMethods(ctx context.Context) ([]*Method, error)
	GetMethod(ctx context.Context, id string) (*Method, error)

	// Admin operations on zones.
	ListZones(ctx context.Context) ([]*Zone, error)
	CreateZone(ctx context.Context, input NewZoneInput) (*Zone, error)
	UpdateZone(ctx context.Context, params UpdateZoneParams) (*Zone, error)
	DeleteZone(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListMethods(ctx context.Context) ([]*Method, error) {
	return s.repo.ListMethods(ctx)
}

func (s *service) GetMethod(ctx context.Context, id string) (*Method, error) {
	return s.repo.GetMethod(ctx, id)
}

func (s *service) ListZones(ctx context.Context) ([]*Zone, error) {
	return s.repo.ListZones(ctx)
}

func (s *service) CreateZone(ctx context.Context, input NewZoneInput) (*Zone, error) {
	if input.Fee < 0 {
		return nil, ErrInvalidFee
	}

	z := &Zone{
		ID:            uuid.New(),
		Name:          input.Name,
		Provinces:     input.Provinces,
		Fee:           input.Fee,
		EstimatedDays: input.EstimatedDays,
		IsActive:      true,
	}

	if err := s.repo.CreateZone(ctx, z); err != nil {
		return nil, err
	}
	return z, nil
}

func (s *service) UpdateZone(ctx context.Context, params UpdateZoneParams) (*Zone, error) {
	if params.Fee != nil && *params.Fee < 0 {
		return nil, ErrInvalidFee
	}
	return s.repo.UpdateZone(ctx, params)
}

func (s *service) DeleteZone(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeactivateZone(ctx, id)
}
