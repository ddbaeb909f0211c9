package dashboard

import (
	"context"
	"time"
)

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) Service {
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, loc: loc, now: time.Now}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	orders, err := s.repo.FetchOrders(ctx)
	if err != nil {
		return nil, err
	}
	summary := Aggregate(orders, s.now(), s.loc)
	return &summary, nil
}
