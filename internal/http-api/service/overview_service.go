package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/repository"
)

const (
	overviewRecipes = 25
	overviewReviews = 15
	overviewUsers   = 15
)

type OverviewService interface {
	Get(ctx context.Context) (*models.Overview, error)
}

type overviewService struct {
	overview repository.OverviewRepository
	reviews  repository.ReviewRepository
}

func NewOverviewService(overview repository.OverviewRepository, reviews repository.ReviewRepository) OverviewService {
	return &overviewService{overview: overview, reviews: reviews}
}

// Get runs the three dashboard queries concurrently; the first failure
// cancels the others.
func (s *overviewService) Get(ctx context.Context) (*models.Overview, error) {
	out := &models.Overview{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.overview.RecipeSummaries(gctx, overviewRecipes)
		out.RecipeSummaries = list
		return err
	})
	g.Go(func() error {
		list, err := s.reviews.List(gctx, overviewReviews)
		out.RecentReviews = list
		return err
	})
	g.Go(func() error {
		list, err := s.overview.ActiveUsers(gctx, overviewUsers)
		out.ActiveUsers = list
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
