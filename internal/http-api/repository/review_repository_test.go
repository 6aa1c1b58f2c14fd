package repository

import (
	"greenkitchen/internal/http-api/models"
)

func (s *RepositorySuite) TestReviewDetails() {
	ana := s.createUser("ana")
	ben := s.createUser("ben")
	soup := s.createRecipe("Soup", &ana.ID)
	stew := s.createRecipe("Stew", &ana.ID)
	s.addReview(soup, ben.ID, 4)
	s.addReview(stew, ben.ID, 2)

	all, err := s.reviews.List(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Stew", *all[0].RecipeTitle)
	s.Equal("ben", *all[0].Username)

	limited, err := s.reviews.List(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(limited, 1)

	bySoup, err := s.reviews.ListByRecipe(s.ctx, soup)
	s.Require().NoError(err)
	s.Require().Len(bySoup, 1)
	s.Equal(4, bySoup[0].Rating)
}

func (s *RepositorySuite) TestReviewUpdateAndRatingCheck() {
	ana := s.createUser("ana")
	soup := s.createRecipe("Soup", nil)

	review := &models.Review{RecipeID: soup, UserID: ana.ID, Rating: 3}
	s.Require().NoError(s.reviews.Create(s.ctx, review))

	review.Rating = 5
	review.Comment = strPtr("better the next day")
	s.Require().NoError(s.reviews.Update(s.ctx, review))

	got, err := s.reviews.GetByID(s.ctx, review.ID)
	s.Require().NoError(err)
	s.Equal(5, got.Rating)
	s.Equal("better the next day", *got.Comment)

	// the check constraint backs up service validation
	s.Error(s.reviews.Create(s.ctx, &models.Review{RecipeID: soup, UserID: ana.ID, Rating: 9}))

	s.Require().NoError(s.reviews.Delete(s.ctx, review.ID))
	s.Error(s.reviews.Delete(s.ctx, review.ID))
}
