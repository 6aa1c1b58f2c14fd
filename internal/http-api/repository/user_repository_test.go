package repository

import (
	"errors"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
)

func (s *RepositorySuite) TestDeleteUserOrphansRecipesAndDropsReviews() {
	ana := s.createUser("ana")
	ben := s.createUser("ben")
	anaRecipe := s.createRecipe("Soup", &ana.ID)
	benRecipe := s.createRecipe("Stew", &ben.ID)
	s.addReview(benRecipe, ana.ID, 5)
	s.addReview(anaRecipe, ben.ID, 3)

	s.Require().NoError(s.users.Delete(s.ctx, ana.ID))

	authorID, err := s.recipes.GetAuthorID(s.ctx, anaRecipe)
	s.Require().NoError(err)
	s.Nil(authorID)
	s.Zero(s.count(&models.Review{}, "user_id = ?", ana.ID))
	s.EqualValues(1, s.count(&models.Review{}))

	_, err = s.users.GetByID(s.ctx, ana.ID)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
	s.True(errors.Is(s.users.Delete(s.ctx, ana.ID), gorm.ErrRecordNotFound))
}

func (s *RepositorySuite) TestUserLookups() {
	ana := s.createUser("ana")

	got, err := s.users.GetByEmail(s.ctx, "ana@example.com")
	s.Require().NoError(err)
	s.Equal(ana.ID, got.ID)

	exists, err := s.users.ExistsByUsernameOrEmail(s.ctx, "ana", "other@example.com", 0)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.users.ExistsByUsernameOrEmail(s.ctx, "ana", "ana@example.com", ana.ID)
	s.Require().NoError(err)
	s.False(exists)

	err = s.users.Create(s.ctx, &models.User{Username: "ana", Email: "x@example.com", PasswordHash: "x"})
	s.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

func (s *RepositorySuite) TestUpdateUser() {
	ana := s.createUser("ana")
	s.Require().NoError(s.users.Update(s.ctx, ana.ID, map[string]interface{}{"email": "new@example.com"}))

	got, err := s.users.GetByID(s.ctx, ana.ID)
	s.Require().NoError(err)
	s.Equal("new@example.com", got.Email)
	s.Equal("ana", got.Username)

	err = s.users.Update(s.ctx, 999, map[string]interface{}{"email": "x@example.com"})
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}
