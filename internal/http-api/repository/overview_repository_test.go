package repository

import (
	"time"

	"greenkitchen/internal/http-api/models"
)

func (s *RepositorySuite) TestActiveUsersOrdering() {
	ana := s.createUser("ana")
	ben := s.createUser("ben")
	cy := s.createUser("cy")
	dee := s.createUser("dee")

	// ana: 2 recipes + 0 reviews, ben: 1 + 2, cy: 0 + 1, dee: nothing
	soup := s.createRecipe("Soup", &ana.ID)
	stew := s.createRecipe("Stew", &ana.ID)
	s.createRecipe("Salad", &ben.ID)
	s.addReview(soup, ben.ID, 5)
	s.addReview(stew, ben.ID, 4)
	s.addReview(soup, cy.ID, 3)

	list, err := s.overview.ActiveUsers(s.ctx, 15)
	s.Require().NoError(err)
	s.Require().Len(list, 4)

	s.Equal("ben", list[0].Username)
	s.EqualValues(1, list[0].RecipesCreated)
	s.EqualValues(2, list[0].ReviewsWritten)
	s.Equal("ana", list[1].Username)
	s.Equal("cy", list[2].Username)
	s.Equal(dee.ID, list[3].ID)

	limited, err := s.overview.ActiveUsers(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *RepositorySuite) TestRecipeSummaries() {
	ana := s.createUser("ana")
	ben := s.createUser("ben")
	cy := s.createUser("cy")
	soup := s.createRecipe("Soup", &ana.ID, "Quick", "Dinner")
	s.createRecipe("Toast", nil)
	s.addReview(soup, ben.ID, 5)
	s.addReview(soup, cy.ID, 2)

	list, err := s.overview.RecipeSummaries(s.ctx, 25)
	s.Require().NoError(err)
	s.Require().Len(list, 2)

	toast := list[0]
	s.Equal("Toast", toast.Title)
	s.Nil(toast.Author)
	s.Nil(toast.Tags)
	s.Zero(toast.ReviewCount)
	s.Zero(toast.AvgRating)

	first := list[1]
	s.Equal("ana", *first.Author)
	s.Equal("Dinner, Quick", *first.Tags)
	s.EqualValues(2, first.ReviewCount)
	s.InDelta(3.5, first.AvgRating, 0.001)
}

func (s *RepositorySuite) TestActiveUsersTiesNewestAccountFirst() {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var ids []int64
	for i, name := range []string{"old", "mid", "young"} {
		u := &models.User{
			Username:     name,
			Email:        name + "@example.com",
			PasswordHash: "x",
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}
		s.Require().NoError(s.users.Create(s.ctx, u))
		s.createRecipe(name+"'s soup", &u.ID)
		ids = append(ids, u.ID)
	}

	list, err := s.overview.ActiveUsers(s.ctx, 15)
	s.Require().NoError(err)
	s.Require().Len(list, 3)

	var names []string
	for _, u := range list {
		s.EqualValues(1, u.RecipesCreated)
		names = append(names, u.Username)
	}
	s.Equal([]string{"young", "mid", "old"}, names)
	s.Equal(ids[2], list[0].ID)
}
