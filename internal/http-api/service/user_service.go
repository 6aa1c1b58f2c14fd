package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"greenkitchen/internal/http-api/models"
	"greenkitchen/internal/http-api/repository"
	"greenkitchen/internal/middleware/auth"
)

// UserUpdate carries the fields a partial update may change.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, username, email, password string) (*models.User, error)
	Update(ctx context.Context, caller *int64, id int64, in UserUpdate) (*models.User, error)
	Delete(ctx context.Context, caller *int64, id int64) error
}

type userService struct {
	repo   repository.UserRepository
	owners Ownership
}

func NewUserService(repo repository.UserRepository, owners Ownership) UserService {
	return &userService{repo: repo, owners: owners}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, username, email, password string) (*models.User, error) {
	return createUser(ctx, s.repo, username, email, password)
}

func (s *userService) Update(ctx context.Context, caller *int64, id int64, in UserUpdate) (*models.User, error) {
	if err := s.owners.mayModify(caller, &id); err != nil {
		return nil, err
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	fields := map[string]interface{}{}
	username, email := current.Username, current.Email
	if in.Username != nil {
		if username = strings.TrimSpace(*in.Username); username == "" {
			return nil, ErrMissingFields
		}
		fields["username"] = username
	}
	if in.Email != nil {
		if email = strings.TrimSpace(*in.Email); email == "" {
			return nil, ErrMissingFields
		}
		fields["email"] = email
	}
	if in.Password != nil && *in.Password != "" {
		if err := checkPassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if len(fields) == 0 {
		return current, nil
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, username, email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, notFound(err, ErrUserNotFound)
	}
	return s.Get(ctx, id)
}

// Delete removes the user and their reviews; their recipes stay, authorless.
func (s *userService) Delete(ctx context.Context, caller *int64, id int64) error {
	if err := s.owners.mayModify(caller, &id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, ErrUserNotFound)
	}
	return nil
}
