package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/eduquery/eduquery-be/repository"
	"github.com/eduquery/eduquery-be/types"
)

var ErrEmailExists = errors.New("email already exists")

type UserService interface {
	Signup(ctx context.Context, req types.SignupRequest) (*types.User, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	UpdateProfile(ctx context.Context, id string, req types.UpdateProfileRequest) error
}

type userService struct {
	repo repository.UserRepo
}

func NewUserService(repo repository.UserRepo) UserService {
	return &userService{
		repo: repo,
	}
}

// TODO: hash passwords before storing instead of keeping them in plain text.
func (s *userService) Signup(ctx context.Context, req types.SignupRequest) (*types.User, error) {
	if _, err := s.repo.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, types.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	user := &types.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Class:     req.Class,
		Board:     req.Board,
		Group:     req.Group,
		Role:      types.USER_ROLE_STUDENT,
		CreatedAt: time.Now().Unix(),
		UpdatedAt: time.Now().Unix(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (*types.User, error) {
	return s.repo.GetUser(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	return s.repo.GetUserByEmail(ctx, email)
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req types.UpdateProfileRequest) error {
	fields := bson.M{"updated_at": time.Now().Unix()}
	if req.Username != "" {
		fields["username"] = req.Username
	}
	if req.Class != "" {
		fields["class"] = req.Class
	}
	if req.Board != "" {
		fields["board"] = req.Board
	}
	if req.Group != "" {
		fields["group"] = req.Group
	}
	return s.repo.UpdateUser(ctx, id, fields)
}
