package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"bluetech-store/constants"
	"bluetech-store/dto"
	"bluetech-store/models"
	"bluetech-store/repositories"
)

type IUserService interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	Create(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error)
	Update(ctx context.Context, id string, input dto.UpdateUserInput) (*dto.UserSummary, error)
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	repository repositories.IUserRepository
}

func NewUserService(repository repositories.IUserRepository) IUserService {
	return &UserService{repository: repository}
}

func (s *UserService) FindAll(ctx context.Context) ([]models.User, error) {
	return s.repository.FindAll(ctx)
}

func (s *UserService) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.repository.FindByRole(ctx, role)
}

func (s *UserService) Create(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error) {
	existing, err := s.repository.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(constants.ErrEmailExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = constants.RoleUser
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	created, err := s.repository.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	return dto.UserSummaryOf(created), nil
}

// Update は指定されたフィールドだけを更新する
// パスワードが含まれる場合は再ハッシュする
func (s *UserService) Update(ctx context.Context, id string, input dto.UpdateUserInput) (*dto.UserSummary, error) {
	updates := bson.M{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}
	if input.Role != nil {
		updates["role"] = *input.Role
	}

	// 更新フィールドがない場合は現在のドキュメントを返すだけ
	if len(updates) == 0 {
		user, err := s.repository.FindByID(ctx, id)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New(constants.ErrUserNotFound)
		}
		if err != nil {
			return nil, err
		}
		return dto.UserSummaryOf(user), nil
	}

	updated, err := s.repository.UpdateByID(ctx, id, updates)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(constants.ErrUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return dto.UserSummaryOf(updated), nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repository.DeleteByID(ctx, id)
}
