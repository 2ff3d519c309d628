package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"bluetech-store/constants"
	"bluetech-store/dto"
	"bluetech-store/models"
	"bluetech-store/repositories"
)

type IAuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error)
	Login(ctx context.Context, input dto.LoginInput) (*dto.UserSummary, string, error)
}

type AuthService struct {
	repository repositories.IUserRepository
	secretKey  string
}

func NewAuthService(repository repositories.IUserRepository, secretKey string) IAuthService {
	return &AuthService{
		repository: repository,
		secretKey:  secretKey,
	}
}

// Signup はメールアドレスの重複チェック後にユーザーを作成する
// チェックと挿入は別操作なので、同時サインアップでは重複しうる
func (s *AuthService) Signup(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error) {
	existing, err := s.repository.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New(constants.ErrEmailInUse)
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

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.UserSummary, string, error) {
	foundUser, err := s.repository.FindByEmail(ctx, input.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", errors.New(constants.ErrInvalidCredentials)
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(input.Password)); err != nil {
		return nil, "", errors.New(constants.ErrInvalidCredentials)
	}

	token, err := s.createToken(foundUser)
	if err != nil {
		return nil, "", err
	}
	return dto.UserSummaryOf(foundUser), token, nil
}

func (s *AuthService) createToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	return token.SignedString([]byte(s.secretKey))
}
