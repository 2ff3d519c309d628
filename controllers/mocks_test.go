package controllers_test

import (
	"context"

	"bluetech-store/dto"
	"bluetech-store/models"
)

type authServiceMock struct {
	signup func(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error)
	login  func(ctx context.Context, input dto.LoginInput) (*dto.UserSummary, string, error)
}

func (m *authServiceMock) Signup(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error) {
	return m.signup(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input dto.LoginInput) (*dto.UserSummary, string, error) {
	return m.login(ctx, input)
}

type userServiceMock struct {
	findAll    func(ctx context.Context) ([]models.User, error)
	findByRole func(ctx context.Context, role string) ([]models.User, error)
	create     func(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error)
	update     func(ctx context.Context, id string, input dto.UpdateUserInput) (*dto.UserSummary, error)
	delete     func(ctx context.Context, id string) error
}

func (m *userServiceMock) FindAll(ctx context.Context) ([]models.User, error) {
	return m.findAll(ctx)
}

func (m *userServiceMock) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return m.findByRole(ctx, role)
}

func (m *userServiceMock) Create(ctx context.Context, input dto.SignupInput) (*dto.UserSummary, error) {
	return m.create(ctx, input)
}

func (m *userServiceMock) Update(ctx context.Context, id string, input dto.UpdateUserInput) (*dto.UserSummary, error) {
	return m.update(ctx, id, input)
}

func (m *userServiceMock) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

type productServiceMock struct {
	findAll  func(ctx context.Context) ([]models.Product, error)
	findByID func(ctx context.Context, id string) (*models.Product, error)
	create   func(ctx context.Context, input dto.ProductInput) (*models.Product, error)
	update   func(ctx context.Context, id string, input dto.ProductInput) (*models.Product, error)
	delete   func(ctx context.Context, id string) error
}

func (m *productServiceMock) FindAll(ctx context.Context) ([]models.Product, error) {
	return m.findAll(ctx)
}

func (m *productServiceMock) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return m.findByID(ctx, id)
}

func (m *productServiceMock) Create(ctx context.Context, input dto.ProductInput) (*models.Product, error) {
	return m.create(ctx, input)
}

func (m *productServiceMock) Update(ctx context.Context, id string, input dto.ProductInput) (*models.Product, error) {
	return m.update(ctx, id, input)
}

func (m *productServiceMock) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}
