package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"bluetech-store/dto"
	"bluetech-store/models"
	"bluetech-store/repositories"
)

type IProductService interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, input dto.ProductInput) (*models.Product, error)
	Update(ctx context.Context, id string, input dto.ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductService struct {
	repository repositories.IProductRepository
}

func NewProductService(repository repositories.IProductRepository) IProductService {
	return &ProductService{repository: repository}
}

func (s *ProductService) FindAll(ctx context.Context) ([]models.Product, error) {
	return s.repository.FindAll(ctx)
}

func (s *ProductService) FindByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, input dto.ProductInput) (*models.Product, error) {
	newProduct := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       float64(input.Price),
	}
	if input.Resolved.Kind != dto.ImageNone {
		newProduct.ImageURL = input.Resolved.Path
	}
	return s.repository.Insert(ctx, newProduct)
}

// Update は該当IDがない場合(nil, nil)を返す
// 画像は新しい指定がある場合のみ差し替え、古いファイルは削除しない
func (s *ProductService) Update(ctx context.Context, id string, input dto.ProductInput) (*models.Product, error) {
	updates := bson.M{"price": float64(input.Price)}
	if input.Name != "" {
		updates["name"] = input.Name
	}
	if input.Description != "" {
		updates["description"] = input.Description
	}
	if input.Resolved.Kind != dto.ImageNone {
		updates["imageUrl"] = input.Resolved.Path
	}
	return s.repository.UpdateByID(ctx, id, updates)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repository.DeleteByID(ctx, id)
}
