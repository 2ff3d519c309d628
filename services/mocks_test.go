package services_test

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bluetech-store/models"
)

// userRepositoryMock はテスト用のインメモリ実装
type userRepositoryMock struct {
	byID        map[string]*models.User
	lastUpdates bson.M
}

func newUserRepositoryMock() *userRepositoryMock {
	return &userRepositoryMock{byID: map[string]*models.User{}}
}

func (m *userRepositoryMock) add(user models.User) *models.User {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	m.byID[user.ID.Hex()] = &user
	return &user
}

func (m *userRepositoryMock) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, user := range m.byID {
		users = append(users, *user)
	}
	return users, nil
}

func (m *userRepositoryMock) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	users := []models.User{}
	for _, user := range m.byID {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id string) (*models.User, error) {
	if user, ok := m.byID[id]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *userRepositoryMock) Insert(ctx context.Context, user models.User) (*models.User, error) {
	return m.add(user), nil
}

func (m *userRepositoryMock) UpdateByID(ctx context.Context, id string, updates bson.M) (*models.User, error) {
	user, ok := m.byID[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	m.lastUpdates = updates

	if v, ok := updates["name"]; ok {
		user.Name = v.(string)
	}
	if v, ok := updates["email"]; ok {
		user.Email = v.(string)
	}
	if v, ok := updates["password"]; ok {
		user.Password = v.(string)
	}
	if v, ok := updates["role"]; ok {
		user.Role = v.(string)
	}
	return user, nil
}

func (m *userRepositoryMock) DeleteByID(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

// productRepositoryMock はテスト用のインメモリ実装
type productRepositoryMock struct {
	byID        map[string]*models.Product
	lastUpdates bson.M
}

func newProductRepositoryMock() *productRepositoryMock {
	return &productRepositoryMock{byID: map[string]*models.Product{}}
}

func (m *productRepositoryMock) add(product models.Product) *models.Product {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	m.byID[product.ID.Hex()] = &product
	return &product
}

func (m *productRepositoryMock) FindAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	for _, product := range m.byID {
		products = append(products, *product)
	}
	return products, nil
}

func (m *productRepositoryMock) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if product, ok := m.byID[id]; ok {
		return product, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *productRepositoryMock) Insert(ctx context.Context, product models.Product) (*models.Product, error) {
	return m.add(product), nil
}

func (m *productRepositoryMock) UpdateByID(ctx context.Context, id string, updates bson.M) (*models.Product, error) {
	product, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	m.lastUpdates = updates

	if v, ok := updates["name"]; ok {
		product.Name = v.(string)
	}
	if v, ok := updates["description"]; ok {
		product.Description = v.(string)
	}
	if v, ok := updates["price"]; ok {
		product.Price = v.(float64)
	}
	if v, ok := updates["imageUrl"]; ok {
		product.ImageURL = v.(string)
	}
	return product, nil
}

func (m *productRepositoryMock) DeleteByID(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}
