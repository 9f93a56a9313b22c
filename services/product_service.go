package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/Githubuser289/Calories-BE/models"
)

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// List returns the whole catalog in insertion order.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// NotRecommendedFor returns the titles restricted for the given blood type.
func (s *ProductService) NotRecommendedFor(ctx context.Context, bloodType int) ([]string, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return RestrictedTitles(products, bloodType), nil
}
