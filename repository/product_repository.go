package repository

import (
	"context"

	"github.com/Greendayy/Ali-Express/models"

	"gorm.io/gorm"
)

// ProductRepository is the read-only persistence boundary for the catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]models.Product, error)
}

type GormProductRepo struct {
	db *gorm.DB
}

func NewGormProductRepo(db *gorm.DB) *GormProductRepo {
	return &GormProductRepo{db: db}
}

// FindAll returns the whole catalog in database order.
func (r *GormProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}
