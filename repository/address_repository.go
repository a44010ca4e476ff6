package repository

import (
	"context"

	"github.com/Greendayy/Ali-Express/models"

	"gorm.io/gorm"
)

// AddressRepository is the persistence boundary for shipping addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *models.Address) error
}

type GormAddressRepo struct {
	db *gorm.DB
}

func NewGormAddressRepo(db *gorm.DB) *GormAddressRepo {
	return &GormAddressRepo{db: db}
}

func (r *GormAddressRepo) Create(ctx context.Context, address *models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}
