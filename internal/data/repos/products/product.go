package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

// ProductRepo reads master data owned by another subsystem. Inactive products
// are treated as missing.
type ProductRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return &productRepo{
		db:  db,
		log: baseLog.With("repo", "ProductRepo"),
	}
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Product
	err := transaction.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}
