package percapita

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type PerCapitaRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PerCapitaFactor, error)
	GetActiveByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.PerCapitaFactor, error)
	GetLatestByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.PerCapitaFactor, error)
	Create(ctx context.Context, tx *gorm.DB, row *types.PerCapitaFactor) error
	Save(ctx context.Context, tx *gorm.DB, row *types.PerCapitaFactor) error
	SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) (bool, error)
}

type perCapitaRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPerCapitaRepo(db *gorm.DB, baseLog *logger.Logger) PerCapitaRepo {
	return &perCapitaRepo{
		db:  db,
		log: baseLog.With("repo", "PerCapitaRepo"),
	}
}

func (r *perCapitaRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PerCapitaFactor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.PerCapitaFactor
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
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

func (r *perCapitaRepo) GetActiveByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.PerCapitaFactor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.PerCapitaFactor
	err := transaction.WithContext(ctx).
		Where("product_id = ? AND active = ?", productID, true).
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

func (r *perCapitaRepo) GetLatestByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.PerCapitaFactor, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.PerCapitaFactor
	err := transaction.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("updated_at DESC").
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

func (r *perCapitaRepo) Create(ctx context.Context, tx *gorm.DB, row *types.PerCapitaFactor) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(row).Error
}

func (r *perCapitaRepo) Save(ctx context.Context, tx *gorm.DB, row *types.PerCapitaFactor) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	row.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).Save(row).Error
}

func (r *perCapitaRepo) SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.PerCapitaFactor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"active":     active,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
