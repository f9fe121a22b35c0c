package receipts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type ReceiptRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.DeliveryReceipt) error
	ListBySchool(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, from, to time.Time) ([]*types.DeliveryReceipt, error)
}

type receiptRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReceiptRepo(db *gorm.DB, baseLog *logger.Logger) ReceiptRepo {
	return &receiptRepo{
		db:  db,
		log: baseLog.With("repo", "ReceiptRepo"),
	}
}

func (r *receiptRepo) Create(ctx context.Context, tx *gorm.DB, row *types.DeliveryReceipt) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(row).Error
}

func (r *receiptRepo) ListBySchool(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, from, to time.Time) ([]*types.DeliveryReceipt, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.DeliveryReceipt
	q := transaction.WithContext(ctx).Where("school_id = ?", schoolID)
	if !from.IsZero() {
		q = q.Where("receipt_date >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("receipt_date <= ?", to)
	}
	if err := q.Order("receipt_date DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
