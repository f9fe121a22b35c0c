package records

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

// DailyRecordRepo is the read side of the consumption log. Rows are produced
// by the intake subsystem; the engine only queries them per window.
type DailyRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.DailyRecord) ([]*types.DailyRecord, error)
	QueryWindow(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, start, end time.Time) ([]*types.DailyRecord, error)
}

type dailyRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDailyRecordRepo(db *gorm.DB, baseLog *logger.Logger) DailyRecordRepo {
	return &dailyRecordRepo{
		db:  db,
		log: baseLog.With("repo", "DailyRecordRepo"),
	}
}

func (r *dailyRecordRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.DailyRecord) ([]*types.DailyRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(rows) == 0 {
		return []*types.DailyRecord{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dailyRecordRepo) QueryWindow(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, start, end time.Time) ([]*types.DailyRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.DailyRecord
	q := transaction.WithContext(ctx).
		Where("school_id = ? AND date >= ? AND date <= ?", schoolID, start, end)
	if nutritionistID != uuid.Nil {
		q = q.Where("nutritionist_id = ?", nutritionistID)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
