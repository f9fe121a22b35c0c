package schools

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

// SchoolRepo reads master data owned by another subsystem. Inactive schools
// are treated as missing.
type SchoolRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.School, error)
}

type schoolRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSchoolRepo(db *gorm.DB, baseLog *logger.Logger) SchoolRepo {
	return &schoolRepo{
		db:  db,
		log: baseLog.With("repo", "SchoolRepo"),
	}
}

func (r *schoolRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.School, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.School
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
