package necessities

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type NecessityRepo interface {
	GetByNaturalKey(ctx context.Context, tx *gorm.DB, requesterEmail, productName, schoolName string, consumptionDate time.Time) (*types.Necessity, error)
	// Upsert writes the row in one statement keyed on the natural tuple
	// (requester_email, product_name, school_name, consumption_date); only
	// the caller-supplied adjustment and supply week move on conflict.
	Upsert(ctx context.Context, tx *gorm.DB, row *types.Necessity) error
	ListBySchoolAndDate(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]*types.Necessity, error)
}

type necessityRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNecessityRepo(db *gorm.DB, baseLog *logger.Logger) NecessityRepo {
	return &necessityRepo{
		db:  db,
		log: baseLog.With("repo", "NecessityRepo"),
	}
}

func (r *necessityRepo) GetByNaturalKey(ctx context.Context, tx *gorm.DB, requesterEmail, productName, schoolName string, consumptionDate time.Time) (*types.Necessity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.Necessity
	err := transaction.WithContext(ctx).
		Where(
			"requester_email = ? AND product_name = ? AND school_name = ? AND consumption_date = ?",
			requesterEmail, productName, schoolName, consumptionDate,
		).
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

func (r *necessityRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Necessity) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row == nil || row.RequesterEmail == "" || row.ProductName == "" || row.SchoolName == "" {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "requester_email"},
				{Name: "product_name"},
				{Name: "school_name"},
				{Name: "consumption_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"adjustment",
				"supply_week",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *necessityRepo) ListBySchoolAndDate(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]*types.Necessity, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.Necessity
	err := transaction.WithContext(ctx).
		Where("school_id = ? AND consumption_date = ?", schoolID, consumptionDate).
		Order("product_name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
