package averages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type SnapshotRepo interface {
	Get(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID) (*types.AverageSnapshot, error)
	// Upsert writes the snapshot in one statement keyed on
	// (school_id, nutritionist_id), so concurrent reconciliations of the same
	// key collapse to last-writer-wins instead of losing updates.
	Upsert(ctx context.Context, tx *gorm.DB, row *types.AverageSnapshot) error
	// SetManualAverages overwrites the five averages of an existing snapshot
	// and clears the automatic flag. Returns false when no row exists.
	SetManualAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, avgs map[types.MealType]int) (bool, error)
}

type snapshotRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSnapshotRepo(db *gorm.DB, baseLog *logger.Logger) SnapshotRepo {
	return &snapshotRepo{
		db:  db,
		log: baseLog.With("repo", "SnapshotRepo"),
	}
}

func (r *snapshotRepo) Get(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID) (*types.AverageSnapshot, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var row types.AverageSnapshot
	err := transaction.WithContext(ctx).
		Where("school_id = ? AND nutritionist_id = ?", schoolID, nutritionistID).
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

func (r *snapshotRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.AverageSnapshot) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if row == nil || row.SchoolID == uuid.Nil || row.NutritionistID == uuid.Nil {
		return nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	row.UpdatedAt = time.Now().UTC()
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "school_id"}, {Name: "nutritionist_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"morning_snack_avg",
				"lunch_avg",
				"afternoon_snack_avg",
				"partial_avg",
				"eja_avg",
				"calculated_automatically",
				"sample_count",
				"computed_at",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *snapshotRepo) SetManualAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, avgs map[types.MealType]int) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	updates := map[string]interface{}{
		"calculated_automatically": false,
		"updated_at":               time.Now().UTC(),
	}
	columns := map[types.MealType]string{
		types.MealMorningSnack:   "morning_snack_avg",
		types.MealLunch:          "lunch_avg",
		types.MealAfternoonSnack: "afternoon_snack_avg",
		types.MealPartial:        "partial_avg",
		types.MealEJA:            "eja_avg",
	}
	for meal, value := range avgs {
		if col, ok := columns[meal]; ok {
			updates[col] = value
		}
	}
	res := transaction.WithContext(ctx).
		Model(&types.AverageSnapshot{}).
		Where("school_id = ? AND nutritionist_id = ?", schoolID, nutritionistID).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
