package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/calendar"
	"github.com/nutriserv/supply-backend/internal/data/repos/averages"
	"github.com/nutriserv/supply-backend/internal/data/repos/records"
	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

// MealAverage is the aggregation result for one meal type within a window.
// RecordCount is the number of logged entries considered, not distinct days.
type MealAverage struct {
	Average     int `json:"average"`
	RecordCount int `json:"record_count"`
}

type AverageService interface {
	// ComputeAverages aggregates the rolling window ending at asOf. The result
	// always contains all five meal types, zero-valued where no data exists.
	ComputeAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, asOf time.Time) (map[types.MealType]MealAverage, error)
	// RecomputeSnapshot computes the window averages and reconciles them into
	// the per-(school, nutritionist) snapshot in a single upsert.
	RecomputeSnapshot(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, asOf time.Time) (*types.AverageSnapshot, error)
	// SetManualAverages overwrites snapshot averages by hand and clears the
	// automatic flag. A later recompute overwrites them again (last writer wins).
	SetManualAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, avgs map[types.MealType]int) (*types.AverageSnapshot, error)
	GetSnapshot(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID) (*types.AverageSnapshot, error)
}

type averageService struct {
	db           *gorm.DB
	log          *logger.Logger
	windowDays   int
	recordRepo   records.DailyRecordRepo
	snapshotRepo averages.SnapshotRepo
}

func NewAverageService(
	db *gorm.DB,
	baseLog *logger.Logger,
	windowDays int,
	recordRepo records.DailyRecordRepo,
	snapshotRepo averages.SnapshotRepo,
) AverageService {
	return &averageService{
		db:           db,
		log:          baseLog.With("service", "AverageService"),
		windowDays:   windowDays,
		recordRepo:   recordRepo,
		snapshotRepo: snapshotRepo,
	}
}

func (s *averageService) ComputeAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, asOf time.Time) (map[types.MealType]MealAverage, error) {
	if schoolID == uuid.Nil {
		return nil, fmt.Errorf("missing school id: %w", apperrors.ErrInvalidArgument)
	}
	if nutritionistID == uuid.Nil {
		return nil, fmt.Errorf("missing nutritionist id: %w", apperrors.ErrInvalidArgument)
	}
	if asOf.IsZero() {
		return nil, fmt.Errorf("missing reference date: %w", apperrors.ErrInvalidArgument)
	}

	window, err := calendar.ResolveWindow(asOf, s.windowDays)
	if err != nil {
		return nil, err
	}

	rows, err := s.recordRepo.QueryWindow(ctx, tx, schoolID, nutritionistID, window.Start, window.End)
	if err != nil {
		s.log.Warn("ComputeAverages: query records failed", "error", err, "school_id", schoolID)
		return nil, err
	}
	return aggregateMealAverages(rows, window)
}

func (s *averageService) RecomputeSnapshot(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, asOf time.Time) (*types.AverageSnapshot, error) {
	computed, err := s.ComputeAverages(ctx, tx, schoolID, nutritionistID, asOf)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	snap := &types.AverageSnapshot{
		SchoolID:                schoolID,
		NutritionistID:          nutritionistID,
		CalculatedAutomatically: true,
		ComputedAt:              now,
	}
	total := 0
	for _, meal := range types.AllMealTypes() {
		ma := computed[meal]
		snap.SetAverage(meal, ma.Average)
		total += ma.RecordCount
	}
	snap.SampleCount = total

	if err := s.snapshotRepo.Upsert(ctx, tx, snap); err != nil {
		s.log.Warn("RecomputeSnapshot: upsert failed", "error", err, "school_id", schoolID, "nutritionist_id", nutritionistID)
		return nil, err
	}
	stored, err := s.snapshotRepo.Get(ctx, tx, schoolID, nutritionistID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return snap, nil
	}
	return stored, nil
}

func (s *averageService) SetManualAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, avgs map[types.MealType]int) (*types.AverageSnapshot, error) {
	if schoolID == uuid.Nil || nutritionistID == uuid.Nil {
		return nil, fmt.Errorf("missing snapshot key: %w", apperrors.ErrInvalidArgument)
	}
	if len(avgs) == 0 {
		return nil, fmt.Errorf("no averages supplied: %w", apperrors.ErrInvalidArgument)
	}
	for meal, v := range avgs {
		if !meal.Valid() {
			return nil, fmt.Errorf("unknown meal type %q: %w", meal, apperrors.ErrInvalidArgument)
		}
		if v < 0 {
			return nil, fmt.Errorf("negative average for %q: %w", meal, apperrors.ErrInvalidArgument)
		}
	}

	updated, err := s.snapshotRepo.SetManualAverages(ctx, tx, schoolID, nutritionistID, avgs)
	if err != nil {
		s.log.Warn("SetManualAverages: update failed", "error", err, "school_id", schoolID)
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("snapshot for school %s: %w", schoolID, apperrors.ErrNotFound)
	}
	return s.snapshotRepo.Get(ctx, tx, schoolID, nutritionistID)
}

func (s *averageService) GetSnapshot(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID) (*types.AverageSnapshot, error) {
	if schoolID == uuid.Nil || nutritionistID == uuid.Nil {
		return nil, fmt.Errorf("missing snapshot key: %w", apperrors.ErrInvalidArgument)
	}
	snap, err := s.snapshotRepo.Get(ctx, tx, schoolID, nutritionistID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, fmt.Errorf("snapshot for school %s: %w", schoolID, apperrors.ErrNotFound)
	}
	return snap, nil
}

// aggregateMealAverages groups window records by meal type and computes the
// ceiling average over the number of logged entries. Order-independent; a
// nutritionist logging twice on the same day contributes two samples.
func aggregateMealAverages(rows []*types.DailyRecord, window calendar.Window) (map[types.MealType]MealAverage, error) {
	sums := make(map[types.MealType]int, len(types.AllMealTypes()))
	counts := make(map[types.MealType]int, len(types.AllMealTypes()))

	for _, rec := range rows {
		if rec == nil {
			continue
		}
		if rec.Value < 0 {
			return nil, fmt.Errorf("negative consumption value %d for %s: %w", rec.Value, rec.MealType, apperrors.ErrInvalidArgument)
		}
		if !rec.MealType.Valid() {
			return nil, fmt.Errorf("unknown meal type %q: %w", rec.MealType, apperrors.ErrInvalidArgument)
		}
		if !window.Contains(rec.Date) {
			continue
		}
		sums[rec.MealType] += rec.Value
		counts[rec.MealType]++
	}

	out := make(map[types.MealType]MealAverage, len(types.AllMealTypes()))
	for _, meal := range types.AllMealTypes() {
		n := counts[meal]
		avg := 0
		if n > 0 {
			avg = ceilDiv(sums[meal], n)
		}
		out[meal] = MealAverage{Average: avg, RecordCount: n}
	}
	return out, nil
}

// ceilDiv rounds up; the averages feed provisioning, which never rounds down.
func ceilDiv(sum, n int) int {
	return (sum + n - 1) / n
}
