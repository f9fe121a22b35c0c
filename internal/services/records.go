package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/data/repos/records"
	"github.com/nutriserv/supply-backend/internal/data/repos/schools"
	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type DailyEntry struct {
	MealType types.MealType `json:"meal_type"`
	Value    int            `json:"value"`
}

type RecordService interface {
	// LogDailyRecords stores one consumption sample per entry for a
	// school/nutritionist/date. The whole batch is validated up front and
	// written in one statement.
	LogDailyRecords(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, date time.Time, entries []DailyEntry) ([]*types.DailyRecord, error)
}

type recordService struct {
	db         *gorm.DB
	log        *logger.Logger
	recordRepo records.DailyRecordRepo
	schoolRepo schools.SchoolRepo
}

func NewRecordService(db *gorm.DB, baseLog *logger.Logger, recordRepo records.DailyRecordRepo, schoolRepo schools.SchoolRepo) RecordService {
	return &recordService{
		db:         db,
		log:        baseLog.With("service", "RecordService"),
		recordRepo: recordRepo,
		schoolRepo: schoolRepo,
	}
}

func (s *recordService) LogDailyRecords(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, date time.Time, entries []DailyEntry) ([]*types.DailyRecord, error) {
	if schoolID == uuid.Nil || nutritionistID == uuid.Nil {
		return nil, fmt.Errorf("missing record key: %w", apperrors.ErrInvalidArgument)
	}
	if date.IsZero() {
		return nil, fmt.Errorf("missing date: %w", apperrors.ErrInvalidArgument)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries to log: %w", apperrors.ErrInvalidArgument)
	}
	for _, e := range entries {
		if !e.MealType.Valid() {
			return nil, fmt.Errorf("unknown meal type %q: %w", e.MealType, apperrors.ErrInvalidArgument)
		}
		if e.Value < 0 {
			return nil, fmt.Errorf("negative value for %s: %w", e.MealType, apperrors.ErrInvalidArgument)
		}
	}

	school, err := s.schoolRepo.GetByID(ctx, tx, schoolID)
	if err != nil {
		s.log.Warn("LogDailyRecords: load school failed", "error", err, "school_id", schoolID)
		return nil, err
	}
	if school == nil {
		return nil, fmt.Errorf("school %s: %w", schoolID, apperrors.ErrNotFound)
	}

	rows := make([]*types.DailyRecord, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, &types.DailyRecord{
			SchoolID:       schoolID,
			NutritionistID: nutritionistID,
			Date:           date,
			MealType:       e.MealType,
			Value:          e.Value,
		})
	}
	created, err := s.recordRepo.Create(ctx, tx, rows)
	if err != nil {
		s.log.Warn("LogDailyRecords: create failed", "error", err, "school_id", schoolID)
		return nil, err
	}
	return created, nil
}
