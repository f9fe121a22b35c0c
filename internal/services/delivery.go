package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/data/repos/receipts"
	"github.com/nutriserv/supply-backend/internal/data/repos/schools"
	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type DeliveryService interface {
	// Classify applies the category's weekday rules to a receipt date.
	Classify(receiptDate time.Time, category types.DeliveryCategory) (types.DeliveryStatus, error)
	// RecordReceipt persists a receipt with its status derived at write time;
	// the stored status is never recomputed.
	RecordReceipt(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, receiptDate time.Time, category types.DeliveryCategory, notes string) (*types.DeliveryReceipt, error)
	ListReceipts(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, from, to time.Time) ([]*types.DeliveryReceipt, error)
}

type deliveryService struct {
	db          *gorm.DB
	log         *logger.Logger
	receiptRepo receipts.ReceiptRepo
	schoolRepo  schools.SchoolRepo
}

func NewDeliveryService(
	db *gorm.DB,
	baseLog *logger.Logger,
	receiptRepo receipts.ReceiptRepo,
	schoolRepo schools.SchoolRepo,
) DeliveryService {
	return &deliveryService{
		db:          db,
		log:         baseLog.With("service", "DeliveryService"),
		receiptRepo: receiptRepo,
		schoolRepo:  schoolRepo,
	}
}

// ClassifyDelivery is the pure rule table.
//
// HORTI and PAO are delivered at the start of the week: Monday and Tuesday are
// on time and everything else is late, with no early state. The remaining
// categories expect Wednesday/Thursday, arrive early on Monday/Tuesday and
// late from Friday through Sunday.
func ClassifyDelivery(receiptDate time.Time, category types.DeliveryCategory) (types.DeliveryStatus, error) {
	if receiptDate.IsZero() {
		return "", fmt.Errorf("missing receipt date: %w", apperrors.ErrInvalidArgument)
	}
	if !category.Valid() {
		return "", fmt.Errorf("unknown delivery category %q: %w", category, apperrors.ErrInvalidArgument)
	}

	wd := receiptDate.Weekday()
	switch category {
	case types.CategoryHorti, types.CategoryBread:
		if wd == time.Monday || wd == time.Tuesday {
			return types.DeliveryOnTime, nil
		}
		return types.DeliveryLate, nil
	default: // PERECIVEIS, BASE, LIMP
		switch wd {
		case time.Wednesday, time.Thursday:
			return types.DeliveryOnTime, nil
		case time.Monday, time.Tuesday:
			return types.DeliveryEarly, nil
		default:
			return types.DeliveryLate, nil
		}
	}
}

func (s *deliveryService) Classify(receiptDate time.Time, category types.DeliveryCategory) (types.DeliveryStatus, error) {
	return ClassifyDelivery(receiptDate, category)
}

func (s *deliveryService) RecordReceipt(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, receiptDate time.Time, category types.DeliveryCategory, notes string) (*types.DeliveryReceipt, error) {
	if schoolID == uuid.Nil {
		return nil, fmt.Errorf("missing school id: %w", apperrors.ErrInvalidArgument)
	}

	status, err := ClassifyDelivery(receiptDate, category)
	if err != nil {
		return nil, err
	}

	school, err := s.schoolRepo.GetByID(ctx, tx, schoolID)
	if err != nil {
		s.log.Warn("RecordReceipt: load school failed", "error", err, "school_id", schoolID)
		return nil, err
	}
	if school == nil {
		return nil, fmt.Errorf("school %s: %w", schoolID, apperrors.ErrNotFound)
	}

	row := &types.DeliveryReceipt{
		SchoolID:    schoolID,
		ReceiptDate: receiptDate,
		Category:    category,
		Status:      status,
		Notes:       notes,
	}
	if err := s.receiptRepo.Create(ctx, tx, row); err != nil {
		s.log.Warn("RecordReceipt: create failed", "error", err, "school_id", schoolID)
		return nil, err
	}
	return row, nil
}

func (s *deliveryService) ListReceipts(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, from, to time.Time) ([]*types.DeliveryReceipt, error) {
	if schoolID == uuid.Nil {
		return nil, fmt.Errorf("missing school id: %w", apperrors.ErrInvalidArgument)
	}
	return s.receiptRepo.ListBySchool(ctx, tx, schoolID, from, to)
}
