package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/data/repos/necessities"
	"github.com/nutriserv/supply-backend/internal/data/repos/schools"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type ExportService interface {
	// ExportNecessities renders the school's necessities for one
	// consumption date as an xlsx workbook.
	ExportNecessities(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]byte, string, error)
}

type exportService struct {
	db            *gorm.DB
	log           *logger.Logger
	necessityRepo necessities.NecessityRepo
	schoolRepo    schools.SchoolRepo
}

func NewExportService(db *gorm.DB, baseLog *logger.Logger, necessityRepo necessities.NecessityRepo, schoolRepo schools.SchoolRepo) ExportService {
	return &exportService{
		db:            db,
		log:           baseLog.With("service", "ExportService"),
		necessityRepo: necessityRepo,
		schoolRepo:    schoolRepo,
	}
}

func (s *exportService) ExportNecessities(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]byte, string, error) {
	if schoolID == uuid.Nil {
		return nil, "", fmt.Errorf("missing school id: %w", apperrors.ErrInvalidArgument)
	}
	if consumptionDate.IsZero() {
		return nil, "", fmt.Errorf("missing consumption date: %w", apperrors.ErrInvalidArgument)
	}

	school, err := s.schoolRepo.GetByID(ctx, tx, schoolID)
	if err != nil {
		return nil, "", err
	}
	if school == nil {
		return nil, "", fmt.Errorf("school %s: %w", schoolID, apperrors.ErrNotFound)
	}

	rows, err := s.necessityRepo.ListBySchoolAndDate(ctx, tx, schoolID, consumptionDate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Necessities"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Product", "Unit", "Quantity", "Supply Week", "Requester", "Reference Code"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	}

	for i, row := range rows {
		rowIdx := i + 2
		week := ""
		if row.SupplyWeek != nil {
			week = *row.SupplyWeek
		}
		values := []interface{}{
			row.ProductName,
			row.ProductUnit,
			row.Adjustment.String(),
			week,
			row.RequesterEmail,
			row.ReferenceCode,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, rowIdx)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "D", "F", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.log.Warn("ExportNecessities: write workbook failed", "error", err, "school_id", schoolID)
		return nil, "", err
	}

	filename := fmt.Sprintf("necessities_%s_%s.xlsx", school.ReferenceCode, consumptionDate.Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
