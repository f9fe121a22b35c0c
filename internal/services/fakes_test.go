package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

func testLogger(t interface{ Fatalf(string, ...interface{}) }) *logger.Logger {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

type fakeRecordRepo struct {
	rows []*types.DailyRecord
}

func (f *fakeRecordRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.DailyRecord) ([]*types.DailyRecord, error) {
	f.rows = append(f.rows, rows...)
	return rows, nil
}

func (f *fakeRecordRepo) QueryWindow(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, start, end time.Time) ([]*types.DailyRecord, error) {
	var out []*types.DailyRecord
	for _, r := range f.rows {
		if r.SchoolID != schoolID {
			continue
		}
		if nutritionistID != uuid.Nil && r.NutritionistID != nutritionistID {
			continue
		}
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type snapshotKey struct {
	school       uuid.UUID
	nutritionist uuid.UUID
}

type fakeSnapshotRepo struct {
	rows map[snapshotKey]*types.AverageSnapshot
}

func newFakeSnapshotRepo() *fakeSnapshotRepo {
	return &fakeSnapshotRepo{rows: make(map[snapshotKey]*types.AverageSnapshot)}
}

func (f *fakeSnapshotRepo) Get(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID) (*types.AverageSnapshot, error) {
	row, ok := f.rows[snapshotKey{schoolID, nutritionistID}]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeSnapshotRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.AverageSnapshot) error {
	key := snapshotKey{row.SchoolID, row.NutritionistID}
	if existing, ok := f.rows[key]; ok {
		row.ID = existing.ID
	} else if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	cp := *row
	f.rows[key] = &cp
	return nil
}

func (f *fakeSnapshotRepo) SetManualAverages(ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, avgs map[types.MealType]int) (bool, error) {
	row, ok := f.rows[snapshotKey{schoolID, nutritionistID}]
	if !ok {
		return false, nil
	}
	for meal, v := range avgs {
		row.SetAverage(meal, v)
	}
	row.CalculatedAutomatically = false
	return true, nil
}

type fakeSchoolRepo struct {
	rows map[uuid.UUID]*types.School
}

func (f *fakeSchoolRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.School, error) {
	return f.rows[id], nil
}

type fakeProductRepo struct {
	rows map[uuid.UUID]*types.Product
}

func (f *fakeProductRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error) {
	return f.rows[id], nil
}

type necessityKey struct {
	requester string
	product   string
	school    string
	date      time.Time
}

type fakeNecessityRepo struct {
	rows map[necessityKey]*types.Necessity
}

func newFakeNecessityRepo() *fakeNecessityRepo {
	return &fakeNecessityRepo{rows: make(map[necessityKey]*types.Necessity)}
}

func (f *fakeNecessityRepo) key(row *types.Necessity) necessityKey {
	return necessityKey{row.RequesterEmail, row.ProductName, row.SchoolName, row.ConsumptionDate}
}

func (f *fakeNecessityRepo) GetByNaturalKey(ctx context.Context, tx *gorm.DB, requesterEmail, productName, schoolName string, consumptionDate time.Time) (*types.Necessity, error) {
	row, ok := f.rows[necessityKey{requesterEmail, productName, schoolName, consumptionDate}]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeNecessityRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.Necessity) error {
	key := f.key(row)
	if existing, ok := f.rows[key]; ok {
		row.ID = existing.ID
	} else if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	cp := *row
	f.rows[key] = &cp
	return nil
}

func (f *fakeNecessityRepo) ListBySchoolAndDate(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]*types.Necessity, error) {
	var out []*types.Necessity
	for _, row := range f.rows {
		if row.SchoolID == schoolID && row.ConsumptionDate.Equal(consumptionDate) {
			cp := *row
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakePerCapitaRepo struct {
	rows map[uuid.UUID]*types.PerCapitaFactor
}

func newFakePerCapitaRepo() *fakePerCapitaRepo {
	return &fakePerCapitaRepo{rows: make(map[uuid.UUID]*types.PerCapitaFactor)}
}

func (f *fakePerCapitaRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PerCapitaFactor, error) {
	return f.rows[id], nil
}

func (f *fakePerCapitaRepo) GetActiveByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.PerCapitaFactor, error) {
	for _, row := range f.rows {
		if row.ProductID == productID && row.Active {
			return row, nil
		}
	}
	return nil, nil
}

func (f *fakePerCapitaRepo) GetLatestByProduct(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (*types.PerCapitaFactor, error) {
	var latest *types.PerCapitaFactor
	for _, row := range f.rows {
		if row.ProductID != productID {
			continue
		}
		if latest == nil || row.UpdatedAt.After(latest.UpdatedAt) {
			latest = row
		}
	}
	return latest, nil
}

func (f *fakePerCapitaRepo) Create(ctx context.Context, tx *gorm.DB, row *types.PerCapitaFactor) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	f.rows[row.ID] = row
	return nil
}

func (f *fakePerCapitaRepo) Save(ctx context.Context, tx *gorm.DB, row *types.PerCapitaFactor) error {
	f.rows[row.ID] = row
	return nil
}

func (f *fakePerCapitaRepo) SetActive(ctx context.Context, tx *gorm.DB, id uuid.UUID, active bool) (bool, error) {
	row, ok := f.rows[id]
	if !ok {
		return false, nil
	}
	row.Active = active
	return true, nil
}

type fakeReceiptRepo struct {
	rows []*types.DeliveryReceipt
}

func (f *fakeReceiptRepo) Create(ctx context.Context, tx *gorm.DB, row *types.DeliveryReceipt) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeReceiptRepo) ListBySchool(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, from, to time.Time) ([]*types.DeliveryReceipt, error) {
	var out []*types.DeliveryReceipt
	for _, row := range f.rows {
		if row.SchoolID != schoolID {
			continue
		}
		if !from.IsZero() && row.ReceiptDate.Before(from) {
			continue
		}
		if !to.IsZero() && row.ReceiptDate.After(to) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
