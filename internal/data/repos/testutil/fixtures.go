package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/nutriserv/supply-backend/internal/domain"
)

func SeedSchool(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.School {
	tb.Helper()
	s := &types.School{
		ID:            uuid.New(),
		Name:          name,
		ReferenceCode: "TK-" + name,
		Route:         "ROTA 1",
		Active:        true,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed school: %v", err)
	}
	return s
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, unit string) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:     uuid.New(),
		Name:   name,
		Unit:   unit,
		Active: true,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedDailyRecord(tb testing.TB, ctx context.Context, tx *gorm.DB, schoolID, nutritionistID uuid.UUID, date time.Time, meal types.MealType, value int) *types.DailyRecord {
	tb.Helper()
	rec := &types.DailyRecord{
		ID:             uuid.New(),
		SchoolID:       schoolID,
		NutritionistID: nutritionistID,
		Date:           date,
		MealType:       meal,
		Value:          value,
	}
	if err := tx.WithContext(ctx).Create(rec).Error; err != nil {
		tb.Fatalf("seed daily record: %v", err)
	}
	return rec
}
