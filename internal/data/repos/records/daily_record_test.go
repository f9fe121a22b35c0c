package records

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nutriserv/supply-backend/internal/data/repos/testutil"
	types "github.com/nutriserv/supply-backend/internal/domain"
)

func TestQueryWindowBounds(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()

	repo := NewDailyRecordRepo(gdb, testutil.Logger(t))
	school := testutil.SeedSchool(t, ctx, tx, "EM Horizonte")
	nutritionistID := uuid.New()

	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)

	testutil.SeedDailyRecord(t, ctx, tx, school.ID, nutritionistID, start.AddDate(0, 0, -1), types.MealLunch, 99)
	testutil.SeedDailyRecord(t, ctx, tx, school.ID, nutritionistID, start, types.MealLunch, 10)
	testutil.SeedDailyRecord(t, ctx, tx, school.ID, nutritionistID, end, types.MealLunch, 12)
	testutil.SeedDailyRecord(t, ctx, tx, school.ID, nutritionistID, end.AddDate(0, 0, 1), types.MealLunch, 99)

	rows, err := repo.QueryWindow(ctx, tx, school.ID, nutritionistID, start, end)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: want=2 got=%d", len(rows))
	}
	for _, r := range rows {
		if r.Value == 99 {
			t.Fatalf("row outside window returned: %+v", r)
		}
	}
}

func TestQueryWindowNutritionistFilter(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()

	repo := NewDailyRecordRepo(gdb, testutil.Logger(t))
	school := testutil.SeedSchool(t, ctx, tx, "EM Aurora")
	a := uuid.New()
	b := uuid.New()

	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	testutil.SeedDailyRecord(t, ctx, tx, school.ID, a, date, types.MealLunch, 10)
	testutil.SeedDailyRecord(t, ctx, tx, school.ID, b, date, types.MealLunch, 20)

	rows, err := repo.QueryWindow(ctx, tx, school.ID, a, date, date)
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(rows) != 1 || rows[0].NutritionistID != a {
		t.Fatalf("filtered rows: want one row for nutritionist a, got=%d", len(rows))
	}

	all, err := repo.QueryWindow(ctx, tx, school.ID, uuid.Nil, date, date)
	if err != nil {
		t.Fatalf("query unfiltered: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered rows: want=2 got=%d", len(all))
	}
}

func TestCreateBatch(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()

	repo := NewDailyRecordRepo(gdb, testutil.Logger(t))
	school := testutil.SeedSchool(t, ctx, tx, "EM Primavera")
	nutritionistID := uuid.New()
	date := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)

	rows, err := repo.Create(ctx, tx, []*types.DailyRecord{
		{SchoolID: school.ID, NutritionistID: nutritionistID, Date: date, MealType: types.MealLunch, Value: 120},
		{SchoolID: school.ID, NutritionistID: nutritionistID, Date: date, MealType: types.MealEJA, Value: 35},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("created rows: want=2 got=%d", len(rows))
	}
	for _, r := range rows {
		if r.ID == uuid.Nil {
			t.Fatalf("row missing id: %+v", r)
		}
	}
}
