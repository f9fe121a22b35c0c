package averages

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/nutriserv/supply-backend/internal/data/repos/testutil"
	types "github.com/nutriserv/supply-backend/internal/domain"
)

func TestSnapshotUpsertIdempotent(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()

	repo := NewSnapshotRepo(gdb, testutil.Logger(t))
	schoolID := uuid.New()
	nutritionistID := uuid.New()

	first := &types.AverageSnapshot{
		SchoolID:                schoolID,
		NutritionistID:          nutritionistID,
		LunchAvg:                120,
		CalculatedAutomatically: true,
		SampleCount:             15,
	}
	if err := repo.Upsert(ctx, tx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second := &types.AverageSnapshot{
		SchoolID:                schoolID,
		NutritionistID:          nutritionistID,
		LunchAvg:                130,
		CalculatedAutomatically: true,
		SampleCount:             18,
	}
	if err := repo.Upsert(ctx, tx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	if err := tx.Model(&types.AverageSnapshot{}).
		Where("school_id = ? AND nutritionist_id = ?", schoolID, nutritionistID).
		Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("snapshot rows: want=1 got=%d", count)
	}

	got, err := repo.Get(ctx, tx, schoolID, nutritionistID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatalf("get: snapshot missing")
	}
	if got.LunchAvg != 130 || got.SampleCount != 18 {
		t.Fatalf("upsert did not move values: %+v", got)
	}
}

func TestSnapshotGetMissing(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)

	repo := NewSnapshotRepo(gdb, testutil.Logger(t))
	got, err := repo.Get(context.Background(), tx, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("missing snapshot: want=nil got=%+v", got)
	}
}

func TestSnapshotSetManualAverages(t *testing.T) {
	gdb := testutil.DB(t)
	tx := testutil.Tx(t, gdb)
	ctx := context.Background()

	repo := NewSnapshotRepo(gdb, testutil.Logger(t))
	schoolID := uuid.New()
	nutritionistID := uuid.New()

	ok, err := repo.SetManualAverages(ctx, tx, schoolID, nutritionistID, map[types.MealType]int{types.MealLunch: 50})
	if err != nil {
		t.Fatalf("manual set without row: %v", err)
	}
	if ok {
		t.Fatalf("manual set without row: want=false got=true")
	}

	seed := &types.AverageSnapshot{
		SchoolID:                schoolID,
		NutritionistID:          nutritionistID,
		LunchAvg:                10,
		CalculatedAutomatically: true,
	}
	if err := repo.Upsert(ctx, tx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ok, err = repo.SetManualAverages(ctx, tx, schoolID, nutritionistID, map[types.MealType]int{
		types.MealLunch:        50,
		types.MealMorningSnack: 12,
	})
	if err != nil {
		t.Fatalf("manual set: %v", err)
	}
	if !ok {
		t.Fatalf("manual set: want=true got=false")
	}

	got, err := repo.Get(ctx, tx, schoolID, nutritionistID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.LunchAvg != 50 || got.MorningSnackAvg != 12 {
		t.Fatalf("manual values not stored: %+v", got)
	}
	if got.CalculatedAutomatically {
		t.Fatalf("calculated_automatically: want=false after manual edit")
	}
}
