package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
)

type necessityFixture struct {
	svc           NecessityService
	schoolID      uuid.UUID
	productID     uuid.UUID
	necessityRepo *fakeNecessityRepo
	perCapitaRepo *fakePerCapitaRepo
	snapshotRepo  *fakeSnapshotRepo
}

func newNecessityFixture(t *testing.T) *necessityFixture {
	t.Helper()
	log := testLogger(t)

	schoolID := uuid.New()
	productID := uuid.New()
	schoolRepo := &fakeSchoolRepo{rows: map[uuid.UUID]*types.School{
		schoolID: {ID: schoolID, Name: "EM Central", ReferenceCode: "EM-001", Active: true},
	}}
	productRepo := &fakeProductRepo{rows: map[uuid.UUID]*types.Product{
		productID: {ID: productID, Name: "Arroz", Unit: "kg", Active: true},
	}}
	necessityRepo := newFakeNecessityRepo()
	perCapitaRepo := newFakePerCapitaRepo()
	snapshotRepo := newFakeSnapshotRepo()

	svc := NewNecessityService(nil, log, necessityRepo, schoolRepo, productRepo, perCapitaRepo, snapshotRepo)
	return &necessityFixture{
		svc:           svc,
		schoolID:      schoolID,
		productID:     productID,
		necessityRepo: necessityRepo,
		perCapitaRepo: perCapitaRepo,
		snapshotRepo:  snapshotRepo,
	}
}

func baseInput(f *necessityFixture, lines ...ProjectionLine) ProjectionInput {
	return ProjectionInput{
		SchoolID:        f.schoolID,
		ConsumptionDate: day(2024, time.April, 2),
		SupplyWeek:      "2024-W14",
		RequesterEmail:  "nutri@prefeitura.gov.br",
		Lines:           lines,
	}
}

func TestProjectNecessities_ResubmitUpdatesInPlace(t *testing.T) {
	f := newNecessityFixture(t)
	ctx := context.Background()

	first, err := f.svc.ProjectNecessities(ctx, nil, baseInput(f, ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(5)}))
	if err != nil {
		t.Fatalf("first projection: %v", err)
	}
	if first.Created != 1 || first.Updated != 0 {
		t.Fatalf("first projection: want created=1 updated=0 got=%+v", first)
	}

	second, err := f.svc.ProjectNecessities(ctx, nil, baseInput(f, ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(8)}))
	if err != nil {
		t.Fatalf("second projection: %v", err)
	}
	if second.Created != 0 || second.Updated != 1 {
		t.Fatalf("second projection: want created=0 updated=1 got=%+v", second)
	}

	if len(f.necessityRepo.rows) != 1 {
		t.Fatalf("rows: want=1 got=%d", len(f.necessityRepo.rows))
	}
	stored, err := f.necessityRepo.GetByNaturalKey(ctx, nil, "nutri@prefeitura.gov.br", "Arroz", "EM Central", day(2024, time.April, 2))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !stored.Adjustment.Equal(decimal.NewFromInt(8)) {
		t.Fatalf("adjustment: want=8 got=%s", stored.Adjustment)
	}
	if stored.ProductUnit != "kg" || stored.ReferenceCode != "EM-001" {
		t.Fatalf("denormalized fields not carried: %+v", stored)
	}
}

func TestProjectNecessities_UnknownProductSkipsLine(t *testing.T) {
	f := newNecessityFixture(t)

	res, err := f.svc.ProjectNecessities(context.Background(), nil, baseInput(f,
		ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(3)},
		ProjectionLine{ProductID: uuid.New(), Adjustment: decimal.NewFromInt(2)},
	))
	if err != nil {
		t.Fatalf("projection: %v", err)
	}
	if res.Created != 1 || res.Skipped != 1 {
		t.Fatalf("outcomes: want created=1 skipped=1 got=%+v", res)
	}
	if len(res.Results) != 2 {
		t.Fatalf("results: want=2 got=%d", len(res.Results))
	}
	if res.Results[1].Outcome != OutcomeSkipped || res.Results[1].Reason == "" {
		t.Fatalf("skipped line missing reason: %+v", res.Results[1])
	}
}

func TestProjectNecessities_UnknownSchoolFailsCall(t *testing.T) {
	f := newNecessityFixture(t)

	input := baseInput(f, ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(3)})
	input.SchoolID = uuid.New()
	_, err := f.svc.ProjectNecessities(context.Background(), nil, input)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("unknown school: want ErrNotFound got=%v", err)
	}
	if len(f.necessityRepo.rows) != 0 {
		t.Fatalf("no rows must be written: got=%d", len(f.necessityRepo.rows))
	}
}

func TestProjectNecessities_ValidatesInput(t *testing.T) {
	f := newNecessityFixture(t)
	ctx := context.Background()

	line := ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(1)}

	input := baseInput(f, line)
	input.RequesterEmail = ""
	if _, err := f.svc.ProjectNecessities(ctx, nil, input); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("missing requester: want ErrInvalidArgument got=%v", err)
	}

	input = baseInput(f, line)
	input.ConsumptionDate = time.Time{}
	if _, err := f.svc.ProjectNecessities(ctx, nil, input); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("missing date: want ErrInvalidArgument got=%v", err)
	}

	if _, err := f.svc.ProjectNecessities(ctx, nil, baseInput(f)); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("no lines: want ErrInvalidArgument got=%v", err)
	}

	res, err := f.svc.ProjectNecessities(ctx, nil, baseInput(f, ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(-1)}))
	if err != nil {
		t.Fatalf("negative adjustment projection: %v", err)
	}
	if res.Skipped != 1 {
		t.Fatalf("negative adjustment: want skipped=1 got=%+v", res)
	}
}

func TestProjectNecessities_SuggestedQuantity(t *testing.T) {
	f := newNecessityFixture(t)
	ctx := context.Background()

	nutritionistID := uuid.New()
	snap := &types.AverageSnapshot{SchoolID: f.schoolID, NutritionistID: nutritionistID}
	snap.SetAverage(types.MealLunch, 100)
	snap.SetAverage(types.MealMorningSnack, 40)
	if err := f.snapshotRepo.Upsert(ctx, nil, snap); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	factor := &types.PerCapitaFactor{ProductID: f.productID, Active: true}
	factor.SetFactor(types.MealLunch, decimal.RequireFromString("0.05"))
	factor.SetFactor(types.MealMorningSnack, decimal.RequireFromString("0.025"))
	if err := f.perCapitaRepo.Create(ctx, nil, factor); err != nil {
		t.Fatalf("seed factor: %v", err)
	}

	input := baseInput(f, ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(2)})
	input.NutritionistID = nutritionistID
	res, err := f.svc.ProjectNecessities(ctx, nil, input)
	if err != nil {
		t.Fatalf("projection: %v", err)
	}

	// 100*0.05 + 40*0.025 = 6
	want := decimal.NewFromInt(6)
	if !res.Results[0].SuggestedQuantity.Equal(want) {
		t.Fatalf("suggested quantity: want=%s got=%s", want, res.Results[0].SuggestedQuantity)
	}

	// The persisted adjustment stays the caller-supplied value.
	stored, err := f.necessityRepo.GetByNaturalKey(ctx, nil, "nutri@prefeitura.gov.br", "Arroz", "EM Central", day(2024, time.April, 2))
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !stored.Adjustment.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("adjustment: want=2 got=%s", stored.Adjustment)
	}
}

func TestProjectNecessities_NoSnapshotZeroSuggestion(t *testing.T) {
	f := newNecessityFixture(t)

	input := baseInput(f, ProjectionLine{ProductID: f.productID, Adjustment: decimal.NewFromInt(2)})
	input.NutritionistID = uuid.New()
	res, err := f.svc.ProjectNecessities(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("projection: %v", err)
	}
	if res.Created != 1 {
		t.Fatalf("missing snapshot must not block projection: %+v", res)
	}
	if !res.Results[0].SuggestedQuantity.IsZero() {
		t.Fatalf("suggested quantity: want=0 got=%s", res.Results[0].SuggestedQuantity)
	}
}
