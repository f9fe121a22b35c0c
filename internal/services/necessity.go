package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/data/repos/averages"
	"github.com/nutriserv/supply-backend/internal/data/repos/necessities"
	"github.com/nutriserv/supply-backend/internal/data/repos/percapita"
	"github.com/nutriserv/supply-backend/internal/data/repos/products"
	"github.com/nutriserv/supply-backend/internal/data/repos/schools"
	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

// Line outcomes for a projection batch. Outcomes are data, never errors:
// one bad line never aborts or rolls back its siblings.
const (
	OutcomeCreated = "created"
	OutcomeUpdated = "updated"
	OutcomeSkipped = "skipped"
)

type ProjectionLine struct {
	ProductID  uuid.UUID       `json:"product_id"`
	Adjustment decimal.Decimal `json:"adjustment"`
}

type LineOutcome struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Outcome     string    `json:"outcome"`
	Reason      string    `json:"reason,omitempty"`
	// SuggestedQuantity is advisory: snapshot average x per-capita factor
	// summed over meal types. The persisted adjustment is always the
	// caller-supplied value, never this suggestion.
	SuggestedQuantity decimal.Decimal `json:"suggested_quantity"`
}

type ProjectionInput struct {
	SchoolID        uuid.UUID
	NutritionistID  uuid.UUID // optional; enables the advisory suggestion
	ConsumptionDate time.Time
	SupplyWeek      string
	RequesterEmail  string
	Lines           []ProjectionLine
}

type ProjectionResult struct {
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Skipped int           `json:"skipped"`
	Results []LineOutcome `json:"results"`
}

type NecessityService interface {
	// ProjectNecessities upserts one necessity per resolvable line and
	// accumulates a tagged outcome per input line.
	ProjectNecessities(ctx context.Context, tx *gorm.DB, input ProjectionInput) (*ProjectionResult, error)
	ListNecessities(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]*types.Necessity, error)
}

type necessityService struct {
	db            *gorm.DB
	log           *logger.Logger
	necessityRepo necessities.NecessityRepo
	schoolRepo    schools.SchoolRepo
	productRepo   products.ProductRepo
	perCapitaRepo percapita.PerCapitaRepo
	snapshotRepo  averages.SnapshotRepo
}

func NewNecessityService(
	db *gorm.DB,
	baseLog *logger.Logger,
	necessityRepo necessities.NecessityRepo,
	schoolRepo schools.SchoolRepo,
	productRepo products.ProductRepo,
	perCapitaRepo percapita.PerCapitaRepo,
	snapshotRepo averages.SnapshotRepo,
) NecessityService {
	return &necessityService{
		db:            db,
		log:           baseLog.With("service", "NecessityService"),
		necessityRepo: necessityRepo,
		schoolRepo:    schoolRepo,
		productRepo:   productRepo,
		perCapitaRepo: perCapitaRepo,
		snapshotRepo:  snapshotRepo,
	}
}

func (s *necessityService) ProjectNecessities(ctx context.Context, tx *gorm.DB, input ProjectionInput) (*ProjectionResult, error) {
	if input.SchoolID == uuid.Nil {
		return nil, fmt.Errorf("missing school id: %w", apperrors.ErrInvalidArgument)
	}
	if input.RequesterEmail == "" {
		return nil, fmt.Errorf("missing requester: %w", apperrors.ErrInvalidArgument)
	}
	if input.ConsumptionDate.IsZero() {
		return nil, fmt.Errorf("missing consumption date: %w", apperrors.ErrInvalidArgument)
	}
	if len(input.Lines) == 0 {
		return nil, fmt.Errorf("no lines to project: %w", apperrors.ErrInvalidArgument)
	}

	// School is a call-level precondition, unlike per-line products.
	school, err := s.schoolRepo.GetByID(ctx, tx, input.SchoolID)
	if err != nil {
		s.log.Warn("ProjectNecessities: load school failed", "error", err, "school_id", input.SchoolID)
		return nil, err
	}
	if school == nil {
		return nil, fmt.Errorf("school %s: %w", input.SchoolID, apperrors.ErrNotFound)
	}

	// Snapshot is advisory input; its absence never blocks a projection.
	var snap *types.AverageSnapshot
	if input.NutritionistID != uuid.Nil {
		snap, err = s.snapshotRepo.Get(ctx, tx, input.SchoolID, input.NutritionistID)
		if err != nil {
			s.log.Warn("ProjectNecessities: load snapshot failed", "error", err, "school_id", input.SchoolID)
			snap = nil
		}
	}

	var supplyWeek *string
	if input.SupplyWeek != "" {
		supplyWeek = &input.SupplyWeek
	}

	result := &ProjectionResult{Results: make([]LineOutcome, 0, len(input.Lines))}
	for _, line := range input.Lines {
		outcome := s.projectLine(ctx, tx, school, snap, input, supplyWeek, line)
		switch outcome.Outcome {
		case OutcomeCreated:
			result.Created++
		case OutcomeUpdated:
			result.Updated++
		default:
			result.Skipped++
		}
		result.Results = append(result.Results, outcome)
	}
	return result, nil
}

// projectLine handles one product independently. Each write commits on its
// own; a skipped or failed line leaves sibling lines untouched.
func (s *necessityService) projectLine(ctx context.Context, tx *gorm.DB, school *types.School, snap *types.AverageSnapshot, input ProjectionInput, supplyWeek *string, line ProjectionLine) LineOutcome {
	if line.ProductID == uuid.Nil {
		return LineOutcome{Outcome: OutcomeSkipped, Reason: "missing product id"}
	}
	if line.Adjustment.IsNegative() {
		return LineOutcome{ProductID: line.ProductID, Outcome: OutcomeSkipped, Reason: "negative adjustment"}
	}

	product, err := s.productRepo.GetByID(ctx, tx, line.ProductID)
	if err != nil {
		s.log.Warn("projectLine: load product failed", "error", err, "product_id", line.ProductID)
		return LineOutcome{ProductID: line.ProductID, Outcome: OutcomeSkipped, Reason: "product lookup failed"}
	}
	if product == nil {
		return LineOutcome{ProductID: line.ProductID, Outcome: OutcomeSkipped, Reason: "product not found"}
	}

	suggested := s.suggestQuantity(ctx, tx, snap, product.ID)

	existing, err := s.necessityRepo.GetByNaturalKey(ctx, tx, input.RequesterEmail, product.Name, school.Name, input.ConsumptionDate)
	if err != nil {
		s.log.Warn("projectLine: probe failed", "error", err, "product_id", line.ProductID)
		return LineOutcome{ProductID: line.ProductID, ProductName: product.Name, Outcome: OutcomeSkipped, Reason: "necessity lookup failed", SuggestedQuantity: suggested}
	}

	row := &types.Necessity{
		RequesterEmail:  input.RequesterEmail,
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductUnit:     product.Unit,
		SchoolID:        school.ID,
		SchoolName:      school.Name,
		ReferenceCode:   school.ReferenceCode,
		Adjustment:      line.Adjustment,
		ConsumptionDate: input.ConsumptionDate,
		SupplyWeek:      supplyWeek,
	}
	if existing != nil {
		row.ID = existing.ID
	}
	if err := s.necessityRepo.Upsert(ctx, tx, row); err != nil {
		s.log.Warn("projectLine: upsert failed", "error", err, "product_id", line.ProductID)
		return LineOutcome{ProductID: line.ProductID, ProductName: product.Name, Outcome: OutcomeSkipped, Reason: "write failed", SuggestedQuantity: suggested}
	}

	tag := OutcomeCreated
	if existing != nil {
		tag = OutcomeUpdated
	}
	return LineOutcome{ProductID: line.ProductID, ProductName: product.Name, Outcome: tag, SuggestedQuantity: suggested}
}

// suggestQuantity multiplies each snapshot average by the product's active
// per-capita factor and sums across meal types. Zero when either side is
// missing; purely advisory.
func (s *necessityService) suggestQuantity(ctx context.Context, tx *gorm.DB, snap *types.AverageSnapshot, productID uuid.UUID) decimal.Decimal {
	if snap == nil {
		return decimal.Zero
	}
	factor, err := s.perCapitaRepo.GetActiveByProduct(ctx, tx, productID)
	if err != nil || factor == nil {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, meal := range types.AllMealTypes() {
		avg := decimal.NewFromInt(int64(snap.Average(meal)))
		total = total.Add(avg.Mul(factor.Factor(meal)))
	}
	return total
}

func (s *necessityService) ListNecessities(ctx context.Context, tx *gorm.DB, schoolID uuid.UUID, consumptionDate time.Time) ([]*types.Necessity, error) {
	if schoolID == uuid.Nil {
		return nil, fmt.Errorf("missing school id: %w", apperrors.ErrInvalidArgument)
	}
	if consumptionDate.IsZero() {
		return nil, fmt.Errorf("missing consumption date: %w", apperrors.ErrInvalidArgument)
	}
	return s.necessityRepo.ListBySchoolAndDate(ctx, tx, schoolID, consumptionDate)
}
