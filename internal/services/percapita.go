package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nutriserv/supply-backend/internal/data/repos/percapita"
	"github.com/nutriserv/supply-backend/internal/data/repos/products"
	types "github.com/nutriserv/supply-backend/internal/domain"
	apperrors "github.com/nutriserv/supply-backend/internal/pkg/errors"
	"github.com/nutriserv/supply-backend/internal/pkg/logger"
)

type PerCapitaService interface {
	// CreateProfile registers the active factor set for a product. At most
	// one active row may exist per product.
	CreateProfile(ctx context.Context, tx *gorm.DB, productID uuid.UUID, factors map[types.MealType]decimal.Decimal) (*types.PerCapitaFactor, error)
	UpdateProfile(ctx context.Context, tx *gorm.DB, id uuid.UUID, factors map[types.MealType]decimal.Decimal) (*types.PerCapitaFactor, error)
	// Deactivate soft-deletes the row; history stays queryable.
	Deactivate(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	Reactivate(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	// Lookup resolves the active factors for a product.
	Lookup(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (map[types.MealType]decimal.Decimal, error)
}

type perCapitaService struct {
	db            *gorm.DB
	log           *logger.Logger
	perCapitaRepo percapita.PerCapitaRepo
	productRepo   products.ProductRepo
}

func NewPerCapitaService(db *gorm.DB, baseLog *logger.Logger, perCapitaRepo percapita.PerCapitaRepo, productRepo products.ProductRepo) PerCapitaService {
	return &perCapitaService{
		db:            db,
		log:           baseLog.With("service", "PerCapitaService"),
		perCapitaRepo: perCapitaRepo,
		productRepo:   productRepo,
	}
}

func validateFactors(factors map[types.MealType]decimal.Decimal) error {
	for meal, v := range factors {
		if !meal.Valid() {
			return fmt.Errorf("unknown meal type %q: %w", meal, apperrors.ErrInvalidArgument)
		}
		if v.IsNegative() {
			return fmt.Errorf("negative factor for %s: %w", meal, apperrors.ErrInvalidArgument)
		}
	}
	return nil
}

func (s *perCapitaService) CreateProfile(ctx context.Context, tx *gorm.DB, productID uuid.UUID, factors map[types.MealType]decimal.Decimal) (*types.PerCapitaFactor, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("missing product id: %w", apperrors.ErrInvalidArgument)
	}
	if err := validateFactors(factors); err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, tx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", productID, apperrors.ErrNotFound)
	}

	active, err := s.perCapitaRepo.GetActiveByProduct(ctx, tx, productID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("active per-capita profile exists for product %s: %w", productID, apperrors.ErrConflict)
	}

	row := &types.PerCapitaFactor{ProductID: productID, Active: true}
	for meal, v := range factors {
		row.SetFactor(meal, v)
	}
	if err := s.perCapitaRepo.Create(ctx, tx, row); err != nil {
		s.log.Warn("CreateProfile: create failed", "error", err, "product_id", productID)
		return nil, err
	}
	return row, nil
}

func (s *perCapitaService) UpdateProfile(ctx context.Context, tx *gorm.DB, id uuid.UUID, factors map[types.MealType]decimal.Decimal) (*types.PerCapitaFactor, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing profile id: %w", apperrors.ErrInvalidArgument)
	}
	if err := validateFactors(factors); err != nil {
		return nil, err
	}

	row, err := s.perCapitaRepo.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("per-capita profile %s: %w", id, apperrors.ErrNotFound)
	}

	for meal, v := range factors {
		row.SetFactor(meal, v)
	}
	if err := s.perCapitaRepo.Save(ctx, tx, row); err != nil {
		s.log.Warn("UpdateProfile: save failed", "error", err, "id", id)
		return nil, err
	}
	return row, nil
}

func (s *perCapitaService) Deactivate(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing profile id: %w", apperrors.ErrInvalidArgument)
	}
	ok, err := s.perCapitaRepo.SetActive(ctx, tx, id, false)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("per-capita profile %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *perCapitaService) Reactivate(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing profile id: %w", apperrors.ErrInvalidArgument)
	}

	row, err := s.perCapitaRepo.GetByID(ctx, tx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("per-capita profile %s: %w", id, apperrors.ErrNotFound)
	}
	if row.Active {
		return nil
	}

	active, err := s.perCapitaRepo.GetActiveByProduct(ctx, tx, row.ProductID)
	if err != nil {
		return err
	}
	if active != nil && active.ID != id {
		return fmt.Errorf("another active per-capita profile exists for product %s: %w", row.ProductID, apperrors.ErrConflict)
	}

	if _, err := s.perCapitaRepo.SetActive(ctx, tx, id, true); err != nil {
		return err
	}
	return nil
}

func (s *perCapitaService) Lookup(ctx context.Context, tx *gorm.DB, productID uuid.UUID) (map[types.MealType]decimal.Decimal, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("missing product id: %w", apperrors.ErrInvalidArgument)
	}
	row, err := s.perCapitaRepo.GetActiveByProduct(ctx, tx, productID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("no active per-capita profile for product %s: %w", productID, apperrors.ErrNotFound)
	}
	out := make(map[types.MealType]decimal.Decimal, len(types.AllMealTypes()))
	for _, meal := range types.AllMealTypes() {
		out[meal] = row.Factor(meal)
	}
	return out, nil
}
