package implementation

import (
	"context"
	"errors"

	"valuation-be/internal/entity"
	"valuation-be/internal/mapper"
	"valuation-be/internal/model"
	"valuation-be/internal/repository/contract"
	"valuation-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ValuationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ValuationMapper
}

func NewValuationRepository(db *gorm.DB) contract.ValuationRepository {
	return &ValuationRepositoryImpl{
		db:     db,
		mapper: mapper.NewValuationMapper(),
	}
}

func (r *ValuationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ValuationRepositoryImpl) Create(ctx context.Context, valuation *entity.Valuation) error {
	m := r.mapper.ToModel(valuation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	// Create fills the auto-increment Id on the model.
	*valuation = *r.mapper.ToEntity(m)
	return nil
}

func (r *ValuationRepositoryImpl) Update(ctx context.Context, valuation *entity.Valuation) error {
	m := r.mapper.ToModel(valuation)
	// Save updates all columns (including zero values) when the primary key
	// is set, which is what a merged record needs.
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*valuation = *r.mapper.ToEntity(m)
	return nil
}

func (r *ValuationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	// No-op when the row is absent; callers treat delete as idempotent.
	return r.db.WithContext(ctx).Delete(&model.Valuation{}, id).Error
}

func (r *ValuationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Valuation, error) {
	var m model.Valuation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ValuationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Valuation, error) {
	var models []*model.Valuation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ValuationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Valuation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
