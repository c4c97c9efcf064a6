package contract

import (
	"context"

	"valuation-be/internal/entity"
	"valuation-be/internal/repository/specification"
)

type ValuationRepository interface {
	Create(ctx context.Context, valuation *entity.Valuation) error
	Update(ctx context.Context, valuation *entity.Valuation) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Valuation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Valuation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
