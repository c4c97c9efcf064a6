package unitofwork

import (
	"context"

	"valuation-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ValuationRepository() contract.ValuationRepository
}
