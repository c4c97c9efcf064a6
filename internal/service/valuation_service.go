package service

import (
	"context"
	"time"

	"valuation-be/internal/dto"
	"valuation-be/internal/entity"
	"valuation-be/internal/pkg/serverutils"
	"valuation-be/internal/repository/specification"
	"valuation-be/internal/repository/unitofwork"
)

type IValuationService interface {
	Create(ctx context.Context, req *dto.CreateValuationRequest) (*dto.ValuationResponse, error)
	GetAll(ctx context.Context) ([]*dto.ValuationResponse, error)
	Show(ctx context.Context, id int64) (*dto.ValuationResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateValuationRequest) (*dto.ValuationResponse, error)
	Delete(ctx context.Context, id int64) error
}

type valuationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewValuationService(uowFactory unitofwork.RepositoryFactory) IValuationService {
	return &valuationService{
		uowFactory: uowFactory,
	}
}

func (s *valuationService) Create(ctx context.Context, req *dto.CreateValuationRequest) (*dto.ValuationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// CreatedAt is stamped here; any client-supplied value is ignored by
	// the request DTO shape.
	valuation := entity.Valuation{
		OwnerName:   req.OwnerName,
		OwnerMobile: req.OwnerMobile,
		CarpetArea:  req.CarpetArea,
		Possession:  req.Possession,
		Address:     req.Address,
		CreatedAt:   time.Now(),
	}

	if err := uow.ValuationRepository().Create(ctx, &valuation); err != nil {
		return nil, err
	}

	return toValuationResponse(&valuation), nil
}

func (s *valuationService) GetAll(ctx context.Context) ([]*dto.ValuationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	valuations, err := uow.ValuationRepository().FindAll(ctx,
		specification.OrderBy{Field: "id"},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ValuationResponse, 0, len(valuations))
	for _, v := range valuations {
		result = append(result, toValuationResponse(v))
	}
	return result, nil
}

// Show returns nil without error when the record is absent; the controller
// converts that into a 404.
func (s *valuationService) Show(ctx context.Context, id int64) (*dto.ValuationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	valuation, err := uow.ValuationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if valuation == nil {
		return nil, nil
	}

	return toValuationResponse(valuation), nil
}

// Update merges only the fields present in the request onto the stored
// record. CreatedAt is never touched.
func (s *valuationService) Update(ctx context.Context, id int64, req *dto.UpdateValuationRequest) (*dto.ValuationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ValuationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &serverutils.NotFoundError{Resource: "valuation", Id: id}
	}

	if req.OwnerName != nil {
		existing.OwnerName = *req.OwnerName
	}
	if req.OwnerMobile != nil {
		existing.OwnerMobile = req.OwnerMobile
	}
	if req.CarpetArea != nil {
		existing.CarpetArea = req.CarpetArea
	}
	if req.Possession != nil {
		existing.Possession = req.Possession
	}
	if req.Address != nil {
		existing.Address = req.Address
	}

	if err := uow.ValuationRepository().Update(ctx, existing); err != nil {
		return nil, err
	}

	return toValuationResponse(existing), nil
}

// Delete is idempotent: no existence check, no error on absence.
func (s *valuationService) Delete(ctx context.Context, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ValuationRepository().Delete(ctx, id)
}

func toValuationResponse(v *entity.Valuation) *dto.ValuationResponse {
	return &dto.ValuationResponse{
		Id:          v.Id,
		OwnerName:   v.OwnerName,
		OwnerMobile: v.OwnerMobile,
		CarpetArea:  v.CarpetArea,
		Possession:  v.Possession,
		Address:     v.Address,
		CreatedAt:   v.CreatedAt,
	}
}
