package mapper

import (
	"valuation-be/internal/entity"
	"valuation-be/internal/model"
)

type ValuationMapper struct{}

func NewValuationMapper() *ValuationMapper {
	return &ValuationMapper{}
}

func (m *ValuationMapper) ToEntity(v *model.Valuation) *entity.Valuation {
	if v == nil {
		return nil
	}
	return &entity.Valuation{
		Id:          v.Id,
		OwnerName:   v.OwnerName,
		OwnerMobile: v.OwnerMobile,
		CarpetArea:  v.CarpetArea,
		Possession:  v.Possession,
		Address:     v.Address,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ValuationMapper) ToModel(v *entity.Valuation) *model.Valuation {
	if v == nil {
		return nil
	}
	return &model.Valuation{
		Id:          v.Id,
		OwnerName:   v.OwnerName,
		OwnerMobile: v.OwnerMobile,
		CarpetArea:  v.CarpetArea,
		Possession:  v.Possession,
		Address:     v.Address,
		CreatedAt:   v.CreatedAt,
	}
}

func (m *ValuationMapper) ToEntities(valuations []*model.Valuation) []*entity.Valuation {
	entities := make([]*entity.Valuation, len(valuations))
	for i, v := range valuations {
		entities[i] = m.ToEntity(v)
	}
	return entities
}
