package dto

import (
	"time"
)

type CreateValuationRequest struct {
	OwnerName   string   `json:"ownerName" validate:"required,notblank"`
	OwnerMobile *string  `json:"ownerMobile"`
	CarpetArea  *float64 `json:"carpetArea"`
	Possession  *string  `json:"possession"`
	Address     *string  `json:"address"`
	// CreatedAt is deliberately absent: the server stamps it.
}

// UpdateValuationRequest is fully partial: nil means "leave the stored
// value untouched". OwnerName, when supplied, must still be non-blank.
type UpdateValuationRequest struct {
	OwnerName   *string  `json:"ownerName" validate:"omitempty,notblank"`
	OwnerMobile *string  `json:"ownerMobile"`
	CarpetArea  *float64 `json:"carpetArea"`
	Possession  *string  `json:"possession"`
	Address     *string  `json:"address"`
}

type ValuationResponse struct {
	Id          int64     `json:"id"`
	OwnerName   string    `json:"ownerName"`
	OwnerMobile *string   `json:"ownerMobile"`
	CarpetArea  *float64  `json:"carpetArea"`
	Possession  *string   `json:"possession"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"createdAt"`
}
