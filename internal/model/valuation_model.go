package model

import (
	"time"
)

type Valuation struct {
	Id          int64    `gorm:"primaryKey;autoIncrement"`
	OwnerName   string   `gorm:"type:varchar(255);not null"`
	OwnerMobile *string  `gorm:"type:varchar(32)"`
	CarpetArea  *float64 `gorm:"type:numeric"`
	Possession  *string  `gorm:"type:varchar(64)"`
	Address     *string  `gorm:"type:text"`
	// No autoCreateTime: the service stamps CreatedAt itself so the value
	// survives Save() on update unchanged.
	CreatedAt time.Time `gorm:"not null"`
}

func (Valuation) TableName() string {
	return "valuations"
}
