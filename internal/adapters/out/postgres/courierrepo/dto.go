// Package courierrepo persists courier profiles.
package courierrepo

import (
	"dispatch/internal/core/domain/model/courier"
)

// CourierDTO represents the database structure for courier profiles.
type CourierDTO struct {
	ID    string `gorm:"primaryKey"`
	Name  string
	Phone string

	AccountNumber string
	IfscCode      string

	IsActive    bool `gorm:"index"`
	NotifyToken string
}

// TableName overrides GORM's default naming to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier profile to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:    aggregate.ID(),
		Name:  aggregate.Name(),
		Phone: aggregate.Phone(),

		AccountNumber: aggregate.AccountNumber(),
		IfscCode:      aggregate.IfscCode(),

		IsActive:    aggregate.IsActive(),
		NotifyToken: aggregate.NotifyToken(),
	}
}

// toDomain converts a database DTO back to a courier profile.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(
		dto.ID,
		dto.Name,
		dto.Phone,
		dto.AccountNumber,
		dto.IfscCode,
		dto.IsActive,
		dto.NotifyToken,
	)
}
