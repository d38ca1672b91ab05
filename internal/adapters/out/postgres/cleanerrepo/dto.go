// Package cleanerrepo provides data transfer objects and mapping functions for
// cleaner profile persistence.
package cleanerrepo

import (
	"cleaning/internal/core/domain/model/cleaner"
)

// CleanerDTO represents the database structure for persisting cleaner profiles.
// The primary key is the underlying user account id, not a generated value.
type CleanerDTO struct {
	UserID       int64  `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	City         string `gorm:"index"`
	Availability bool   `gorm:"not null"`
}

// TableName specifies the database table name for cleaner entities.
func (CleanerDTO) TableName() string {
	return "cleaners"
}

// fromDomain converts a cleaner profile to its database representation.
func fromDomain(aggregate *cleaner.Cleaner) CleanerDTO {
	return CleanerDTO{
		UserID:       aggregate.ID(),
		Name:         aggregate.Name(),
		City:         aggregate.City(),
		Availability: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to a cleaner profile using RestoreCleaner.
func toDomain(dto CleanerDTO) (*cleaner.Cleaner, error) {
	return cleaner.RestoreCleaner(dto.UserID, dto.Name, dto.City, dto.Availability)
}
