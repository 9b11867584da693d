package models

import "time"

// AdminAccount is a back-office login. The public site never authenticates.
type AdminAccount struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string `gorm:"size:64;uniqueIndex;not null"`
	PasswordHash []byte `gorm:"not null"`
}
